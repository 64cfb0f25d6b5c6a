package xwrap

// TextSuffix selects the text nodes beneath a path.
const TextSuffix = "//text()"

// CandidateSet holds the candidate path expressions per field.
// Paths are unique per field and kept in insertion order.
type CandidateSet struct {
	paths map[string][]string
	seen  map[string]map[string]bool
}

// NewCandidateSet returns an empty CandidateSet.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{
		paths: make(map[string][]string),
		seen:  make(map[string]map[string]bool),
	}
}

// Add appends path to the candidates of field.
// Returns false if the path is already a candidate for that field.
func (s *CandidateSet) Add(field, path string) bool {
	seen, ok := s.seen[field]
	if !ok {
		seen = make(map[string]bool)
		s.seen[field] = seen
	}
	if seen[path] {
		return false
	}
	seen[path] = true
	s.paths[field] = append(s.paths[field], path)
	return true
}

// Paths returns the candidates of field in insertion order.
func (s *CandidateSet) Paths(field string) []string {
	return s.paths[field]
}

// Len returns the number of candidates for field.
func (s *CandidateSet) Len(field string) int {
	return len(s.paths[field])
}

// ScoredPath pairs a candidate path with its generalization score.
type ScoredPath struct {
	Path  string  `json:"path"`
	Score float64 `json:"score"`
}

// Selection reports the outcome of training for one field.
type Selection struct {
	Field      string       `json:"field"`
	Path       string       `json:"path"`
	Score      float64      `json:"score"`
	Candidates []ScoredPath `json:"candidates"`
}

// BestPath returns the first path with the highest score.
// A later path only wins with a strictly greater score.
// Returns false if scored is empty.
func BestPath(scored []ScoredPath) (ScoredPath, bool) {
	if len(scored) == 0 {
		return ScoredPath{}, false
	}
	best := scored[0]
	for _, sp := range scored[1:] {
		if sp.Score > best.Score {
			best = sp
		}
	}
	return best, true
}
