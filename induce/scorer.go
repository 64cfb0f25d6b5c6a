package induce

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/xwrap"
)

// Scorer measures how well a path generalizes across a dataset.
//
// Each entry's HTML is parsed once, on first use, and the document is reused
// for every path scored afterwards. Scorer is not safe for concurrent use.
type Scorer struct {
	parser  xwrap.Parser
	dataset []*xwrap.DatasetEntry
	logger  *slog.Logger

	docs   []xwrap.Document
	parsed []bool
}

// NewScorer creates a Scorer over dataset. If logger is nil, nothing is logged.
func NewScorer(parser xwrap.Parser, dataset []*xwrap.DatasetEntry, logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scorer{
		parser:  parser,
		dataset: dataset,
		logger:  logger,
		docs:    make([]xwrap.Document, len(dataset)),
		parsed:  make([]bool, len(dataset)),
	}
}

// Score resolves path against every entry and returns the mean of
// 1/len(text) over entries whose extracted text contains the entry's
// expected value for field, where text is the concatenation of the
// resolved fragments. Other entries contribute 0. The result lies in [0, 1].
func (s *Scorer) Score(path, field string) float64 {
	if len(s.dataset) == 0 {
		return 0
	}

	var total float64
	for i, entry := range s.dataset {
		total += s.entryScore(i, entry, path, field)
	}
	return total / float64(len(s.dataset))
}

func (s *Scorer) entryScore(i int, entry *xwrap.DatasetEntry, path, field string) float64 {
	value, ok := entry.Targets[field]
	if !ok {
		return 0
	}

	doc := s.document(i)
	if doc == nil {
		return 0
	}

	fragments, err := doc.Resolve(path)
	if err != nil {
		s.logger.Debug("path resolution failed", "url", entry.URL, "xpath", path, "err", err)
		return 0
	}

	text := strings.Join(fragments, "")
	if text == "" || !strings.Contains(text, value) {
		return 0
	}
	return 1 / float64(utf8.RuneCountInString(text))
}

// document returns the parsed document of entry i, or nil if it cannot be parsed.
func (s *Scorer) document(i int) xwrap.Document {
	if s.parsed[i] {
		return s.docs[i]
	}
	s.parsed[i] = true

	doc, err := s.parser.Parse(s.dataset[i].HTML)
	if err != nil {
		s.logger.Warn("unparseable training page", "url", s.dataset[i].URL, "err", err)
		return nil
	}
	s.docs[i] = doc
	return doc
}
