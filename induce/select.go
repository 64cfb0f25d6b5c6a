package induce

import (
	"log/slog"

	"github.com/fwojciec/xwrap"
)

// Select scores every candidate of every field and keeps the best one.
// Ties go to the candidate inserted first. Fields without candidates are
// left out of the mapping and reported as missing.
func Select(scorer *Scorer, candidates *xwrap.CandidateSet, fields []string, logger *slog.Logger) (xwrap.Mapping, []xwrap.Selection, []string) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	mapping := make(xwrap.Mapping)
	var selections []xwrap.Selection
	var missing []string

	for _, field := range fields {
		paths := candidates.Paths(field)
		if len(paths) == 0 {
			logger.Warn("no path found for target", "field", field)
			missing = append(missing, field)
			continue
		}

		scored := make([]xwrap.ScoredPath, len(paths))
		for i, path := range paths {
			scored[i] = xwrap.ScoredPath{Path: path, Score: scorer.Score(path, field)}
		}

		best, _ := xwrap.BestPath(scored)
		mapping[field] = best.Path
		selections = append(selections, xwrap.Selection{
			Field:      field,
			Path:       best.Path,
			Score:      best.Score,
			Candidates: scored,
		})
		logger.Debug("selected path", "field", field, "xpath", best.Path, "score", best.Score, "candidates", len(paths))
	}

	return mapping, selections, missing
}
