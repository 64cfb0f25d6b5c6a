package induce

import (
	"strings"

	"github.com/fwojciec/xwrap"
)

// GenerateCandidates collects, for each field, the text paths of every
// feature whose text contains the field's expected value, compared
// case-insensitively. Candidates are gathered from all entries and kept in
// first-seen order. Fields without any candidate are returned as missing.
func GenerateCandidates(dataset []*xwrap.DatasetEntry, fields []string) (*xwrap.CandidateSet, []string) {
	candidates := xwrap.NewCandidateSet()
	var missing []string

	for _, field := range fields {
		for _, entry := range dataset {
			value, ok := entry.Targets[field]
			if !ok || value == "" {
				continue
			}
			needle := strings.ToLower(value)
			for _, feature := range entry.Features {
				if strings.Contains(strings.ToLower(feature.Text), needle) {
					candidates.Add(field, feature.Path+xwrap.TextSuffix)
				}
			}
		}
		if candidates.Len(field) == 0 {
			missing = append(missing, field)
		}
	}

	return candidates, missing
}
