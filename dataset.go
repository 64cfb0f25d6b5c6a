package xwrap

import "sort"

// DatasetEntry is a fetched training example. HTML is the exact markup the
// features were derived from so candidate paths can be re-resolved later
// without fetching the page again.
type DatasetEntry struct {
	URL      string
	Targets  map[string]string
	Features []*Feature
	HTML     string
}

// Fields returns the sorted union of target field names across entries.
func Fields(entries []*DatasetEntry) []string {
	seen := make(map[string]bool)
	var fields []string
	for _, entry := range entries {
		for field := range entry.Targets {
			if !seen[field] {
				seen[field] = true
				fields = append(fields, field)
			}
		}
	}
	sort.Strings(fields)
	return fields
}
