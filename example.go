package xwrap

import "sort"

// Example is a labeled training page: a URL and the literal text expected
// for each named field on that page.
type Example struct {
	URL     string            `json:"url"`
	Targets map[string]string `json:"targets"`
}

// Validate returns an error if the example contains invalid fields.
func (e *Example) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "example URL required")
	}
	if len(e.Targets) == 0 {
		return Errorf(EINVALID, "example %s has no targets", e.URL)
	}
	for field, value := range e.Targets {
		if field == "" {
			return Errorf(EINVALID, "example %s has an unnamed target", e.URL)
		}
		if value == "" {
			return Errorf(EINVALID, "example %s: target %q has an empty value", e.URL, field)
		}
	}
	return nil
}

// Fields returns the target field names of the example, sorted.
func (e *Example) Fields() []string {
	fields := make([]string, 0, len(e.Targets))
	for field := range e.Targets {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
