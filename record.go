package xwrap

import (
	"context"
	"time"
)

// Record holds the field values extracted from one page with a wrapper.
type Record struct {
	ID          string            `json:"id"`
	WrapperID   string            `json:"wrapperId"`
	SourceURL   string            `json:"sourceUrl"`
	Fields      map[string]string `json:"fields"`
	ContentHash string            `json:"contentHash"`
	Position    int               `json:"position"`
	ExtractedAt time.Time         `json:"extractedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.WrapperID == "" {
		return Errorf(EINVALID, "record wrapper ID required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// RecordService represents a service for managing extracted records.
type RecordService interface {
	// CreateRecord creates a new record.
	CreateRecord(ctx context.Context, record *Record) error

	// FindRecords retrieves records matching the filter, ordered by position.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecordsByWrapper removes all records for a wrapper.
	DeleteRecordsByWrapper(ctx context.Context, wrapperID string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	WrapperID *string `json:"wrapperId"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
