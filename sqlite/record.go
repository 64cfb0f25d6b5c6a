package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/xwrap"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ xwrap.RecordService = (*RecordService)(nil)

// RecordService implements xwrap.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord creates a new record. If the record has no content hash,
// one is computed from its fields.
func (s *RecordService) CreateRecord(ctx context.Context, record *xwrap.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	fields, err := encodeStringMap(record.Fields)
	if err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.ExtractedAt = time.Now().UTC()
	if record.ContentHash == "" {
		record.ContentHash = hashContent(fields)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, wrapper_id, source_url, fields, content_hash, position, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.WrapperID, record.SourceURL, string(fields), record.ContentHash,
		record.Position, record.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindRecords retrieves records matching the filter, ordered by position.
func (s *RecordService) FindRecords(ctx context.Context, filter xwrap.RecordFilter) ([]*xwrap.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, wrapper_id, source_url, fields, content_hash, position, extracted_at FROM records WHERE 1=1")

	if filter.WrapperID != nil {
		query.WriteString(" AND wrapper_id = ?")
		args = append(args, *filter.WrapperID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY position ASC, extracted_at ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*xwrap.Record
	for rows.Next() {
		var record xwrap.Record
		var fields, extractedAt string

		if err := rows.Scan(&record.ID, &record.WrapperID, &record.SourceURL, &fields,
			&record.ContentHash, &record.Position, &extractedAt); err != nil {
			return nil, err
		}

		if record.Fields, err = decodeStringMap(fields, "fields"); err != nil {
			return nil, err
		}
		if record.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at"); err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

// DeleteRecordsByWrapper removes all records for a wrapper.
func (s *RecordService) DeleteRecordsByWrapper(ctx context.Context, wrapperID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE wrapper_id = ?", wrapperID)
	return err
}
