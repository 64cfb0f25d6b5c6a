package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/xwrap"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ xwrap.WrapperService = (*WrapperService)(nil)

// WrapperService implements xwrap.WrapperService using SQLite.
// Mappings are stored as JSON alongside an xxHash of that encoding.
type WrapperService struct {
	db *DB
}

// NewWrapperService creates a new WrapperService.
func NewWrapperService(db *DB) *WrapperService {
	return &WrapperService{db: db}
}

const wrapperColumns = "id, name, mapping, mapping_hash, created_at, updated_at"

// CreateWrapper creates a new wrapper. Names are unique.
func (s *WrapperService) CreateWrapper(ctx context.Context, wrapper *xwrap.Wrapper) error {
	if err := wrapper.Validate(); err != nil {
		return err
	}
	if err := s.checkNameFree(ctx, wrapper.Name, ""); err != nil {
		return err
	}

	mapping, err := encodeStringMap(wrapper.Mapping)
	if err != nil {
		return err
	}

	wrapper.ID = uuid.New().String()
	wrapper.MappingHash = hashContent(mapping)
	now := time.Now().UTC()
	wrapper.CreatedAt = now
	wrapper.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO wrappers (id, name, mapping, mapping_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, wrapper.ID, wrapper.Name, string(mapping), wrapper.MappingHash,
		wrapper.CreatedAt.Format(time.RFC3339), wrapper.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindWrapperByID retrieves a wrapper by ID.
func (s *WrapperService) FindWrapperByID(ctx context.Context, id string) (*xwrap.Wrapper, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+wrapperColumns+" FROM wrappers WHERE id = ?", id)

	wrapper, err := scanWrapper(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, xwrap.Errorf(xwrap.ENOTFOUND, "wrapper not found")
	}
	return wrapper, err
}

// FindWrappers retrieves wrappers matching the filter, ordered by name.
func (s *WrapperService) FindWrappers(ctx context.Context, filter xwrap.WrapperFilter) ([]*xwrap.Wrapper, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + wrapperColumns + " FROM wrappers WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wrappers []*xwrap.Wrapper
	for rows.Next() {
		wrapper, err := scanWrapper(rows)
		if err != nil {
			return nil, err
		}
		wrappers = append(wrappers, wrapper)
	}

	return wrappers, rows.Err()
}

// UpdateWrapper updates an existing wrapper.
func (s *WrapperService) UpdateWrapper(ctx context.Context, id string, upd xwrap.WrapperUpdate) (*xwrap.Wrapper, error) {
	wrapper, err := s.FindWrapperByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		wrapper.Name = *upd.Name
	}
	if upd.Mapping != nil {
		wrapper.Mapping = upd.Mapping
	}

	if err := wrapper.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, wrapper.Name, id); err != nil {
		return nil, err
	}

	mapping, err := encodeStringMap(wrapper.Mapping)
	if err != nil {
		return nil, err
	}
	wrapper.MappingHash = hashContent(mapping)
	wrapper.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE wrappers
		SET name = ?, mapping = ?, mapping_hash = ?, updated_at = ?
		WHERE id = ?
	`, wrapper.Name, string(mapping), wrapper.MappingHash, wrapper.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return wrapper, nil
}

// DeleteWrapper permanently removes a wrapper. Its records are removed by
// the foreign key cascade.
func (s *WrapperService) DeleteWrapper(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM wrappers WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return xwrap.Errorf(xwrap.ENOTFOUND, "wrapper not found")
	}

	return nil
}

// checkNameFree returns EINVALID if another wrapper than exceptID uses name.
func (s *WrapperService) checkNameFree(ctx context.Context, name, exceptID string) error {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM wrappers WHERE name = ? AND id != ?", name, exceptID,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return xwrap.Errorf(xwrap.EINVALID, "wrapper %q already exists", name)
	}
	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWrapper(row scanner) (*xwrap.Wrapper, error) {
	var wrapper xwrap.Wrapper
	var mapping, createdAt, updatedAt string

	if err := row.Scan(&wrapper.ID, &wrapper.Name, &mapping, &wrapper.MappingHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	m, err := decodeStringMap(mapping, "mapping")
	if err != nil {
		return nil, err
	}
	wrapper.Mapping = m

	if wrapper.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if wrapper.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &wrapper, nil
}
