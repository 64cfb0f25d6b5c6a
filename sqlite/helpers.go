package sqlite

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content []byte) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, xxhash.Sum64(content)))
}

// encodeStringMap serializes m as JSON. Keys are emitted in sorted order,
// so equal maps always encode to equal bytes.
func encodeStringMap(m map[string]string) ([]byte, error) {
	if m == nil {
		m = map[string]string{}
	}
	return json.Marshal(m)
}

func decodeStringMap(data, fieldName string) (map[string]string, error) {
	var m map[string]string
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", fieldName, err)
	}
	return m, nil
}
