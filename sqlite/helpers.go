package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// timeColumn converts a stored RFC3339 string back to a time.Time,
// naming the column when the stored value does not parse.
func timeColumn(column, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %s holds invalid timestamp %q: %w", column, value, err)
	}
	return t, nil
}

// paginate appends LIMIT and OFFSET clauses for positive filter values
// and returns the extended argument list.
func paginate(query *strings.Builder, args []any, limit, offset int) []any {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, offset)
	}
	return args
}
