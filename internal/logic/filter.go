package logic

import (
	"strings"

	"gridfilter/internal/domain"
)

// Query is a filter string split at its first colon
type Query struct {
	Raw       string
	Column    string
	Needle    string
	HasColumn bool
}

// ParseQuery splits q into column and needle at the first colon.
// Without a colon the whole query is the needle.
func ParseQuery(q string) Query {
	pos := strings.IndexByte(q, ':')
	if pos < 0 {
		return Query{Raw: q, Needle: q}
	}
	return Query{
		Raw:       q,
		Column:    q[:pos],
		Needle:    q[pos+1:],
		HasColumn: true,
	}
}

// RowFilter decides whether a record is visible for a query
type RowFilter interface {
	Matches(query string, rec *domain.Record) bool
}

// ColumnFilter is the default RowFilter understanding "column:needle" queries
type ColumnFilter struct{}

// Matches implements RowFilter
func (ColumnFilter) Matches(query string, rec *domain.Record) bool {
	return Matches(query, rec)
}

// Matches reports whether rec is visible for query. Matching is a
// case-sensitive substring test. An unknown column falls back to searching
// field1 for the entire raw query, column prefix included.
func Matches(query string, rec *domain.Record) bool {
	if rec == nil {
		return false
	}
	if query == "" {
		return true
	}

	q := ParseQuery(query)
	if q.HasColumn {
		if value, ok := rec.Field(q.Column); ok {
			return strings.Contains(value, q.Needle)
		}
	}
	return strings.Contains(rec.Field1, q.Raw)
}
