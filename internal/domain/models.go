package domain

// Column names accepted before the first colon of a filter query
const (
	ColumnField1 = "field1"
	ColumnField2 = "field2"
)

// Record represents one row of the grid
type Record struct {
	Field1 string
	Field2 string
}

// Field returns the value of the named column and whether the column exists
func (r Record) Field(column string) (string, bool) {
	switch column {
	case ColumnField1:
		return r.Field1, true
	case ColumnField2:
		return r.Field2, true
	}
	return "", false
}
