package schools

// Record is one parsed data row: column name mapped to the raw cell value.
// Values stay strings; no coercion happens at this layer.
type Record map[string]string

// Get returns the cell value for a column, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r[column]
}

// Dataset is an ordered sequence of Records for one request. It is built
// fresh on every read and never cached.
type Dataset []Record

// Len returns the number of records
func (d Dataset) Len() int {
	return len(d)
}

// Empty reports whether the dataset holds no records
func (d Dataset) Empty() bool {
	return len(d) == 0
}

// Table is one parsed source file: the header row in file order plus the
// data rows zipped against it.
type Table struct {
	Headers []string
	Rows    Dataset
}
