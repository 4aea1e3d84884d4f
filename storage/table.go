package storage

// Row is one data row restricted to a table's columns.
type Row struct {
	// Index is the 0-based position of the row among the data rows of the
	// source file. It survives later filtering.
	Index  int
	Fields map[string]string
}

// Get returns the raw value of col, or "" when the row has no such cell.
func (r Row) Get(col string) string {
	return r.Fields[col]
}

// Table is an ordered set of rows over a fixed column list.
type Table struct {
	Columns []string
	Rows    []Row
}

// EmptyTable returns a zero-row table typed with columns.
func EmptyTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Sheet is a whole parsed file: every column, every record.
type Sheet struct {
	Header  []string
	Records [][]string
}

// Column returns the index of name in the header, or -1.
func (s *Sheet) Column(name string) int {
	for i, h := range s.Header {
		if h == name {
			return i
		}
	}
	return -1
}
