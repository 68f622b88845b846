package domain

import "time"

// Table is the parsed upload: a header row plus data rows. Rows may be
// ragged; consumers index defensively.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Col returns the index of name in Columns, or -1.
func (t Table) Col(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns row[idx] or "" when the row is short or idx is -1.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Session is one upload's in-memory working copy. A re-upload creates
// a fresh session; recomputation always starts from Table.
type Session struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Table      Table     `json:"table"`
	UploadedAt time.Time `json:"uploaded_at"`
}
