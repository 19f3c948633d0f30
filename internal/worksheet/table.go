package worksheet

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

//
// Table is the canonical row-major form of a worksheet table.
// Rows may be ragged; a table that could not be normalized at all
// is malformed and carries the reason.
//
type Table struct {
	rows   [][]string
	reason string
}

// NewTable wraps already normalized rows.
func NewTable(rows [][]string) Table {
	return Table{rows: rows}
}

// MalformedTable returns a table that failed normalization.
func MalformedTable(reason string) Table {
	return Table{reason: reason}
}

// Malformed reports whether the input could not be read as a table.
func (t Table) Malformed() bool {
	return t.reason != ""
}

// Reason explains why the table is malformed.
func (t Table) Reason() string {
	return t.reason
}

// Len is the number of rows.
func (t Table) Len() int {
	return len(t.rows)
}

// Row returns row i (0-based) or nil when out of range.
func (t Table) Row(i int) []string {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// Rows returns the normalized rows.
func (t Table) Rows() [][]string {
	return t.rows
}

//
// ParseTable normalizes a table received as json. Accepted shapes are
// a list of lists, or a tabular object carrying its rows under "data"
// (the split orientation of a dataframe, headers are ignored).
// Anything else becomes a malformed table rather than an error.
//
func ParseTable(v gjson.Result) Table {
	if !v.Exists() || v.Type == gjson.Null {
		return MalformedTable("table is missing")
	}
	if v.IsObject() {
		data := v.Get("data")
		if !data.IsArray() {
			return MalformedTable("tabular object has no data rows")
		}
		v = data
	}
	if !v.IsArray() {
		return MalformedTable(fmt.Sprintf("expected a table, got %s", v.Type))
	}

	var rows [][]string
	for r, row := range v.Array() {
		if !row.IsArray() {
			return MalformedTable(fmt.Sprintf("row %d is not a list", r+1))
		}
		cells := []string{}
		for c, cell := range row.Array() {
			s, ok := jsonCell(cell)
			if !ok {
				return MalformedTable(fmt.Sprintf("row %d column %d is not a scalar value", r+1, c+1))
			}
			cells = append(cells, s)
		}
		rows = append(rows, cells)
	}

	return NewTable(rows)
}

func jsonCell(v gjson.Result) (string, bool) {
	switch v.Type {
	case gjson.Null:
		return "", true
	case gjson.String:
		return v.Str, true
	case gjson.Number, gjson.True, gjson.False:
		return v.Raw, true
	default:
		return "", false
	}
}

// Cell returns the trimmed cell at row r, column c (0-based).
func Cell(row []string, c int) string {
	if c < 0 || c >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[c])
}
