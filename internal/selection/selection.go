// Package selection tracks which catalog rows are checked, in the order they
// were checked. A Set is a value: every operation returns a new Set and leaves
// the receiver untouched, so UI state can be rebuilt from it at any time.
package selection

import (
	"slices"
	"strings"

	"github.com/faizmokh/curtaincall/internal/catalog"
)

// Set is an insertion-ordered collection of selected rows keyed by row key.
type Set struct {
	order []string
	rows  map[string]catalog.Row
}

// New returns a set holding rows in the given order.
func New(rows ...catalog.Row) Set {
	var s Set
	for _, row := range rows {
		s = s.With(row, true)
	}
	return s
}

// Len reports how many rows are selected.
func (s Set) Len() int {
	return len(s.order)
}

// Has reports whether key is selected.
func (s Set) Has(key string) bool {
	_, ok := s.rows[key]
	return ok
}

// Keys returns selected keys in selection order.
func (s Set) Keys() []string {
	return slices.Clone(s.order)
}

// Rows returns the selected rows in selection order.
func (s Set) Rows() []catalog.Row {
	rows := make([]catalog.Row, 0, len(s.order))
	for _, key := range s.order {
		rows = append(rows, s.rows[key])
	}
	return rows
}

// With sets the membership of row. Re-selecting a row that is already
// selected refreshes its data but keeps its position.
func (s Set) With(row catalog.Row, checked bool) Set {
	_, present := s.rows[row.Key]
	next := s.clone()
	switch {
	case checked && present:
		next.rows[row.Key] = row
	case checked:
		next.rows[row.Key] = row
		next.order = append(next.order, row.Key)
	case present:
		delete(next.rows, row.Key)
		next.order = slices.DeleteFunc(next.order, func(key string) bool { return key == row.Key })
	}
	return next
}

// Toggle flips the membership of row.
func (s Set) Toggle(row catalog.Row) Set {
	return s.With(row, !s.Has(row.Key))
}

// SetAll sets the membership of every row to checked.
func (s Set) SetAll(rows []catalog.Row, checked bool) Set {
	next := s
	for _, row := range rows {
		next = next.With(row, checked)
	}
	return next
}

// AllSelected reports whether every row is selected. It is false for no rows.
func (s Set) AllSelected(rows []catalog.Row) bool {
	if len(rows) == 0 {
		return false
	}
	for _, row := range rows {
		if !s.Has(row.Key) {
			return false
		}
	}
	return true
}

// Summary lists one SummaryLine per selected row. An empty set yields "".
func (s Set) Summary() string {
	lines := make([]string, 0, len(s.order))
	for _, row := range s.Rows() {
		lines = append(lines, row.SummaryLine())
	}
	return strings.Join(lines, "\n")
}

// CopyText joins the copy text of every selected row with a blank line.
func (s Set) CopyText() string {
	blocks := make([]string, 0, len(s.order))
	for _, row := range s.Rows() {
		blocks = append(blocks, row.CopyText())
	}
	return strings.Join(blocks, "\n\n")
}

func (s Set) clone() Set {
	next := Set{
		order: slices.Clone(s.order),
		rows:  make(map[string]catalog.Row, len(s.rows)+1),
	}
	for key, row := range s.rows {
		next.rows[key] = row
	}
	return next
}
