// Package table implements an immutable in-memory relational table
// whose cells are all text. Every operator returns a derived table and
// never mutates its receiver, so Table values can be shared across
// goroutines without locking. Derived tables share unchanged row
// storage with their ancestors; a row is copied only when an operator
// rewrites it.
package table

import (
	"fmt"

	"github.com/tuannm99/tabrel/internal/render"
)

const noColumnsMarker = "(no columns)"

// Table is an ordered attribute list plus rows of text cells. Every
// row holds exactly one cell per attribute. Attribute names are unique
// by convention only; lookups resolve to the first match. The zero
// value is an empty table with no columns.
type Table struct {
	attrs  []string
	rows   [][]string
	policy Policy
}

// New returns an empty table with the given attribute names.
func New(names ...string) Table {
	attrs := make([]string, len(names))
	copy(attrs, names)
	return Table{attrs: attrs}
}

// FromRows builds a table from an attribute list and initial rows,
// copying both so later changes to the inputs cannot leak in. Every
// row must carry exactly one value per attribute.
func FromRows(names []string, rows [][]string) (Table, error) {
	t := New(names...)
	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != len(t.attrs) {
			return Table{}, fmt.Errorf("table: row %d has %d values for %d columns: %w",
				i, len(row), len(t.attrs), ErrShapeMismatch)
		}
		cp := make([]string, len(row))
		copy(cp, row)
		out[i] = cp
	}
	t.rows = out
	return t, nil
}

// ColumnCount returns the number of attributes.
func (t Table) ColumnCount() int { return len(t.attrs) }

// RowCount returns the number of rows.
func (t Table) RowCount() int { return len(t.rows) }

// Attributes returns a copy of the attribute names in column order.
func (t Table) Attributes() []string {
	out := make([]string, len(t.attrs))
	copy(out, t.attrs)
	return out
}

// Row returns a copy of row i. Panics when i is out of range, same as
// indexing a slice.
func (t Table) Row(i int) []string {
	out := make([]string, len(t.rows[i]))
	copy(out, t.rows[i])
	return out
}

// Rows returns a deep copy of all rows in order.
func (t Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cp := make([]string, len(row))
		copy(cp, row)
		out[i] = cp
	}
	return out
}

// Each calls fn for every row in order and stops at the first error,
// returning it. The row slice is shared storage; fn must not retain or
// modify it.
func (t Table) Each(fn func(i int, row []string) error) error {
	for i, row := range t.rows {
		if err := fn(i, row); err != nil {
			return err
		}
	}
	return nil
}

// columnIndex resolves a name to the position of the first matching
// attribute, or -1. Callers must guard the sentinel before indexing
// into a row.
func (t Table) columnIndex(name string) int {
	for i, attr := range t.attrs {
		if attr == name {
			return i
		}
	}
	return -1
}

// AddRow returns a table extended by one row. The value count must
// equal ColumnCount, otherwise ErrShapeMismatch.
func (t Table) AddRow(values ...string) (Table, error) {
	if len(values) != len(t.attrs) {
		return Table{}, fmt.Errorf("table: add row with %d values to %d columns: %w",
			len(values), len(t.attrs), ErrShapeMismatch)
	}
	row := make([]string, len(values))
	copy(row, values)

	// copy the spine so the receiver's backing array is never appended to
	rows := make([][]string, len(t.rows), len(t.rows)+1)
	copy(rows, t.rows)
	rows = append(rows, row)
	return t.derive(t.attrs, rows), nil
}

// MustAddRow is AddRow for fixture building; it panics on a shape
// mismatch.
func (t Table) MustAddRow(values ...string) Table {
	out, err := t.AddRow(values...)
	if err != nil {
		panic(err)
	}
	return out
}

// derive builds a result table carrying over the receiver's policy.
func (t Table) derive(attrs []string, rows [][]string) Table {
	return Table{attrs: attrs, rows: rows, policy: t.policy}
}

// String renders the table as an aligned text grid. A table with no
// columns renders as a fixed marker instead of invoking the renderer.
func (t Table) String() string {
	if len(t.attrs) == 0 {
		return noColumnsMarker
	}
	return render.Grid(t.attrs, t.rows)
}
