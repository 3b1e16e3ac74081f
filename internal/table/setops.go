package table

import (
	"fmt"
	"strconv"
	"strings"
)

// The set operators use bag semantics, not SQL's: duplicates count.
// Union keeps them, Intersect keeps a row min(count left, count right)
// times, Except removes one left occurrence per right occurrence. All
// three require equal column counts and keep the receiver's attribute
// names.

// Union appends other's rows after the receiver's, duplicates kept.
func (t Table) Union(other Table) (Table, error) {
	if err := t.sameWidth(other, "union"); err != nil {
		return Table{}, err
	}
	rows := make([][]string, 0, len(t.rows)+len(other.rows))
	rows = append(rows, t.rows...)
	rows = append(rows, other.rows...)
	return t.derive(t.attrs, rows), nil
}

// Intersect keeps each receiver row for as many occurrences as other
// also holds, preserving receiver order.
func (t Table) Intersect(other Table) (Table, error) {
	if err := t.sameWidth(other, "intersect"); err != nil {
		return Table{}, err
	}
	counts := other.rowCounts()
	rows := make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		key := rowKey(row)
		if counts[key] > 0 {
			counts[key]--
			rows = append(rows, row)
		}
	}
	return t.derive(t.attrs, rows), nil
}

// Except removes one receiver occurrence per matching occurrence in
// other, preserving the order of survivors.
func (t Table) Except(other Table) (Table, error) {
	if err := t.sameWidth(other, "except"); err != nil {
		return Table{}, err
	}
	counts := other.rowCounts()
	rows := make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		key := rowKey(row)
		if counts[key] > 0 {
			counts[key]--
			continue
		}
		rows = append(rows, row)
	}
	return t.derive(t.attrs, rows), nil
}

func (t Table) sameWidth(other Table, op string) error {
	if len(t.attrs) != len(other.attrs) {
		return fmt.Errorf("table: %s of %d-column and %d-column tables: %w",
			op, len(t.attrs), len(other.attrs), ErrColumnCountMismatch)
	}
	return nil
}

// rowCounts tallies row multiplicity keyed by exact cell content.
func (t Table) rowCounts() map[string]int {
	counts := make(map[string]int, len(t.rows))
	for _, row := range t.rows {
		counts[rowKey(row)]++
	}
	return counts
}

// rowKey encodes a row so two keys collide only when every cell is
// equal; quoting keeps cell boundaries unambiguous.
func rowKey(row []string) string {
	var b strings.Builder
	for i, cell := range row {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(cell))
	}
	return b.String()
}
