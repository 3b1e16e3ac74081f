package table

import (
	"log/slog"
	"sort"
)

// Order reports whether cell a belongs at or before cell b. Both
// strict (<) and non-strict (<=) relations work; rows whose key cells
// tie under the relation keep their input order.
type Order func(a, b string) bool

// SortBy reorders rows by the named attribute, ascending text order
// unless an explicit Order is given. An attribute that does not
// resolve returns the table unchanged. The sort is stable, so multi
// column ordering composes by sorting on the secondary key first and
// the primary key last.
func (t Table) SortBy(attr string, order ...Order) Table {
	pos := t.columnIndex(attr)
	if pos < 0 || pos >= len(t.attrs) {
		slog.Debug("sort skipped unknown attribute", "attr", attr)
		return t
	}
	cmp := textAsc
	if len(order) > 0 && order[0] != nil {
		cmp = order[0]
	}

	rows := make([][]string, len(t.rows))
	copy(rows, t.rows)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][pos], rows[j][pos]
		// strict "before", so a <= relation cannot swap ties
		return cmp(a, b) && !cmp(b, a)
	})
	return t.derive(t.attrs, rows)
}

func textAsc(a, b string) bool { return a < b }
