package table

import (
	"fmt"
	"log/slog"
)

// Update rewrites the cell at attr through transform for every row
// where cond holds; a nil cond selects every row. An attr that
// resolves to no column returns the table unchanged under the default
// lenient policy and fails with ErrUnknownAttribute under
// Policy.StrictUpdate. A lookup failure inside cond is a hard error
// either way. Row order and attributes are preserved; untouched rows
// are shared with the receiver, rewritten rows are fresh copies.
func (t Table) Update(attr string, transform func(string) string, cond Predicate) (Table, error) {
	pos := t.columnIndex(attr)
	if pos < 0 || pos >= len(t.attrs) {
		if t.policy.StrictUpdate {
			return Table{}, fmt.Errorf("table: update %q: %w", attr, ErrUnknownAttribute)
		}
		slog.Debug("update skipped unknown attribute", "attr", attr)
		return t, nil
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		hit := true
		if cond != nil {
			ok, err := cond(t.lookupIn(row))
			if err != nil {
				return Table{}, fmt.Errorf("table: update %q at row %d: %w", attr, i, err)
			}
			hit = ok
		}
		if !hit {
			rows[i] = row
			continue
		}
		next := make([]string, len(row))
		copy(next, row)
		next[pos] = transform(row[pos])
		rows[i] = next
	}
	return t.derive(t.attrs, rows), nil
}
