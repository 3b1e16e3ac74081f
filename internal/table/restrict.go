package table

import "fmt"

// SelectRows keeps the rows for which pred returns true, in their
// original order, with attributes unchanged. A lookup inside pred that
// names no column fails the whole call with ErrUnknownAttribute, and
// any other error from pred aborts the same way. Kept rows are shared
// with the receiver.
func (t Table) SelectRows(pred Predicate) (Table, error) {
	rows := make([][]string, 0, len(t.rows))
	for i, row := range t.rows {
		ok, err := pred(t.lookupIn(row))
		if err != nil {
			return Table{}, fmt.Errorf("table: select rows at row %d: %w", i, err)
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return t.derive(t.attrs, rows), nil
}
