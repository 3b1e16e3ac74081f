package table

import "fmt"

// Join computes the inner equi-join of t and other on exact text
// equality of the two key cells. Result attributes are every receiver
// attribute prefixed "L." followed by every other attribute prefixed
// "R.", whether or not any names collide. A key that fails to resolve
// is ErrUnknownAttribute. Rows are the nested-loop product filtered on
// the keys, so cost is O(len(t) * len(other)); no index is built.
func (t Table) Join(other Table, keyLeft, keyRight string) (Table, error) {
	lpos := t.columnIndex(keyLeft)
	if lpos < 0 || lpos >= len(t.attrs) {
		return Table{}, fmt.Errorf("table: join left key %q: %w", keyLeft, ErrUnknownAttribute)
	}
	rpos := other.columnIndex(keyRight)
	if rpos < 0 || rpos >= len(other.attrs) {
		return Table{}, fmt.Errorf("table: join right key %q: %w", keyRight, ErrUnknownAttribute)
	}

	attrs := make([]string, 0, len(t.attrs)+len(other.attrs))
	for _, attr := range t.attrs {
		attrs = append(attrs, "L."+attr)
	}
	for _, attr := range other.attrs {
		attrs = append(attrs, "R."+attr)
	}

	var rows [][]string
	for _, lrow := range t.rows {
		for _, rrow := range other.rows {
			if lrow[lpos] != rrow[rpos] {
				continue
			}
			row := make([]string, 0, len(lrow)+len(rrow))
			row = append(row, lrow...)
			row = append(row, rrow...)
			rows = append(rows, row)
		}
	}
	return t.derive(attrs, rows), nil
}
