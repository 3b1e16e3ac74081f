package table

import "log/slog"

// SelectColumns projects the table onto the named attributes, in
// request order. Repeats of an already kept name are dropped, and so
// are names that resolve to no column: unknown columns are tolerated
// here, not rejected as in strict SQL projection. When nothing
// survives the result has zero columns and zero rows.
func (t Table) SelectColumns(names ...string) Table {
	keep := make([]int, 0, len(names))
	attrs := make([]string, 0, len(names))
	seen := make(map[int]struct{}, len(names))
	for _, name := range names {
		pos := t.columnIndex(name)
		if pos < 0 || pos >= len(t.attrs) {
			slog.Debug("projection dropped unknown attribute", "attr", name)
			continue
		}
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		keep = append(keep, pos)
		attrs = append(attrs, t.attrs[pos])
	}
	if len(keep) == 0 {
		return t.derive(nil, nil)
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out := make([]string, len(keep))
		for j, pos := range keep {
			out[j] = row[pos]
		}
		rows[i] = out
	}
	return t.derive(attrs, rows)
}
