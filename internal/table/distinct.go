package table

// Distinct drops rows that duplicate an earlier row in every cell,
// keeping first occurrences in their original order.
func (t Table) Distinct() Table {
	seen := make(map[string]struct{}, len(t.rows))
	rows := make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		key := rowKey(row)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, row)
	}
	return t.derive(t.attrs, rows)
}
