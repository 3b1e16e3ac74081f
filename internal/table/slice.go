package table

// Limit keeps at most the first n rows. A negative n keeps none; an n
// past the end keeps everything.
func (t Table) Limit(n int) Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	// full slice expression so a later append cannot reach shared storage
	return t.derive(t.attrs, t.rows[:n:n])
}

// Offset skips the first n rows. A negative n skips none; an n past
// the end yields an empty table.
func (t Table) Offset(n int) Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	return t.derive(t.attrs, t.rows[n:len(t.rows):len(t.rows)])
}
