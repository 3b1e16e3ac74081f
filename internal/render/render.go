// Package render lays out a table header and rows as an aligned text
// grid. It carries no transformation semantics: callers hand it
// attribute names and same-length rows of text and get display lines
// back.
package render

import "strings"

// Grid renders attrs and rows psql style: cells right-padded to the
// widest entry of their column, joined with " | ", and a dashed rule
// between header and body.
//
//	Name      | Country | Population
//	----------+---------+-----------
//	Leicester | UK      | 500000
func Grid(attrs []string, rows [][]string) string {
	widths := make([]int, len(attrs))
	for i, attr := range attrs {
		widths[i] = len(attr)
	}
	for _, row := range rows {
		for i := range attrs {
			if i < len(row) && len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i := range attrs {
			if i > 0 {
				b.WriteString(" | ")
			}
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(padRight(cell, widths[i]))
		}
		b.WriteByte('\n')
	}

	writeRow(attrs)
	for i, w := range widths {
		if i > 0 {
			b.WriteString("-+-")
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteByte('\n')
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
