package table

import "fmt"

// Lookup resolves an attribute name to the corresponding cell of the
// row under evaluation. A name that does not resolve to a column
// returns ErrUnknownAttribute.
type Lookup func(attr string) (string, error)

// Predicate decides whether the row presented through get takes part
// in the result. Any returned error aborts the surrounding operator.
type Predicate func(get Lookup) (bool, error)

// lookupIn builds the Lookup closure for one row.
func (t Table) lookupIn(row []string) Lookup {
	return func(attr string) (string, error) {
		pos := t.columnIndex(attr)
		if pos < 0 || pos >= len(row) {
			return "", fmt.Errorf("table: lookup %q: %w", attr, ErrUnknownAttribute)
		}
		return row[pos], nil
	}
}
