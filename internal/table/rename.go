package table

import (
	"fmt"
	"log/slog"
)

// RenamePair maps an existing attribute name to its replacement.
type RenamePair struct {
	Old string
	New string
}

// Rename replaces attribute names pair by pair, leaving rows, column
// order and width untouched. Pairs apply in sequence against the list
// as renamed so far, so a later pair may target an earlier pair's New
// name. An Old name that resolves to no column is skipped under the
// default lenient policy and fails with ErrUnknownAttribute under
// Policy.StrictRename.
func (t Table) Rename(pairs ...RenamePair) (Table, error) {
	attrs := make([]string, len(t.attrs))
	copy(attrs, t.attrs)
	for _, pair := range pairs {
		pos := -1
		for i, attr := range attrs {
			if attr == pair.Old {
				pos = i
				break
			}
		}
		if pos < 0 {
			if t.policy.StrictRename {
				return Table{}, fmt.Errorf("table: rename %q: %w", pair.Old, ErrUnknownAttribute)
			}
			slog.Debug("rename skipped unknown attribute", "attr", pair.Old)
			continue
		}
		attrs[pos] = pair.New
	}
	return t.derive(attrs, t.rows), nil
}
