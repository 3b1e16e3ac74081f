// Package tabrel is the top-level facade for the tabrel engine: an
// immutable in-memory table of text cells with SQL-flavored operators,
// linked into a host application as a tiny local database for ad-hoc
// data manipulation. Hosts import this package alone; the engine lives
// under internal.
package tabrel

import (
	"github.com/tuannm99/tabrel/internal/compare"
	"github.com/tuannm99/tabrel/internal/table"
)

type (
	Table      = table.Table
	Lookup     = table.Lookup
	Predicate  = table.Predicate
	Order      = table.Order
	RenamePair = table.RenamePair
	Policy     = table.Policy
)

var (
	ErrShapeMismatch       = table.ErrShapeMismatch
	ErrColumnCountMismatch = table.ErrColumnCountMismatch
	ErrUnknownAttribute    = table.ErrUnknownAttribute
)

// Ready-made cell orders for Table.SortBy.
var (
	TextAsc     Order = compare.TextAsc
	TextDesc    Order = compare.TextDesc
	NumericAsc  Order = compare.NumericAsc
	NumericDesc Order = compare.NumericDesc
)

// Number parses a cell as an exact decimal, for numeric guards inside
// predicates.
var Number = compare.Number

// New returns an empty table with the given attribute names.
func New(names ...string) Table { return table.New(names...) }

// FromRows builds a table from an attribute list and initial rows,
// copying both. Every row must carry one value per attribute.
func FromRows(names []string, rows [][]string) (Table, error) {
	return table.FromRows(names, rows)
}
