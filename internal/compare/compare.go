// Package compare provides ready-made cell orders for sorting and a
// numeric parsing helper for predicates. The engine itself treats
// every cell as opaque text; converting a cell to a number is always
// the caller's move, and these helpers are the standard conversions
// kept in one place.
package compare

import "github.com/shopspring/decimal"

// TextAsc orders cells as plain text, ascending. This is the order
// SortBy applies when given none.
func TextAsc(a, b string) bool { return a < b }

// TextDesc orders cells as plain text, descending.
func TextDesc(a, b string) bool { return b < a }

// NumericAsc orders cells by exact decimal value, ascending, so "9"
// sorts before "10". Cells that do not parse as numbers sort after
// every numeric cell, among themselves as ascending text, keeping the
// relation total.
func NumericAsc(a, b string) bool {
	da, aok := parse(a)
	db, bok := parse(b)
	switch {
	case aok && bok:
		return da.LessThan(db)
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

// NumericDesc orders numeric cells descending. Non-numeric cells still
// sort after every numeric one, among themselves as ascending text.
func NumericDesc(a, b string) bool {
	da, aok := parse(a)
	db, bok := parse(b)
	switch {
	case aok && bok:
		return db.LessThan(da)
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

// Number parses a cell as an exact decimal. Meant for numeric guards
// inside row predicates.
func Number(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func parse(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	return d, err == nil
}
