package table

import "errors"

var (
	ErrShapeMismatch       = errors.New("table: row shape mismatch")
	ErrColumnCountMismatch = errors.New("table: column count mismatch")
	ErrUnknownAttribute    = errors.New("table: unknown attribute")
)
