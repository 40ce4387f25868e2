// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All methods MUST
// return these sentinels and tests MUST check them via errors.Is. Public
// accessors never panic on user-triggered conditions.
package matrix

import "errors"

var (
	// ErrBadOrder is returned when a requested matrix order is < 1.
	// Constructors must validate before allocation.
	ErrBadOrder = errors.New("matrix: order must be >= 1")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set/SetSym/RowSegment) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadSegment indicates a row-segment request with lo > hi or bounds
	// outside the row.
	ErrBadSegment = errors.New("matrix: invalid row segment bounds")

	// ErrNilMatrix indicates that a nil *SymmetricDense was passed to a
	// package-level helper (Fprint/Save).
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
