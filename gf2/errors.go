// Package gf2: sentinel error set. Algorithms return these sentinels
// (optionally wrapped with context via fmt.Errorf and %w) and tests match
// them with errors.Is. No routine panics on user-triggered conditions.
package gf2

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows, non-positive columns) or when an operation cannot
	// represent the given shape (e.g. exporting a zero-row matrix).
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrNonBinary indicates an entry other than 0 or 1 where a bit is required.
	ErrNonBinary = errors.New("gf2: entry must be 0 or 1")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("gf2: nil matrix")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrZeroRow is returned by kernel extraction when the input still
	// contains an all-zero row; callers must strip zero rows first.
	ErrZeroRow = errors.New("gf2: all-zero row in reduced matrix")
)
