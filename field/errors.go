// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// All operations MUST return these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", ...)) and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.
package field

import "errors"

var (
	// ErrBadShape is returned when a field is requested with a non-positive
	// length or rank.
	ErrBadShape = errors.New("field: length and rank must be > 0")

	// ErrDimensionMismatch indicates incompatible shapes between operands:
	// differing grid length, differing rank, or a broadcast operand whose
	// length matches neither the grid nor the block.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")

	// ErrSpaceMismatch indicates that an operation received operands whose
	// space tags are inconsistent with what the operation requires, e.g.
	// combining a real-space with a reciprocal-space field, or transforming
	// a field into the space it is already in.
	ErrSpaceMismatch = errors.New("field: space mismatch")

	// ErrSingular is returned by Invert when the rank×rank block at some
	// grid point is not invertible. The wrapped message names the failing
	// grid index.
	ErrSingular = errors.New("field: singular matrix")

	// ErrUnknownType indicates a site-type label that is not part of the
	// field's type mapping.
	ErrUnknownType = errors.New("field: unknown site-type label")

	// ErrOutOfRange indicates a grid or block index outside valid bounds.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrNilField indicates that a nil *MatrixField was used as receiver or
	// argument.
	ErrNilField = errors.New("field: nil field")

	// ErrAliased is returned by Dot when the destination shares storage with
	// an input operand; per-point matrix products cannot be formed in place.
	ErrAliased = errors.New("field: destination aliases an operand")
)
