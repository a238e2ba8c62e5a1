// SPDX-License-Identifier: MIT
// Package closure: capability kinds, the Closure contract and sentinels.
package closure

import "errors"

var (
	// ErrNoPotential is returned by Calculate when the closure has not been
	// bound to a potential series yet.
	ErrNoPotential = errors.New("closure: potential is not set")

	// ErrDomainMismatch is returned when the supplied gamma series length
	// disagrees with the bound potential's length. The mismatch is fatal;
	// series are never truncated or padded.
	ErrDomainMismatch = errors.New("closure: gamma/potential domain mismatch")

	// ErrNotImplemented marks the declared-but-unimplemented molecular
	// closure family.
	ErrNotImplemented = errors.New("closure: molecular closures are not implemented")
)

// Kind enumerates the closure capability families. The solver's pair loop
// dispatches on the kind explicitly and rejects anything it does not
// recognize rather than falling through.
type Kind int

const (
	// Atomic closures compute c(r) directly from the scalar γ(r) field.
	Atomic Kind = iota + 1

	// Molecular closures are a distinct algorithm family operating on
	// whole-molecule propagators. Declared, not implemented.
	Molecular
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case Atomic:
		return "atomic"
	case Molecular:
		return "molecular"
	default:
		return "unknown"
	}
}

// Closure is the contract every closure relation satisfies.
//
// SetPotential binds the pair's real-space potential series U(r); the
// closure keeps its own copy, fixed for the life of a solve. Calculate maps
// a real-space γ series of the same length to the pair's direct correlation
// series; the returned slice is owned by the closure and overwritten by the
// next call. Clone returns an independent copy (unbound state included) for
// use by another solver.
type Closure interface {
	Kind() Kind
	SetPotential(u []float64)
	Calculate(gamma []float64) ([]float64, error)
	Clone() Closure
}
