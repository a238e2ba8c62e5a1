// SPDX-License-Identifier: MIT
package closure

import (
	"fmt"
	"math"
)

// PercusYevick is the Percus–Yevick atomic closure written in the r·γ
// change of variables:
//
//	c(r) = (exp(−U(r)) − 1) · (1 + γ(r))
//
// For a hard core U → ∞ the Boltzmann factor goes to zero and the relation
// stays finite, which is what makes hard-sphere systems solvable at all.
type PercusYevick struct {
	potential []float64
	value     []float64
}

// NewPercusYevick returns an unbound Percus–Yevick closure.
func NewPercusYevick() *PercusYevick { return &PercusYevick{} }

// Kind reports Atomic.
func (c *PercusYevick) Kind() Kind { return Atomic }

// SetPotential binds a copy of the pair's real-space potential series.
func (c *PercusYevick) SetPotential(u []float64) {
	c.potential = append(c.potential[:0], u...)
	c.value = nil
}

// Value returns the last computed direct correlation series, or nil before
// the first Calculate.
func (c *PercusYevick) Value() []float64 { return c.value }

// Calculate evaluates the closure for the supplied γ series.
//
// Returns ErrNoPotential when unbound and ErrDomainMismatch when len(gamma)
// differs from the bound potential's length. The returned slice is reused
// across calls. Complexity: O(length).
func (c *PercusYevick) Calculate(gamma []float64) ([]float64, error) {
	if err := checkDomain(len(gamma), c.potential); err != nil {
		return nil, fmt.Errorf("closure: PercusYevick: %w", err)
	}
	if c.value == nil {
		c.value = make([]float64, len(gamma))
	}
	for i, g := range gamma {
		c.value[i] = (math.Exp(-c.potential[i]) - 1.0) * (1.0 + g)
	}
	return c.value, nil
}

// Clone returns an independent copy of the closure.
func (c *PercusYevick) Clone() Closure {
	n := &PercusYevick{}
	if c.potential != nil {
		n.potential = append([]float64(nil), c.potential...)
	}
	return n
}

// checkDomain validates the shared atomic-closure preconditions.
func checkDomain(gammaLen int, potential []float64) error {
	if potential == nil {
		return ErrNoPotential
	}
	if gammaLen != len(potential) {
		return fmt.Errorf("gamma length %d, potential length %d: %w", gammaLen, len(potential), ErrDomainMismatch)
	}
	return nil
}
