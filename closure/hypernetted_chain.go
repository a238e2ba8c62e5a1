// SPDX-License-Identifier: MIT
package closure

import (
	"fmt"
	"math"
)

// HyperNettedChain is the HNC atomic closure in the same change of
// variables as PercusYevick:
//
//	c(r) = exp(−U(r) + γ(r)) − 1 − γ(r)
//
// HNC keeps more of the long-range tail than Percus–Yevick and is the usual
// choice for soft or charged interactions.
type HyperNettedChain struct {
	potential []float64
	value     []float64
}

// NewHyperNettedChain returns an unbound HNC closure.
func NewHyperNettedChain() *HyperNettedChain { return &HyperNettedChain{} }

// Kind reports Atomic.
func (c *HyperNettedChain) Kind() Kind { return Atomic }

// SetPotential binds a copy of the pair's real-space potential series.
func (c *HyperNettedChain) SetPotential(u []float64) {
	c.potential = append(c.potential[:0], u...)
	c.value = nil
}

// Value returns the last computed direct correlation series, or nil before
// the first Calculate.
func (c *HyperNettedChain) Value() []float64 { return c.value }

// Calculate evaluates the closure under the same contract as
// PercusYevick.Calculate.
func (c *HyperNettedChain) Calculate(gamma []float64) ([]float64, error) {
	if err := checkDomain(len(gamma), c.potential); err != nil {
		return nil, fmt.Errorf("closure: HyperNettedChain: %w", err)
	}
	if c.value == nil {
		c.value = make([]float64, len(gamma))
	}
	for i, g := range gamma {
		c.value[i] = math.Exp(g-c.potential[i]) - 1.0 - g
	}
	return c.value, nil
}

// Clone returns an independent copy of the closure.
func (c *HyperNettedChain) Clone() Closure {
	n := &HyperNettedChain{}
	if c.potential != nil {
		n.potential = append([]float64(nil), c.potential...)
	}
	return n
}
