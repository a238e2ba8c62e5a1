// SPDX-License-Identifier: MIT
package closure

import "fmt"

// ReferenceMolecular is the declared molecular closure variant. Molecular
// closures operate on whole-molecule propagators rather than site fields
// and require a different algorithm family than the atomic closures above.
//
// The variant exists so that the type space acknowledges it explicitly:
// selecting it fails with ErrNotImplemented at the first functional
// evaluation instead of being silently unavailable.
type ReferenceMolecular struct{}

// NewReferenceMolecular returns the placeholder molecular closure.
func NewReferenceMolecular() *ReferenceMolecular { return &ReferenceMolecular{} }

// Kind reports Molecular.
func (c *ReferenceMolecular) Kind() Kind { return Molecular }

// SetPotential is accepted and ignored; the variant never computes.
func (c *ReferenceMolecular) SetPotential(_ []float64) {}

// Calculate always fails with ErrNotImplemented.
func (c *ReferenceMolecular) Calculate(_ []float64) ([]float64, error) {
	return nil, fmt.Errorf("closure: ReferenceMolecular: %w", ErrNotImplemented)
}

// Clone returns a new placeholder instance.
func (c *ReferenceMolecular) Clone() Closure { return &ReferenceMolecular{} }
