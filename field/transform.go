// SPDX-License-Identifier: MIT
// Package field: whole-field transforms between real and reciprocal space.
package field

import (
	"fmt"

	"github.com/katalvlaran/goprism/domain"
)

// ToFourier transforms every (row, col) scalar series of the field from
// real to reciprocal space on the given Domain and flips the space tag.
//
// Calling ToFourier on a field already tagged Fourier is a contract
// violation and fails with ErrSpaceMismatch rather than silently
// re-transforming; a double transform corrupts data undetectably otherwise.
// Returns ErrDimensionMismatch when the field length differs from the grid.
func (m *MatrixField) ToFourier(d *domain.Domain) error {
	if err := m.checkTransform(d, Fourier); err != nil {
		return fmt.Errorf("field: ToFourier: %w", err)
	}
	if err := m.transformAll(d.ToFourier); err != nil {
		return fmt.Errorf("field: ToFourier: %w", err)
	}
	m.space = Fourier
	return nil
}

// ToReal transforms every scalar series from reciprocal to real space and
// flips the space tag, under the same contract as ToFourier.
func (m *MatrixField) ToReal(d *domain.Domain) error {
	if err := m.checkTransform(d, Real); err != nil {
		return fmt.Errorf("field: ToReal: %w", err)
	}
	if err := m.transformAll(d.ToReal); err != nil {
		return fmt.Errorf("field: ToReal: %w", err)
	}
	m.space = Real
	return nil
}

// checkTransform validates grid compatibility and that the field is not
// already in the target space.
func (m *MatrixField) checkTransform(d *domain.Domain, target Space) error {
	if d == nil {
		return fmt.Errorf("nil domain: %w", ErrNilField)
	}
	if m.length != d.Length() {
		return fmt.Errorf("field length %d, grid length %d: %w", m.length, d.Length(), ErrDimensionMismatch)
	}
	if m.space == target {
		return fmt.Errorf("already in %v space: %w", target, ErrSpaceMismatch)
	}
	return nil
}

// transformAll applies a scalar transform to each of the rank² strided
// series independently. Series are gathered into a contiguous scratch
// buffer, transformed, and scattered back.
func (m *MatrixField) transformAll(tr func(dst, src []float64) ([]float64, error)) error {
	rr := m.rank * m.rank
	scratch := make([]float64, m.length)
	for off := 0; off < rr; off++ {
		for i := 0; i < m.length; i++ {
			scratch[i] = m.data[i*rr+off]
		}
		if _, err := tr(scratch, scratch); err != nil {
			return err
		}
		for i := 0; i < m.length; i++ {
			m.data[i*rr+off] = scratch[i]
		}
	}
	return nil
}
