// SPDX-License-Identifier: MIT
// Package field: arithmetic kernels — elementwise ops, broadcasts,
// per-grid-point matrix product and inversion.
package field

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Add performs m += n elementwise.
// Operands must share shape and space; returns ErrDimensionMismatch or
// ErrSpaceMismatch otherwise. Complexity: O(length·rank²).
func (m *MatrixField) Add(n *MatrixField) error {
	if err := m.sameShape(n); err != nil {
		return fmt.Errorf("field: Add: %w", err)
	}
	floats.Add(m.data, n.data)
	return nil
}

// Sub performs m -= n elementwise under the same contract as Add.
func (m *MatrixField) Sub(n *MatrixField) error {
	if err := m.sameShape(n); err != nil {
		return fmt.Errorf("field: Sub: %w", err)
	}
	floats.Sub(m.data, n.data)
	return nil
}

// MulElem performs m *= n elementwise under the same contract as Add.
func (m *MatrixField) MulElem(n *MatrixField) error {
	if err := m.sameShape(n); err != nil {
		return fmt.Errorf("field: MulElem: %w", err)
	}
	floats.Mul(m.data, n.data)
	return nil
}

// DivElem performs m /= n elementwise under the same contract as Add.
func (m *MatrixField) DivElem(n *MatrixField) error {
	if err := m.sameShape(n); err != nil {
		return fmt.Errorf("field: DivElem: %w", err)
	}
	floats.Div(m.data, n.data)
	return nil
}

// AddConst shifts every value by c.
func (m *MatrixField) AddConst(c float64) {
	floats.AddConst(c, m.data)
}

// Scale multiplies every value by c.
func (m *MatrixField) Scale(c float64) {
	floats.Scale(c, m.data)
}

// MulGrid multiplies each grid point's block by the per-point scalar w[i]
// (broadcast over the rank×rank block). len(w) must equal Length().
func (m *MatrixField) MulGrid(w []float64) error {
	if len(w) != m.length {
		return fmt.Errorf("field: MulGrid: weight length %d, want %d: %w", len(w), m.length, ErrDimensionMismatch)
	}
	rr := m.rank * m.rank
	for i := 0; i < m.length; i++ {
		floats.Scale(w[i], m.data[i*rr:(i+1)*rr])
	}
	return nil
}

// DivGrid divides each grid point's block by the per-point scalar w[i].
// This undoes the r·γ change of variables on a whole field at once.
func (m *MatrixField) DivGrid(w []float64) error {
	if len(w) != m.length {
		return fmt.Errorf("field: DivGrid: weight length %d, want %d: %w", len(w), m.length, ErrDimensionMismatch)
	}
	rr := m.rank * m.rank
	for i := 0; i < m.length; i++ {
		floats.Scale(1.0/w[i], m.data[i*rr:(i+1)*rr])
	}
	return nil
}

// MulBlock multiplies every grid point's block elementwise by the single
// rank×rank matrix b (row-major, broadcast across the grid).
func (m *MatrixField) MulBlock(b []float64) error {
	rr := m.rank * m.rank
	if len(b) != rr {
		return fmt.Errorf("field: MulBlock: block length %d, want %d: %w", len(b), rr, ErrDimensionMismatch)
	}
	for i := 0; i < m.length; i++ {
		floats.Mul(m.data[i*rr:(i+1)*rr], b)
	}
	return nil
}

// DivBlock divides every grid point's block elementwise by the single
// rank×rank matrix b. This recovers physically normalized correlation
// functions from density-weighted ones.
func (m *MatrixField) DivBlock(b []float64) error {
	rr := m.rank * m.rank
	if len(b) != rr {
		return fmt.Errorf("field: DivBlock: block length %d, want %d: %w", len(b), rr, ErrDimensionMismatch)
	}
	for i := 0; i < m.length; i++ {
		floats.Div(m.data[i*rr:(i+1)*rr], b)
	}
	return nil
}

// Dot computes the per-grid-point matrix product dst[i] = a[i]·b[i] for
// every grid index i. This is the primitive that lets the Ornstein–Zernike
// relation be expressed as ordinary matrix algebra at each wavenumber.
//
// a and b must share shape and space; dst must have the same shape and must
// not alias either operand (ErrAliased). dst's space tag is overwritten with
// the operands' space. Complexity: O(length·rank³).
func Dot(dst, a, b *MatrixField) error {
	if dst == nil || a == nil || b == nil {
		return fmt.Errorf("field: Dot: %w", ErrNilField)
	}
	if err := a.sameShape(b); err != nil {
		return fmt.Errorf("field: Dot: %w", err)
	}
	if dst.length != a.length || dst.rank != a.rank {
		return fmt.Errorf("field: Dot: dst (%d,%d), want (%d,%d): %w",
			dst.length, dst.rank, a.length, a.rank, ErrDimensionMismatch)
	}
	if dst == a || dst == b {
		return fmt.Errorf("field: Dot: %w", ErrAliased)
	}

	r := a.rank
	rr := r * r
	for i := 0; i < a.length; i++ {
		off, end := i*rr, (i+1)*rr
		ab := mat.NewDense(r, r, a.data[off:end:end])
		bb := mat.NewDense(r, r, b.data[off:end:end])
		db := mat.NewDense(r, r, dst.data[off:end:end])
		db.Mul(ab, bb)
	}
	dst.space = a.space

	return nil
}

// Invert replaces each grid point's block with its matrix inverse, in
// place. The space tag is unchanged.
//
// Returns ErrSingular naming the first grid index whose block is not
// invertible. An ill-conditioned but invertible block is accepted.
// Complexity: O(length·rank³).
func (m *MatrixField) Invert() error {
	r := m.rank
	rr := r * r
	var inv mat.Dense // sized on first use, reused across grid points
	for i := 0; i < m.length; i++ {
		off, end := i*rr, (i+1)*rr
		blk := mat.NewDense(r, r, m.data[off:end:end])
		if err := inv.Inverse(blk); err != nil {
			var cond mat.Condition
			if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
				return fmt.Errorf("field: Invert: grid point %d: %w", i, ErrSingular)
			}
			// Finite condition number: the inverse was computed, keep it.
		}
		copy(m.data[off:end], inv.RawMatrix().Data)
	}
	return nil
}
