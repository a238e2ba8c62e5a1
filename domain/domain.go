// SPDX-License-Identifier: MIT
// Package domain: real/reciprocal grids and the discrete sine transform pair.
package domain

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

var (
	// ErrBadGrid is returned when a Domain is requested with a non-positive
	// length or spacing.
	ErrBadGrid = errors.New("domain: length and dr must be > 0")

	// ErrLengthMismatch is returned when a series handed to a transform does
	// not have exactly the domain's grid length.
	ErrLengthMismatch = errors.New("domain: series length does not match grid")
)

// Domain carries the real- and reciprocal-space solution grids of a PRISM
// problem together with the transform plan that connects them.
//
// The two spacings are tied by the transform's Nyquist relation
// dk = π/(dr·length), which guarantees dr·dk·length = π and therefore an
// exact discrete round trip between the spaces.
type Domain struct {
	length int
	dr, dk float64

	r, k []float64 // axes: r[i]=(i+1)·dr, k[i]=(i+1)·dk

	fwd []float64 // 2π·dr·r[i], forward (SINQB / DST-II) weights
	inv []float64 // dk/(4π²)·k[i], inverse (SINQF / DST-III) weights

	plan *fourier.QuarterWaveFFT
}

// New constructs an immutable Domain with the given grid length and
// real-space spacing dr. The reciprocal spacing dk is derived from the
// Nyquist relation.
//
// Returns ErrBadGrid when length <= 0 or dr <= 0.
// Complexity: O(length) time and memory.
func New(length int, dr float64) (*Domain, error) {
	if length <= 0 || dr <= 0 {
		return nil, fmt.Errorf("domain: New(%d, %g): %w", length, dr, ErrBadGrid)
	}

	d := &Domain{
		length: length,
		dr:     dr,
		dk:     math.Pi / (dr * float64(length)),
		r:      make([]float64, length),
		k:      make([]float64, length),
		fwd:    make([]float64, length),
		inv:    make([]float64, length),
		plan:   fourier.NewQuarterWaveFFT(length),
	}
	for i := 0; i < length; i++ {
		d.r[i] = float64(i+1) * d.dr
		d.k[i] = float64(i+1) * d.dk
		d.fwd[i] = 2.0 * math.Pi * d.dr * d.r[i]
		d.inv[i] = d.dk / (4.0 * math.Pi * math.Pi) * d.k[i]
	}

	return d, nil
}

// Length returns the number of grid points shared by both spaces.
func (d *Domain) Length() int { return d.length }

// DR returns the real-space grid spacing.
func (d *Domain) DR() float64 { return d.dr }

// DK returns the reciprocal-space grid spacing.
func (d *Domain) DK() float64 { return d.dk }

// R returns a copy of the real-space axis, r[i] = (i+1)·dr.
func (d *Domain) R() []float64 {
	r := make([]float64, d.length)
	copy(r, d.r)
	return r
}

// K returns a copy of the reciprocal-space axis, k[i] = (i+1)·dk.
func (d *Domain) K() []float64 {
	k := make([]float64, d.length)
	copy(k, d.k)
	return k
}

// ToFourier transforms a real-space series f into reciprocal space,
// writing the result into dst and returning it.
//
// The transform is the discretized radial Fourier transform
//
//	F(k_j) = (4π/k_j) Σ_i r_i·f(r_i)·sin(k_j·r_i)·dr
//
// realized as SINQB(2π·dr·r⊙f) / (2k).
//
// If dst is nil a new slice is allocated. dst and f may be the same slice.
// Returns ErrLengthMismatch when len(f) or len(dst) differs from Length().
// Complexity: O(length·log length).
func (d *Domain) ToFourier(dst, f []float64) ([]float64, error) {
	var err error
	if dst, err = d.checkSeries(dst, f); err != nil {
		return nil, fmt.Errorf("domain: ToFourier: %w", err)
	}

	// Apply the change-of-variables weights, run the quarter-wave synthesis
	// transform, then divide out the wavenumber axis.
	for i := range f {
		dst[i] = d.fwd[i] * f[i]
	}
	d.plan.SinSequence(dst, dst)
	for i := range dst {
		dst[i] /= 2.0 * d.k[i]
	}

	return dst, nil
}

// ToReal transforms a reciprocal-space series g back into real space,
// writing the result into dst and returning it.
//
// The transform is the discretized inverse radial Fourier transform
//
//	f(r_i) = (1/(2π²·r_i)) Σ_j k_j·F(k_j)·sin(k_j·r_i)·dk
//
// realized as SINQF(dk/(4π²)·k⊙g) / r. It is the exact inverse of
// ToFourier on this grid.
//
// If dst is nil a new slice is allocated. dst and g may be the same slice.
// Returns ErrLengthMismatch when len(g) or len(dst) differs from Length().
// Complexity: O(length·log length).
func (d *Domain) ToReal(dst, g []float64) ([]float64, error) {
	var err error
	if dst, err = d.checkSeries(dst, g); err != nil {
		return nil, fmt.Errorf("domain: ToReal: %w", err)
	}

	for i := range g {
		dst[i] = d.inv[i] * g[i]
	}
	d.plan.SinCoefficients(dst, dst)
	for i := range dst {
		dst[i] /= d.r[i]
	}

	return dst, nil
}

// checkSeries validates src against the grid and allocates dst when nil.
func (d *Domain) checkSeries(dst, src []float64) ([]float64, error) {
	if len(src) != d.length {
		return nil, fmt.Errorf("got %d, want %d: %w", len(src), d.length, ErrLengthMismatch)
	}
	if dst == nil {
		return make([]float64, d.length), nil
	}
	if len(dst) != d.length {
		return nil, fmt.Errorf("dst length %d, want %d: %w", len(dst), d.length, ErrLengthMismatch)
	}
	return dst, nil
}
