// SPDX-License-Identifier: MIT
// Package omega: the Omega contract and the analytic chain form factors.
package omega

import (
	"errors"
	"math"
)

var (
	// ErrDomainMismatch is returned when a provider's stored grid disagrees
	// with the requested k axis in length or values. Grids are never
	// interpolated, truncated or padded.
	ErrDomainMismatch = errors.New("omega: k-grid domain mismatch")

	// ErrBadTable is returned when a from-file table cannot be parsed into
	// two numeric columns.
	ErrBadTable = errors.New("omega: malformed omega table")

	// ErrBadChain is returned when a chain form factor is requested with a
	// non-positive length or segment size.
	ErrBadChain = errors.New("omega: chain length and segment length must be > 0")
)

// Omega supplies the reciprocal-space intramolecular correlation series for
// one site-type pair, evaluated on the supplied k axis.
type Omega interface {
	Calculate(k []float64) ([]float64, error)
}

// SingleSite is the form factor of a monatomic site: ω(k) = 1.
type SingleSite struct{}

// Calculate implements Omega.
func (SingleSite) Calculate(k []float64) ([]float64, error) {
	w := make([]float64, len(k))
	for i := range w {
		w[i] = 1.0
	}
	return w, nil
}

// NoIntra marks site-type pairs that never share a molecule: ω(k) = 0.
type NoIntra struct{}

// Calculate implements Omega.
func (NoIntra) Calculate(k []float64) ([]float64, error) {
	return make([]float64, len(k)), nil
}

// chainOmega evaluates the ideal-chain form factor
//
//	ω(k) = (1 − E² − 2E/N + 2E^{N+1}/N) / (1 − E)²
//
// for a given per-bond propagator E(k). The form is normalized so that
// ω(k→0) → N, the number of segments.
func chainOmega(k []float64, n float64, e func(float64) float64) []float64 {
	w := make([]float64, len(k))
	for i, ki := range k {
		E := e(ki)
		w[i] = (1.0 - E*E - 2.0*E/n + 2.0*math.Pow(E, n+1.0)/n) / ((1.0 - E) * (1.0 - E))
	}
	return w
}

// GaussianChain is the form factor of an ideal Gaussian chain of Length
// segments with statistical segment length SegmentLength, using the bond
// propagator E = exp(−k²σ²/6).
//
// The k axis must not contain zero (the domain's axes start at dk).
type GaussianChain struct {
	Length        float64 // number of segments N
	SegmentLength float64 // statistical segment length σ
}

// Calculate implements Omega.
func (g GaussianChain) Calculate(k []float64) ([]float64, error) {
	if g.Length <= 0 || g.SegmentLength <= 0 {
		return nil, ErrBadChain
	}
	ss := g.SegmentLength * g.SegmentLength
	return chainOmega(k, g.Length, func(ki float64) float64 {
		return math.Exp(-ki * ki * ss / 6.0)
	}), nil
}

// FreelyJointedChain is the form factor of a freely-jointed chain of Length
// rigid bonds of length BondLength, using E = sin(kl)/(kl).
type FreelyJointedChain struct {
	Length     float64 // number of segments N
	BondLength float64 // rigid bond length l
}

// Calculate implements Omega.
func (f FreelyJointedChain) Calculate(k []float64) ([]float64, error) {
	if f.Length <= 0 || f.BondLength <= 0 {
		return nil, ErrBadChain
	}
	return chainOmega(k, f.Length, func(ki float64) float64 {
		x := ki * f.BondLength
		return math.Sin(x) / x
	}), nil
}
