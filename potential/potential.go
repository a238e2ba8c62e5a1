// SPDX-License-Identifier: MIT
// Package potential: the Potential contract and closed-form implementations.
package potential

import "math"

// Potential supplies a real-space interaction series for one site-type
// pair. Calculate returns a freshly allocated series of len(r) values in
// units of kT, evaluated on the supplied r axis.
type Potential interface {
	Calculate(r []float64) []float64
}

// HardSphere is the athermal excluded-volume potential:
//
//	U(r) = +∞  for r < σ
//	U(r) = 0   for r ≥ σ
type HardSphere struct {
	Sigma float64 // contact distance
}

// Calculate implements Potential.
func (p HardSphere) Calculate(r []float64) []float64 {
	u := make([]float64, len(r))
	for i, ri := range r {
		if ri < p.Sigma {
			u[i] = math.Inf(1)
		}
	}
	return u
}

// LennardJones is the 12-6 potential
//
//	U(r) = 4ε[(σ/r)¹² − (σ/r)⁶]
//
// with an optional cutoff: for Rcut > 0 the potential is zero beyond Rcut,
// and with Shift set it is raised by −U(Rcut) so it vanishes continuously
// at the cutoff.
type LennardJones struct {
	Epsilon float64 // well depth, kT units
	Sigma   float64 // zero-crossing distance
	Rcut    float64 // cutoff distance; 0 disables the cutoff
	Shift   bool    // shift tail to zero at Rcut
}

// Calculate implements Potential.
func (p LennardJones) Calculate(r []float64) []float64 {
	var shift float64
	if p.Rcut > 0 && p.Shift {
		shift = p.at(p.Rcut)
	}
	u := make([]float64, len(r))
	for i, ri := range r {
		if p.Rcut > 0 && ri > p.Rcut {
			continue
		}
		u[i] = p.at(ri) - shift
	}
	return u
}

// at evaluates the bare 12-6 form at one separation.
func (p LennardJones) at(r float64) float64 {
	sr6 := math.Pow(p.Sigma/r, 6.0)
	return 4.0 * p.Epsilon * (sr6*sr6 - sr6)
}

// HardCoreLennardJones combines a hard core at σ with the attractive
// Lennard-Jones tail beyond it:
//
//	U(r) = +∞                      for r < σ
//	U(r) = 4ε[(σ/r)¹² − (σ/r)⁶]    for r ≥ σ
type HardCoreLennardJones struct {
	Epsilon float64
	Sigma   float64
}

// Calculate implements Potential.
func (p HardCoreLennardJones) Calculate(r []float64) []float64 {
	lj := LennardJones{Epsilon: p.Epsilon, Sigma: p.Sigma}
	u := make([]float64, len(r))
	for i, ri := range r {
		if ri < p.Sigma {
			u[i] = math.Inf(1)
		} else {
			u[i] = lj.at(ri)
		}
	}
	return u
}

// WeeksChandlerAndersen is the purely repulsive part of the 12-6 potential:
// Lennard-Jones cut at its minimum r = 2^{1/6}·σ and shifted up by ε, so the
// repulsion decays continuously to zero at the cutoff:
//
//	U(r) = 4ε[(σ/r)¹² − (σ/r)⁶] + ε   for r ≤ 2^{1/6}·σ
//	U(r) = 0                           for r > 2^{1/6}·σ
type WeeksChandlerAndersen struct {
	Epsilon float64 // repulsion strength, kT units
	Sigma   float64 // zero-crossing distance of the parent 12-6 form
}

// Calculate implements Potential.
func (p WeeksChandlerAndersen) Calculate(r []float64) []float64 {
	lj := LennardJones{
		Epsilon: p.Epsilon,
		Sigma:   p.Sigma,
		Rcut:    math.Pow(2.0, 1.0/6.0) * p.Sigma,
		Shift:   true,
	}
	return lj.Calculate(r)
}

// Exponential is a hard core at σ with an exponentially decaying tail:
//
//	U(r) = +∞                    for r < σ
//	U(r) = ε·exp(−(r−σ)/α)       for r ≥ σ
//
// Negative ε gives exponential attraction, positive ε repulsion.
type Exponential struct {
	Epsilon float64 // tail contact strength, kT units
	Sigma   float64 // hard-core distance
	Alpha   float64 // tail decay length
}

// Calculate implements Potential.
func (p Exponential) Calculate(r []float64) []float64 {
	u := make([]float64, len(r))
	for i, ri := range r {
		if ri < p.Sigma {
			u[i] = math.Inf(1)
		} else {
			u[i] = p.Epsilon * math.Exp(-(ri-p.Sigma)/p.Alpha)
		}
	}
	return u
}
