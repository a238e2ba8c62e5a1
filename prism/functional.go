// SPDX-License-Identifier: MIT
// Package prism: the self-consistent cost function.
package prism

import (
	"fmt"

	"github.com/katalvlaran/goprism/closure"
	"github.com/katalvlaran/goprism/field"
)

// Residual is the PRISM cost function handed to the root-finder.
//
// x is a candidate r·γ(r) field flattened to rank²·gridLength values; the
// residual r·(γ_out − γ_in) is written into dst. The same change of
// variables scales input and output, preserving numerical conditioning for
// hard-core potentials.
//
// The call mutates the solver's working buffers (no per-call allocation)
// but is pure with respect to the root-finder's contract: the same x
// always produces bit-identical dst. Concurrent calls on one solver are
// unsafe.
func (p *PRISM) Residual(dst, x []float64) error {
	n := p.Size()
	if len(x) != n || len(dst) != n {
		return fmt.Errorf("prism: Residual: got %d values, want %d: %w", len(x), n, ErrBadGuess)
	}

	// Stage 1: reshape x into the real-space γ field and undo the r·γ
	// change of variables.
	copy(p.gammaIn.RawData(), x)
	p.gammaIn.SetSpace(field.Real)
	if err := p.gammaIn.DivGrid(p.longR); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}

	// Stage 2: closures produce the direct correlation pair by pair.
	// directCorr left this function in Fourier space last call; re-stamp.
	p.directCorr.SetSpace(field.Real)
	for i := 0; i < p.rank; i++ {
		for j := i; j < p.rank; j++ {
			cl := p.sys.ClosureAt(i, j)
			switch cl.Kind() {
			case closure.Atomic:
				gamma, err := p.gammaIn.SeriesAt(p.gammaScratch, i, j)
				if err != nil {
					return fmt.Errorf("prism: Residual: pair %s-%s: %w", p.types[i], p.types[j], err)
				}
				c, err := cl.Calculate(gamma)
				if err != nil {
					return fmt.Errorf("prism: Residual: pair %s-%s: %w", p.types[i], p.types[j], err)
				}
				if err = p.directCorr.SetSeriesAt(i, j, c); err != nil {
					return fmt.Errorf("prism: Residual: pair %s-%s: %w", p.types[i], p.types[j], err)
				}
			case closure.Molecular:
				return fmt.Errorf("prism: Residual: pair %s-%s: %w", p.types[i], p.types[j], closure.ErrNotImplemented)
			default:
				return fmt.Errorf("prism: Residual: pair %s-%s has kind %v: %w",
					p.types[i], p.types[j], cl.Kind(), ErrUnknownKind)
			}
		}
	}

	// Stage 3: into reciprocal space, where the chain sum is algebraic.
	if err := p.directCorr.ToFourier(p.dom); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}

	// Stage 4: Ornstein–Zernike. H = (I−ΩC)⁻¹·ΩC·Ω, then divide by the
	// pair-density matrix to recover physical normalization.
	if err := field.Dot(p.oc, p.omega, p.directCorr); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}
	if err := p.ioc.CopyFrom(p.ident); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}
	if err := p.ioc.Sub(p.oc); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}
	if err := p.ioc.Invert(); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}
	if err := field.Dot(p.hc, p.ioc, p.oc); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}
	if err := field.Dot(p.totalCorr, p.hc, p.omega); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}
	if err := p.totalCorr.DivBlock(p.pairDensity); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}

	// Stage 5: γ_out = h − c, back to real space.
	if err := p.gammaOut.CopyFrom(p.totalCorr); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}
	if err := p.gammaOut.Sub(p.directCorr); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}
	if err := p.gammaOut.ToReal(p.dom); err != nil {
		return fmt.Errorf("prism: Residual: %w", err)
	}

	// Stage 6: residual, re-scaled by r.
	in, out := p.gammaIn.RawData(), p.gammaOut.RawData()
	rr := p.rank * p.rank
	for i := 0; i < p.length; i++ {
		ri := p.longR[i]
		for o := i * rr; o < (i+1)*rr; o++ {
			dst[o] = ri * (out[o] - in[o])
		}
	}

	return nil
}
