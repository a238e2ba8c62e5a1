// SPDX-License-Identifier: MIT
// Package prism: solver construction and the pre-allocated working set.
package prism

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/goprism/domain"
	"github.com/katalvlaran/goprism/field"
	"github.com/katalvlaran/goprism/system"
)

var (
	// ErrUnknownKind is returned when a pair's closure reports a capability
	// kind the functional does not recognize. Unknown kinds never fall
	// through silently.
	ErrUnknownKind = errors.New("prism: unrecognized closure kind")

	// ErrBadGuess is returned when a supplied initial guess does not have
	// length rank²·gridLength.
	ErrBadGuess = errors.New("prism: guess length mismatch")

	// ErrNotSolved is returned by accessors that require a converged
	// solution when no solve has converged yet.
	ErrNotSolved = errors.New("prism: no converged solution available")
)

// PRISM encapsulates one PRISM problem: the snapshotted system, the
// density-scaled intramolecular field, and the working buffers reused by
// every functional evaluation.
//
// The working set is owned exclusively by this instance. Buffers are
// overwritten deterministically from the input vector on every call; space
// tags are re-stamped at the start of each relevant stage because tags
// left over from a previous call are a correctness hazard.
type PRISM struct {
	sys    *system.System // deep snapshot, closures bound to potentials
	dom    *domain.Domain
	rank   int
	length int
	types  []string

	longR       []float64 // r axis, the change-of-variables scaling
	pairDensity []float64 // rank×rank, ρ_i·ρ_j
	siteDensity []float64 // rank×rank, ρ_i+ρ_j / ρ_i

	omega *field.MatrixField // density-scaled Ω(k), fixed per solve

	directCorr *field.MatrixField
	totalCorr  *field.MatrixField
	gammaIn    *field.MatrixField
	gammaOut   *field.MatrixField
	oc         *field.MatrixField // Ω·C
	ioc        *field.MatrixField // (I − Ω·C), inverted in place
	hc         *field.MatrixField // (I−ΩC)⁻¹·ΩC intermediate
	ident      *field.MatrixField

	gammaScratch []float64 // per-pair series buffer
	y            []float64 // residual refreshed at the final iterate

	solved bool
}

// New validates sys, snapshots it and builds a ready-to-solve PRISM.
//
// Construction fails fast: an incomplete system, an omega provider whose
// grid disagrees with the domain, or an invalid shape surfaces here, before
// any iteration begins.
func New(sys *system.System) (*PRISM, error) {
	if sys == nil {
		return nil, fmt.Errorf("prism: New: %w", system.ErrBadTypes)
	}
	if err := sys.Check(); err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}
	snap, err := sys.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}

	d := snap.Domain()
	rank, length := snap.Rank(), d.Length()
	types := snap.Types()

	p := &PRISM{
		sys:          snap,
		dom:          d,
		rank:         rank,
		length:       length,
		types:        types,
		longR:        d.R(),
		pairDensity:  snap.PairDensityMatrix(),
		siteDensity:  snap.SiteDensityMatrix(),
		gammaScratch: make([]float64, length),
		y:            make([]float64, rank*rank*length),
	}

	// Evaluate every pair's intramolecular correlation on the k axis once
	// and scale by the site-density matrix; omega stays fixed for the
	// whole solve.
	if p.omega, err = field.New(length, rank, field.Fourier, types); err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}
	k := d.K()
	for i := 0; i < rank; i++ {
		for j := i; j < rank; j++ {
			w, err := snap.OmegaAt(i, j).Calculate(k)
			if err != nil {
				return nil, fmt.Errorf("prism: New: omega for pair %s-%s: %w", types[i], types[j], err)
			}
			scale := p.siteDensity[i*rank+j]
			scaled := make([]float64, len(w))
			for n, v := range w {
				scaled[n] = scale * v
			}
			if err = p.omega.SetSeriesAt(i, j, scaled); err != nil {
				return nil, fmt.Errorf("prism: New: omega for pair %s-%s: %w", types[i], types[j], err)
			}
		}
	}

	// Bind each pair's potential series to its closure. The closures
	// belong to the snapshot, so the caller's originals stay untouched.
	r := d.R()
	for i := 0; i < rank; i++ {
		for j := i; j < rank; j++ {
			snap.ClosureAt(i, j).SetPotential(snap.PotentialAt(i, j).Calculate(r))
		}
	}

	alloc := func(space field.Space) (*field.MatrixField, error) {
		return field.New(length, rank, space, types)
	}
	if p.directCorr, err = alloc(field.Real); err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}
	if p.totalCorr, err = alloc(field.Fourier); err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}
	if p.gammaIn, err = alloc(field.Real); err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}
	if p.gammaOut, err = alloc(field.Real); err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}
	if p.oc, err = alloc(field.Fourier); err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}
	if p.ioc, err = alloc(field.Fourier); err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}
	if p.hc, err = alloc(field.Fourier); err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}
	if p.ident, err = field.NewIdentity(length, rank, field.Fourier, types); err != nil {
		return nil, fmt.Errorf("prism: New: %w", err)
	}

	return p, nil
}

// Domain returns the solver's (snapshotted) solution domain.
func (p *PRISM) Domain() *domain.Domain { return p.dom }

// Rank returns the site-type count.
func (p *PRISM) Rank() int { return p.rank }

// Types returns a copy of the ordered site-type labels.
func (p *PRISM) Types() []string { return append([]string(nil), p.types...) }

// Size returns the flattened problem size rank²·gridLength, the length a
// guess vector must have.
func (p *PRISM) Size() int { return p.rank * p.rank * p.length }

// Solved reports whether the most recent Solve converged.
func (p *PRISM) Solved() bool { return p.solved }

// TotalCorr returns a copy of the reciprocal-space total correlation field
// ĥ(k) left by the last functional evaluation.
//
// Returns ErrNotSolved unless a solve has converged; on a failed solve the
// buffers hold last-attempted, physically meaningless values.
func (p *PRISM) TotalCorr() (*field.MatrixField, error) {
	if !p.solved {
		return nil, fmt.Errorf("prism: TotalCorr: %w", ErrNotSolved)
	}
	return p.totalCorr.Clone(), nil
}

// DirectCorr returns a copy of the reciprocal-space direct correlation
// field ĉ(k) under the same contract as TotalCorr.
func (p *PRISM) DirectCorr() (*field.MatrixField, error) {
	if !p.solved {
		return nil, fmt.Errorf("prism: DirectCorr: %w", ErrNotSolved)
	}
	return p.directCorr.Clone(), nil
}

// OmegaField returns a copy of the density-scaled intramolecular field
// Ω(k) the solver was built with. Available before solving.
func (p *PRISM) OmegaField() *field.MatrixField { return p.omega.Clone() }

// PairDensityMatrix returns a copy of the rank×rank ρ_i·ρ_j matrix.
func (p *PRISM) PairDensityMatrix() []float64 {
	return append([]float64(nil), p.pairDensity...)
}

// SiteDensityMatrix returns a copy of the rank×rank site-density matrix.
func (p *PRISM) SiteDensityMatrix() []float64 {
	return append([]float64(nil), p.siteDensity...)
}
