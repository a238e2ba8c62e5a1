// SPDX-License-Identifier: MIT
package calculate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/goprism/field"
	"github.com/katalvlaran/goprism/prism"
)

// PairCorrelation returns the real-space radial distribution field
// g(r) = h(r) + 1 for every site pair.
//
// Returns prism.ErrNotSolved unless p's last solve converged.
func PairCorrelation(p *prism.PRISM) (*field.MatrixField, error) {
	h, err := p.TotalCorr()
	if err != nil {
		return nil, fmt.Errorf("calculate: PairCorrelation: %w", err)
	}
	if err = h.ToReal(p.Domain()); err != nil {
		return nil, fmt.Errorf("calculate: PairCorrelation: %w", err)
	}
	h.AddConst(1.0)
	return h, nil
}

// StructureFactor returns the reciprocal-space partial structure factor
// field
//
//	S(k) = (Ω(k) + ρ^pair ⊙ ĥ(k)) / ρ^site
//
// where Ω is the density-scaled intramolecular field the solver was built
// with, ĥ the converged total correlation, and the density matrices act
// elementwise on each rank×rank block. For a non-interacting single-site
// fluid this reduces to S ≡ 1.
//
// Returns prism.ErrNotSolved unless p's last solve converged.
func StructureFactor(p *prism.PRISM) (*field.MatrixField, error) {
	h, err := p.TotalCorr()
	if err != nil {
		return nil, fmt.Errorf("calculate: StructureFactor: %w", err)
	}
	if err = h.MulBlock(p.PairDensityMatrix()); err != nil {
		return nil, fmt.Errorf("calculate: StructureFactor: %w", err)
	}
	if err = h.Add(p.OmegaField()); err != nil {
		return nil, fmt.Errorf("calculate: StructureFactor: %w", err)
	}
	if err = h.DivBlock(p.SiteDensityMatrix()); err != nil {
		return nil, fmt.Errorf("calculate: StructureFactor: %w", err)
	}
	return h, nil
}

// PMF returns the real-space potential of mean force field
// w(r) = −ln g(r), in units of kT.
//
// Where g vanishes (inside a hard core) the logarithm diverges and the
// entry is +Inf; slightly negative g values from transform ringing produce
// NaN, which callers should treat as "inside the core" as well.
//
// Returns prism.ErrNotSolved unless p's last solve converged.
func PMF(p *prism.PRISM) (*field.MatrixField, error) {
	g, err := PairCorrelation(p)
	if err != nil {
		return nil, fmt.Errorf("calculate: PMF: %w", err)
	}
	data := g.RawData()
	for i, v := range data {
		data[i] = -math.Log(v)
	}
	return g, nil
}
