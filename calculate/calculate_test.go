package calculate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goprism/calculate"
	"github.com/katalvlaran/goprism/closure"
	"github.com/katalvlaran/goprism/domain"
	"github.com/katalvlaran/goprism/field"
	"github.com/katalvlaran/goprism/omega"
	"github.com/katalvlaran/goprism/prism"
	"github.com/katalvlaran/goprism/system"
)

// flatPotential is the non-interacting reference.
type flatPotential struct{}

func (flatPotential) Calculate(r []float64) []float64 { return make([]float64, len(r)) }

// idealSolver builds and solves the non-interacting single-site fluid, the
// case where every observable has a closed form.
func idealSolver(t *testing.T) *prism.PRISM {
	t.Helper()
	d, err := domain.New(256, 0.1)
	require.NoError(t, err)
	s, err := system.New(d, []string{"A"})
	require.NoError(t, err)
	require.NoError(t, s.SetDensity("A", 0.5))
	require.NoError(t, s.SetPotential("A", "A", flatPotential{}))
	require.NoError(t, s.SetClosure("A", "A", closure.NewPercusYevick()))
	require.NoError(t, s.SetOmega("A", "A", omega.SingleSite{}))

	p, err := prism.New(s)
	require.NoError(t, err)
	res, err := p.Solve(nil, nil)
	require.NoError(t, err)
	require.True(t, res.Converged, res.Message)
	return p
}

// unsolved builds a complete system without solving it.
func unsolved(t *testing.T) *prism.PRISM {
	t.Helper()
	d, err := domain.New(64, 0.1)
	require.NoError(t, err)
	s, err := system.New(d, []string{"A"})
	require.NoError(t, err)
	require.NoError(t, s.SetDensity("A", 0.5))
	require.NoError(t, s.SetPotential("A", "A", flatPotential{}))
	require.NoError(t, s.SetClosure("A", "A", closure.NewPercusYevick()))
	require.NoError(t, s.SetOmega("A", "A", omega.SingleSite{}))
	p, err := prism.New(s)
	require.NoError(t, err)
	return p
}

func TestPairCorrelation_Ideal(t *testing.T) {
	p := idealSolver(t)

	g, err := calculate.PairCorrelation(p)
	require.NoError(t, err)
	assert.Equal(t, field.Real, g.Space())

	series, err := g.SeriesAt(nil, 0, 0)
	require.NoError(t, err)
	for i, v := range series {
		assert.InDelta(t, 1.0, v, 1e-8, "ideal g(r) is one at point %d", i)
	}
}

func TestStructureFactor_Ideal(t *testing.T) {
	p := idealSolver(t)

	sk, err := calculate.StructureFactor(p)
	require.NoError(t, err)
	assert.Equal(t, field.Fourier, sk.Space())

	series, err := sk.SeriesAt(nil, 0, 0)
	require.NoError(t, err)
	for i, v := range series {
		assert.InDelta(t, 1.0, v, 1e-8, "ideal S(k) is one at point %d", i)
	}
}

func TestPMF_Ideal(t *testing.T) {
	p := idealSolver(t)

	w, err := calculate.PMF(p)
	require.NoError(t, err)

	series, err := w.SeriesAt(nil, 0, 0)
	require.NoError(t, err)
	for i, v := range series {
		assert.InDelta(t, 0.0, v, 1e-8, "ideal mean force vanishes at point %d", i)
	}
}

// TestObservables_RequireConvergence verifies that every helper refuses an
// unsolved problem.
func TestObservables_RequireConvergence(t *testing.T) {
	p := unsolved(t)

	_, err := calculate.PairCorrelation(p)
	assert.ErrorIs(t, err, prism.ErrNotSolved)
	_, err = calculate.StructureFactor(p)
	assert.ErrorIs(t, err, prism.ErrNotSolved)
	_, err = calculate.PMF(p)
	assert.ErrorIs(t, err, prism.ErrNotSolved)
}

// TestObservables_DoNotMutateSolver verifies the copy-out contract: deriving
// an observable twice gives identical results.
func TestObservables_DoNotMutateSolver(t *testing.T) {
	p := idealSolver(t)

	g1, err := calculate.PairCorrelation(p)
	require.NoError(t, err)
	g2, err := calculate.PairCorrelation(p)
	require.NoError(t, err)
	assert.Equal(t, g1.RawData(), g2.RawData())

	s1, err := calculate.StructureFactor(p)
	require.NoError(t, err)
	s2, err := calculate.StructureFactor(p)
	require.NoError(t, err)
	assert.Equal(t, s1.RawData(), s2.RawData())
}
