package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goprism/closure"
	"github.com/katalvlaran/goprism/domain"
	"github.com/katalvlaran/goprism/omega"
	"github.com/katalvlaran/goprism/potential"
	"github.com/katalvlaran/goprism/system"
)

func newDomain(t *testing.T) *domain.Domain {
	t.Helper()
	d, err := domain.New(64, 0.1)
	require.NoError(t, err)
	return d
}

// TestNew_Validation covers constructor fail-fast checks.
func TestNew_Validation(t *testing.T) {
	_, err := system.New(nil, []string{"A"})
	assert.ErrorIs(t, err, system.ErrBadTypes)

	_, err = system.New(newDomain(t), nil)
	assert.ErrorIs(t, err, system.ErrBadTypes)

	_, err = system.New(newDomain(t), []string{"A", "A"})
	assert.ErrorIs(t, err, system.ErrBadTypes, "duplicate labels must error")
}

// TestCheck_NamesTheGap verifies that completeness failures identify the
// missing piece, so a caller sweeping parameters can tell malformed input
// from physics.
func TestCheck_NamesTheGap(t *testing.T) {
	s, err := system.New(newDomain(t), []string{"A", "B"})
	require.NoError(t, err)

	err = s.Check()
	require.ErrorIs(t, err, system.ErrIncompleteSystem)
	assert.Contains(t, err.Error(), "density", "first gap is the unset density")

	require.NoError(t, s.SetDensity("A", 0.5))
	require.NoError(t, s.SetDensity("B", 0.25))

	err = s.Check()
	require.ErrorIs(t, err, system.ErrIncompleteSystem)
	assert.Contains(t, err.Error(), "A-A", "gap names the pair")
	assert.Contains(t, err.Error(), "potential")

	// Fill everything for all three unordered pairs.
	for _, pair := range [][2]string{{"A", "A"}, {"A", "B"}, {"B", "B"}} {
		require.NoError(t, s.SetPotential(pair[0], pair[1], potential.HardSphere{Sigma: 1}))
		require.NoError(t, s.SetClosure(pair[0], pair[1], closure.NewPercusYevick()))
		require.NoError(t, s.SetOmega(pair[0], pair[1], omega.SingleSite{}))
	}
	assert.NoError(t, s.Check())
}

// TestSetters_Symmetric verifies that pair setters mirror into (j,i).
func TestSetters_Symmetric(t *testing.T) {
	s, err := system.New(newDomain(t), []string{"A", "B"})
	require.NoError(t, err)

	cl := closure.NewPercusYevick()
	require.NoError(t, s.SetClosure("A", "B", cl))
	assert.Same(t, cl, s.ClosureAt(0, 1))
	assert.Same(t, cl, s.ClosureAt(1, 0), "closure set on (A,B) must be visible at (B,A)")

	assert.ErrorIs(t, s.SetClosure("A", "C", cl), system.ErrUnknownType)
	assert.ErrorIs(t, s.SetDensity("C", 1), system.ErrUnknownType)
	assert.ErrorIs(t, s.SetDensity("A", -1), system.ErrBadDensity)
}

// TestDensityMatrices checks ρ_i·ρ_j and the site-density convention
// (ρ_i+ρ_j off-diagonal, ρ_i on the diagonal).
func TestDensityMatrices(t *testing.T) {
	s, err := system.New(newDomain(t), []string{"A", "B"})
	require.NoError(t, err)
	require.NoError(t, s.SetDensity("A", 0.5))
	require.NoError(t, s.SetDensity("B", 0.25))

	pair := s.PairDensityMatrix()
	assert.Equal(t, []float64{0.25, 0.125, 0.125, 0.0625}, pair)

	site := s.SiteDensityMatrix()
	assert.Equal(t, []float64{0.5, 0.75, 0.75, 0.25}, site)
}

// TestSnapshot_Isolation verifies that later mutation of the original
// system does not leak into the snapshot.
func TestSnapshot_Isolation(t *testing.T) {
	s, err := system.New(newDomain(t), []string{"A"})
	require.NoError(t, err)
	require.NoError(t, s.SetDensity("A", 0.5))
	require.NoError(t, s.SetPotential("A", "A", potential.HardSphere{Sigma: 1}))
	require.NoError(t, s.SetClosure("A", "A", closure.NewPercusYevick()))
	require.NoError(t, s.SetOmega("A", "A", omega.SingleSite{}))

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.NoError(t, snap.Check())

	// Mutate the original: density and closure.
	require.NoError(t, s.SetDensity("A", 9.0))
	require.NoError(t, s.SetClosure("A", "A", closure.NewHyperNettedChain()))

	rho, err := snap.Density("A")
	require.NoError(t, err)
	assert.Equal(t, 0.5, rho, "snapshot density must be unaffected")
	assert.IsType(t, &closure.PercusYevick{}, snap.ClosureAt(0, 0),
		"snapshot closure must be the original kind")
	assert.NotSame(t, s.Domain(), snap.Domain(), "domain is rebuilt, not shared")
}
