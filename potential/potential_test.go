package potential_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goprism/potential"
)

// TestHardSphere checks the core/outside split at σ.
func TestHardSphere(t *testing.T) {
	u := potential.HardSphere{Sigma: 1.0}.Calculate([]float64{0.5, 0.99, 1.0, 2.0})
	require.Len(t, u, 4)

	assert.True(t, math.IsInf(u[0], 1), "inside the core U must be +Inf")
	assert.True(t, math.IsInf(u[1], 1))
	assert.Zero(t, u[2], "contact is outside the core")
	assert.Zero(t, u[3])
}

// TestLennardJones checks the zero crossing at σ, the well depth at the
// minimum r = 2^{1/6}σ, and the cut-and-shift variant.
func TestLennardJones(t *testing.T) {
	lj := potential.LennardJones{Epsilon: 1.0, Sigma: 1.0}
	rmin := math.Pow(2.0, 1.0/6.0)

	u := lj.Calculate([]float64{1.0, rmin})
	assert.InDelta(t, 0.0, u[0], 1e-12, "U(σ) = 0")
	assert.InDelta(t, -1.0, u[1], 1e-12, "U(r_min) = −ε")

	cut := potential.LennardJones{Epsilon: 1.0, Sigma: 1.0, Rcut: 2.5, Shift: true}
	u = cut.Calculate([]float64{2.5, 3.0, rmin})
	assert.InDelta(t, 0.0, u[0], 1e-12, "shifted tail vanishes at the cutoff")
	assert.Zero(t, u[1], "beyond the cutoff U = 0")
	assert.InDelta(t, -1.0-lj.Calculate([]float64{2.5})[0], u[2], 1e-12,
		"shift raises the well by −U(Rcut)")
}

// TestHardCoreLennardJones checks the hard core plus LJ tail split.
func TestHardCoreLennardJones(t *testing.T) {
	p := potential.HardCoreLennardJones{Epsilon: 0.5, Sigma: 1.0}
	rmin := math.Pow(2.0, 1.0/6.0)

	u := p.Calculate([]float64{0.9, 1.0, rmin})
	assert.True(t, math.IsInf(u[0], 1))
	assert.InDelta(t, 0.0, u[1], 1e-12)
	assert.InDelta(t, -0.5, u[2], 1e-12)
}

// TestWeeksChandlerAndersen checks the shifted repulsion: +ε at σ, zero at
// and beyond the 2^{1/6}σ minimum, purely repulsive inside.
func TestWeeksChandlerAndersen(t *testing.T) {
	p := potential.WeeksChandlerAndersen{Epsilon: 1.0, Sigma: 1.0}
	rmin := math.Pow(2.0, 1.0/6.0)

	u := p.Calculate([]float64{1.0, rmin, 1.5, 0.9})
	assert.InDelta(t, 1.0, u[0], 1e-12, "shift raises U(σ) to +ε")
	assert.InDelta(t, 0.0, u[1], 1e-12, "repulsion vanishes at the minimum")
	assert.Zero(t, u[2], "no attractive tail beyond the minimum")
	assert.Greater(t, u[3], 1.0, "monotone repulsion inside σ")
}

// TestExponential checks contact value and decay.
func TestExponential(t *testing.T) {
	p := potential.Exponential{Epsilon: -1.0, Sigma: 1.0, Alpha: 0.5}

	u := p.Calculate([]float64{0.5, 1.0, 1.5})
	assert.True(t, math.IsInf(u[0], 1))
	assert.InDelta(t, -1.0, u[1], 1e-12, "contact value is ε")
	assert.InDelta(t, -math.Exp(-1.0), u[2], 1e-12, "tail decays with α")
}
