package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goprism/field"
)

// fill builds a length×rank field whose entry (i,a,b) is base + i + a + b,
// symmetric by construction.
func fill(t *testing.T, length, rank int, space field.Space, base float64) *field.MatrixField {
	t.Helper()
	m, err := field.New(length, rank, space, nil)
	require.NoError(t, err)
	for i := 0; i < length; i++ {
		for a := 0; a < rank; a++ {
			for b := a; b < rank; b++ {
				require.NoError(t, m.Set(i, a, b, base+float64(i+a+b)))
			}
		}
	}
	return m
}

// TestElementwise_Ops covers Add/Sub/MulElem/DivElem happy paths.
func TestElementwise_Ops(t *testing.T) {
	a := fill(t, 4, 2, field.Real, 1)
	b := fill(t, 4, 2, field.Real, 1)

	require.NoError(t, a.Add(b))
	v, err := a.At(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2*(1.0+2.0), v, "add doubles matching fields")

	require.NoError(t, a.Sub(b))
	v, err = a.At(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "sub restores the original")

	require.NoError(t, a.MulElem(b))
	v, err = a.At(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	require.NoError(t, a.DivElem(b))
	v, err = a.At(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

// TestElementwise_SpaceMismatch verifies that combining fields in different
// spaces is rejected, per the space-tag contract.
func TestElementwise_SpaceMismatch(t *testing.T) {
	a := fill(t, 4, 2, field.Real, 1)
	b := fill(t, 4, 2, field.Fourier, 1)

	assert.ErrorIs(t, a.Add(b), field.ErrSpaceMismatch)
	assert.ErrorIs(t, a.Sub(b), field.ErrSpaceMismatch)
	assert.ErrorIs(t, a.MulElem(b), field.ErrSpaceMismatch)
	assert.ErrorIs(t, a.DivElem(b), field.ErrSpaceMismatch)
}

// TestElementwise_ShapeMismatch verifies dimension validation.
func TestElementwise_ShapeMismatch(t *testing.T) {
	a := fill(t, 4, 2, field.Real, 1)
	b := fill(t, 5, 2, field.Real, 1)
	c := fill(t, 4, 3, field.Real, 1)

	assert.ErrorIs(t, a.Add(b), field.ErrDimensionMismatch)
	assert.ErrorIs(t, a.Add(c), field.ErrDimensionMismatch)
}

// TestBroadcast_GridAndBlock covers the two broadcast shapes: a per-grid
// scalar series and a single rank×rank block.
func TestBroadcast_GridAndBlock(t *testing.T) {
	m := fill(t, 3, 2, field.Real, 2) // entry(i,a,b) = 2+i+a+b

	require.NoError(t, m.MulGrid([]float64{1, 2, 3}))
	v, err := m.At(2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3*(2.0+2.0), v)

	require.NoError(t, m.DivGrid([]float64{1, 2, 3}))
	v, err = m.At(2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	assert.ErrorIs(t, m.MulGrid([]float64{1}), field.ErrDimensionMismatch)
	assert.ErrorIs(t, m.DivGrid(nil), field.ErrDimensionMismatch)

	require.NoError(t, m.MulBlock([]float64{1, 2, 2, 4}))
	v, err = m.At(0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2*3.0, v)

	require.NoError(t, m.DivBlock([]float64{1, 2, 2, 4}))
	v, err = m.At(0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	assert.ErrorIs(t, m.MulBlock([]float64{1, 2}), field.ErrDimensionMismatch)
}

// TestDot_BlockProduct checks the per-grid-point matrix product against a
// hand-computed 2×2 case, and that multiplying by the identity is a no-op.
func TestDot_BlockProduct(t *testing.T) {
	a, err := field.New(2, 2, field.Fourier, nil)
	require.NoError(t, err)
	b, err := field.New(2, 2, field.Fourier, nil)
	require.NoError(t, err)

	// a[i] = [[1,2],[2,1]], b[i] = [[0,1],[1,3]] at every point.
	for i := 0; i < 2; i++ {
		require.NoError(t, a.Set(i, 0, 0, 1))
		require.NoError(t, a.Set(i, 0, 1, 2))
		require.NoError(t, a.Set(i, 1, 1, 1))
		require.NoError(t, b.Set(i, 0, 0, 0))
		require.NoError(t, b.Set(i, 0, 1, 1))
		require.NoError(t, b.Set(i, 1, 1, 3))
	}

	dst, err := field.New(2, 2, field.Real, nil)
	require.NoError(t, err)
	require.NoError(t, field.Dot(dst, a, b))
	assert.Equal(t, field.Fourier, dst.Space(), "dst adopts the operands' space")

	// [[1,2],[2,1]]·[[0,1],[1,3]] = [[2,7],[1,5]]
	want := [][]float64{{2, 7}, {1, 5}}
	for i := 0; i < 2; i++ {
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				v, err := dst.At(i, r, c)
				require.NoError(t, err)
				assert.Equal(t, want[r][c], v, "point %d entry (%d,%d)", i, r, c)
			}
		}
	}

	id, err := field.NewIdentity(2, 2, field.Fourier, nil)
	require.NoError(t, err)
	same, err := field.New(2, 2, field.Fourier, nil)
	require.NoError(t, err)
	require.NoError(t, field.Dot(same, a, id))
	for i := 0; i < 2; i++ {
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				va, _ := a.At(i, r, c)
				vs, _ := same.At(i, r, c)
				assert.Equal(t, va, vs, "A·I must equal A")
			}
		}
	}
}

// TestDot_Contract covers space/shape/alias validation.
func TestDot_Contract(t *testing.T) {
	a := fill(t, 4, 2, field.Real, 1)
	b := fill(t, 4, 2, field.Fourier, 1)
	dst := fill(t, 4, 2, field.Real, 0)

	assert.ErrorIs(t, field.Dot(dst, a, b), field.ErrSpaceMismatch)

	short := fill(t, 3, 2, field.Real, 1)
	assert.ErrorIs(t, field.Dot(short, a, a), field.ErrDimensionMismatch)

	assert.ErrorIs(t, field.Dot(a, a, b), field.ErrAliased)
	assert.ErrorIs(t, field.Dot(nil, a, b), field.ErrNilField)
}

// TestInvert_RoundTrip checks per-point inversion: A·A⁻¹ = I.
func TestInvert_RoundTrip(t *testing.T) {
	a, err := field.New(3, 2, field.Fourier, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		// Well-conditioned symmetric block, varies with i.
		require.NoError(t, a.Set(i, 0, 0, 2+float64(i)))
		require.NoError(t, a.Set(i, 0, 1, 0.5))
		require.NoError(t, a.Set(i, 1, 1, 3))
	}

	inv := a.Clone()
	require.NoError(t, inv.Invert())
	assert.Equal(t, field.Fourier, inv.Space(), "space unchanged by inversion")

	prod, err := field.New(3, 2, field.Fourier, nil)
	require.NoError(t, err)
	require.NoError(t, field.Dot(prod, a, inv))
	for i := 0; i < 3; i++ {
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				v, err := prod.At(i, r, c)
				require.NoError(t, err)
				if r == c {
					assert.InDelta(t, 1.0, v, 1e-12)
				} else {
					assert.InDelta(t, 0.0, v, 1e-12)
				}
			}
		}
	}
}

// TestInvert_Singular verifies that a non-invertible block fails with
// ErrSingular and that the message names the offending grid index.
func TestInvert_Singular(t *testing.T) {
	a, err := field.NewIdentity(3, 2, field.Fourier, nil)
	require.NoError(t, err)

	// Zero out the block at grid point 1 only.
	require.NoError(t, a.Set(1, 0, 0, 0))
	require.NoError(t, a.Set(1, 1, 1, 0))

	err = a.Invert()
	require.ErrorIs(t, err, field.ErrSingular)
	assert.Contains(t, err.Error(), "grid point 1", "failing index must be reported")
}
