// SPDX-License-Identifier: MIT
// Package field: MatrixField storage, constructors and labelled access.
package field

import "fmt"

// Space tags which side of the transform pair a field's values currently
// live on. The tag is validated and propagated by every operation; acting on
// a field whose tag disagrees with the operation's requirement is a contract
// violation surfaced as ErrSpaceMismatch.
type Space int

const (
	// Real marks values on the r-axis.
	Real Space = iota + 1

	// Fourier marks values on the k-axis.
	Fourier
)

// String implements fmt.Stringer for diagnostics.
func (s Space) String() string {
	switch s {
	case Real:
		return "real"
	case Fourier:
		return "fourier"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// MatrixField is a grid-length stack of rank×rank float64 matrices plus a
// space tag and an optional site-type label mapping.
//
// Storage is flat and block-major: the block of grid point i occupies
// data[i·rank·rank : (i+1)·rank·rank] in row-major order, which is exactly
// the flattened layout exchanged with the nonlinear root-finder.
type MatrixField struct {
	length int
	rank   int
	space  Space
	types  []string       // ordered labels; empty when unlabelled
	index  map[string]int // label → block row/col
	data   []float64      // length·rank·rank values
}

// New creates a zero-valued MatrixField of the given shape and space.
// types may be nil for index-only access; when supplied its length must
// equal rank.
//
// Returns ErrBadShape for non-positive dimensions, ErrSpaceMismatch for an
// invalid space tag and ErrDimensionMismatch when len(types) != rank.
// Complexity: O(length·rank²) memory.
func New(length, rank int, space Space, types []string) (*MatrixField, error) {
	if length <= 0 || rank <= 0 {
		return nil, fmt.Errorf("field: New(%d,%d): %w", length, rank, ErrBadShape)
	}
	if space != Real && space != Fourier {
		return nil, fmt.Errorf("field: New: invalid space %v: %w", space, ErrSpaceMismatch)
	}
	if types != nil && len(types) != rank {
		return nil, fmt.Errorf("field: New: %d labels for rank %d: %w", len(types), rank, ErrDimensionMismatch)
	}

	m := &MatrixField{
		length: length,
		rank:   rank,
		space:  space,
		data:   make([]float64, length*rank*rank),
	}
	if types != nil {
		m.types = append([]string(nil), types...)
		m.index = make(map[string]int, rank)
		for i, t := range m.types {
			m.index[t] = i
		}
	}

	return m, nil
}

// NewIdentity creates a MatrixField whose block at every grid point is the
// rank×rank identity matrix, used as the "I" in (I − ΩC).
func NewIdentity(length, rank int, space Space, types []string) (*MatrixField, error) {
	m, err := New(length, rank, space, types)
	if err != nil {
		return nil, err
	}
	rr := rank * rank
	for i := 0; i < length; i++ {
		for a := 0; a < rank; a++ {
			m.data[i*rr+a*rank+a] = 1.0
		}
	}
	return m, nil
}

// Length returns the grid point count.
func (m *MatrixField) Length() int { return m.length }

// Rank returns the site-type count (block dimension).
func (m *MatrixField) Rank() int { return m.rank }

// Space returns the field's current space tag.
func (m *MatrixField) Space() Space { return m.space }

// SetSpace forcibly resets the space tag without touching the data.
//
// This is the explicit reset hook the solver uses at the start of each
// functional evaluation: stale tags surviving from a previous call are a
// correctness hazard, so the buffers' tags are re-stamped before reuse.
func (m *MatrixField) SetSpace(s Space) { m.space = s }

// Types returns a copy of the ordered site-type labels, or nil when the
// field is unlabelled.
func (m *MatrixField) Types() []string {
	if m.types == nil {
		return nil
	}
	return append([]string(nil), m.types...)
}

// RawData returns the flat backing slice (length·rank·rank, block-major).
// The slice aliases the field's storage; mutating it mutates the field and
// bypasses space-tag validation. Intended for the solver's vector
// reshape hot path.
func (m *MatrixField) RawData() []float64 { return m.data }

// At returns the value at grid point i, block entry (a, b).
// Returns ErrOutOfRange for any index outside bounds.
func (m *MatrixField) At(i, a, b int) (float64, error) {
	if err := m.checkIndex(i, a, b); err != nil {
		return 0, fmt.Errorf("field: At(%d,%d,%d): %w", i, a, b, err)
	}
	return m.data[i*m.rank*m.rank+a*m.rank+b], nil
}

// Set assigns the value at grid point i, block entries (a, b) AND (b, a):
// every physically meaningful field is symmetric, so the invariant is
// enforced at the write site.
// Returns ErrOutOfRange for any index outside bounds.
func (m *MatrixField) Set(i, a, b int, v float64) error {
	if err := m.checkIndex(i, a, b); err != nil {
		return fmt.Errorf("field: Set(%d,%d,%d): %w", i, a, b, err)
	}
	rr := m.rank * m.rank
	m.data[i*rr+a*m.rank+b] = v
	m.data[i*rr+b*m.rank+a] = v
	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
func (m *MatrixField) Clone() *MatrixField {
	c := &MatrixField{
		length: m.length,
		rank:   m.rank,
		space:  m.space,
		data:   append([]float64(nil), m.data...),
	}
	if m.types != nil {
		c.types = append([]string(nil), m.types...)
		c.index = make(map[string]int, len(m.index))
		for k, v := range m.index {
			c.index[k] = v
		}
	}
	return c
}

// CopyFrom overwrites the receiver's data and space tag with src's.
// Shapes must match exactly; returns ErrDimensionMismatch otherwise.
func (m *MatrixField) CopyFrom(src *MatrixField) error {
	if src == nil {
		return fmt.Errorf("field: CopyFrom: %w", ErrNilField)
	}
	if m.length != src.length || m.rank != src.rank {
		return fmt.Errorf("field: CopyFrom: (%d,%d) into (%d,%d): %w",
			src.length, src.rank, m.length, m.rank, ErrDimensionMismatch)
	}
	copy(m.data, src.data)
	m.space = src.space
	return nil
}

// TypeIndex resolves a site-type label to its block row/col index.
func (m *MatrixField) TypeIndex(t string) (int, error) {
	i, ok := m.index[t]
	if !ok {
		return 0, fmt.Errorf("field: TypeIndex(%q): %w", t, ErrUnknownType)
	}
	return i, nil
}

// PairSeries returns a copy of the full-length scalar series for the
// labelled pair (t1, t2). Because fields are symmetric, (t1,t2) and (t2,t1)
// name the same series.
func (m *MatrixField) PairSeries(t1, t2 string) ([]float64, error) {
	a, err := m.TypeIndex(t1)
	if err != nil {
		return nil, err
	}
	b, err := m.TypeIndex(t2)
	if err != nil {
		return nil, err
	}
	dst := make([]float64, m.length)
	if _, err = m.SeriesAt(dst, a, b); err != nil {
		return nil, err
	}
	return dst, nil
}

// SetPairSeries assigns the full-length scalar series for the labelled pair
// (t1, t2), mirroring the values into (t2, t1).
func (m *MatrixField) SetPairSeries(t1, t2 string, v []float64) error {
	a, err := m.TypeIndex(t1)
	if err != nil {
		return err
	}
	b, err := m.TypeIndex(t2)
	if err != nil {
		return err
	}
	return m.SetSeriesAt(a, b, v)
}

// SeriesAt gathers the scalar series of block entry (a, b) across the grid
// into dst (allocated when nil) and returns it.
func (m *MatrixField) SeriesAt(dst []float64, a, b int) ([]float64, error) {
	if err := m.checkIndex(0, a, b); err != nil {
		return nil, fmt.Errorf("field: SeriesAt(%d,%d): %w", a, b, err)
	}
	if dst == nil {
		dst = make([]float64, m.length)
	} else if len(dst) != m.length {
		return nil, fmt.Errorf("field: SeriesAt: dst length %d, want %d: %w", len(dst), m.length, ErrDimensionMismatch)
	}
	rr := m.rank * m.rank
	off := a*m.rank + b
	for i := 0; i < m.length; i++ {
		dst[i] = m.data[i*rr+off]
	}
	return dst, nil
}

// SetSeriesAt scatters v across the grid into block entries (a, b) and
// (b, a), enforcing the symmetry invariant.
func (m *MatrixField) SetSeriesAt(a, b int, v []float64) error {
	if err := m.checkIndex(0, a, b); err != nil {
		return fmt.Errorf("field: SetSeriesAt(%d,%d): %w", a, b, err)
	}
	if len(v) != m.length {
		return fmt.Errorf("field: SetSeriesAt: series length %d, want %d: %w", len(v), m.length, ErrDimensionMismatch)
	}
	rr := m.rank * m.rank
	ab := a*m.rank + b
	ba := b*m.rank + a
	for i := 0; i < m.length; i++ {
		m.data[i*rr+ab] = v[i]
		m.data[i*rr+ba] = v[i]
	}
	return nil
}

// checkIndex validates a (grid, row, col) triple.
func (m *MatrixField) checkIndex(i, a, b int) error {
	if i < 0 || i >= m.length || a < 0 || a >= m.rank || b < 0 || b >= m.rank {
		return ErrOutOfRange
	}
	return nil
}

// sameShape reports a shape/space compatibility error between two fields, or
// nil when they can be combined elementwise.
func (m *MatrixField) sameShape(n *MatrixField) error {
	if n == nil {
		return ErrNilField
	}
	if m.length != n.length || m.rank != n.rank {
		return fmt.Errorf("(%d,%d) vs (%d,%d): %w", m.length, m.rank, n.length, n.rank, ErrDimensionMismatch)
	}
	if m.space != n.space {
		return fmt.Errorf("%v vs %v: %w", m.space, n.space, ErrSpaceMismatch)
	}
	return nil
}
