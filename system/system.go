// SPDX-License-Identifier: MIT
// Package system: System construction, validation and density matrices.
package system

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/goprism/closure"
	"github.com/katalvlaran/goprism/domain"
	"github.com/katalvlaran/goprism/omega"
	"github.com/katalvlaran/goprism/potential"
)

var (
	// ErrBadTypes is returned when a System is requested without site
	// types, with duplicate labels, or with a nil domain.
	ErrBadTypes = errors.New("system: need a domain and unique site-type labels")

	// ErrUnknownType indicates a label that is not part of the system.
	ErrUnknownType = errors.New("system: unknown site-type label")

	// ErrBadDensity indicates a non-positive site density.
	ErrBadDensity = errors.New("system: density must be > 0")

	// ErrIncompleteSystem is returned by Check when any pair table entry or
	// density is missing. The wrapped message names the first gap found.
	ErrIncompleteSystem = errors.New("system: incomplete specification")
)

// System is the full, user-assembled specification of one PRISM problem.
// The zero value is not usable; construct with New.
type System struct {
	dom   *domain.Domain
	types []string
	index map[string]int

	density []float64 // per type; 0 = unset

	// Pair tables, rank×rank with symmetric fill; nil = unset.
	potentials []potential.Potential
	closures   []closure.Closure
	omegas     []omega.Omega
}

// New creates an empty System over the given domain and ordered site-type
// labels. Rank is the label count.
func New(d *domain.Domain, types []string) (*System, error) {
	if d == nil || len(types) == 0 {
		return nil, fmt.Errorf("system: New: %w", ErrBadTypes)
	}
	index := make(map[string]int, len(types))
	for i, t := range types {
		if _, dup := index[t]; dup {
			return nil, fmt.Errorf("system: New: duplicate label %q: %w", t, ErrBadTypes)
		}
		index[t] = i
	}

	rank := len(types)
	return &System{
		dom:        d,
		types:      append([]string(nil), types...),
		index:      index,
		density:    make([]float64, rank),
		potentials: make([]potential.Potential, rank*rank),
		closures:   make([]closure.Closure, rank*rank),
		omegas:     make([]omega.Omega, rank*rank),
	}, nil
}

// Domain returns the system's solution domain.
func (s *System) Domain() *domain.Domain { return s.dom }

// Rank returns the site-type count.
func (s *System) Rank() int { return len(s.types) }

// Types returns a copy of the ordered site-type labels.
func (s *System) Types() []string { return append([]string(nil), s.types...) }

// TypeIndex resolves a label to its position in the ordered type list.
func (s *System) TypeIndex(t string) (int, error) {
	i, ok := s.index[t]
	if !ok {
		return 0, fmt.Errorf("system: TypeIndex(%q): %w", t, ErrUnknownType)
	}
	return i, nil
}

// SetDensity assigns the number density of one site-type.
func (s *System) SetDensity(t string, rho float64) error {
	i, err := s.TypeIndex(t)
	if err != nil {
		return err
	}
	if rho <= 0 {
		return fmt.Errorf("system: SetDensity(%q, %g): %w", t, rho, ErrBadDensity)
	}
	s.density[i] = rho
	return nil
}

// Density returns the number density of one site-type (0 when unset).
func (s *System) Density(t string) (float64, error) {
	i, err := s.TypeIndex(t)
	if err != nil {
		return 0, err
	}
	return s.density[i], nil
}

// SetPotential assigns the interaction potential of the unordered pair
// (t1, t2); the assignment is symmetric.
func (s *System) SetPotential(t1, t2 string, p potential.Potential) error {
	a, b, err := s.pair(t1, t2)
	if err != nil {
		return fmt.Errorf("system: SetPotential: %w", err)
	}
	s.potentials[a*len(s.types)+b] = p
	s.potentials[b*len(s.types)+a] = p
	return nil
}

// SetClosure assigns the closure of the unordered pair (t1, t2).
func (s *System) SetClosure(t1, t2 string, c closure.Closure) error {
	a, b, err := s.pair(t1, t2)
	if err != nil {
		return fmt.Errorf("system: SetClosure: %w", err)
	}
	s.closures[a*len(s.types)+b] = c
	s.closures[b*len(s.types)+a] = c
	return nil
}

// SetOmega assigns the intramolecular correlation provider of the unordered
// pair (t1, t2).
func (s *System) SetOmega(t1, t2 string, o omega.Omega) error {
	a, b, err := s.pair(t1, t2)
	if err != nil {
		return fmt.Errorf("system: SetOmega: %w", err)
	}
	s.omegas[a*len(s.types)+b] = o
	s.omegas[b*len(s.types)+a] = o
	return nil
}

// PotentialAt returns the potential of the index pair (i, j).
func (s *System) PotentialAt(i, j int) potential.Potential { return s.potentials[i*len(s.types)+j] }

// ClosureAt returns the closure of the index pair (i, j).
func (s *System) ClosureAt(i, j int) closure.Closure { return s.closures[i*len(s.types)+j] }

// OmegaAt returns the omega provider of the index pair (i, j).
func (s *System) OmegaAt(i, j int) omega.Omega { return s.omegas[i*len(s.types)+j] }

// Check validates pairwise completeness. It walks densities first, then
// every unordered pair's potential, closure and omega entries, and fails
// with ErrIncompleteSystem naming the first gap. A solver must not be
// built from a system that fails Check.
func (s *System) Check() error {
	rank := len(s.types)
	for i, rho := range s.density {
		if rho <= 0 {
			return fmt.Errorf("system: Check: density of %q is not set: %w", s.types[i], ErrIncompleteSystem)
		}
	}
	for i := 0; i < rank; i++ {
		for j := i; j < rank; j++ {
			pairName := s.types[i] + "-" + s.types[j]
			if s.potentials[i*rank+j] == nil {
				return fmt.Errorf("system: Check: pair %s has no potential: %w", pairName, ErrIncompleteSystem)
			}
			if s.closures[i*rank+j] == nil {
				return fmt.Errorf("system: Check: pair %s has no closure: %w", pairName, ErrIncompleteSystem)
			}
			if s.omegas[i*rank+j] == nil {
				return fmt.Errorf("system: Check: pair %s has no omega: %w", pairName, ErrIncompleteSystem)
			}
		}
	}
	return nil
}

// PairDensityMatrix returns the rank×rank row-major matrix of pair
// densities, ρ_ij = ρ_i·ρ_j.
func (s *System) PairDensityMatrix() []float64 {
	rank := len(s.types)
	m := make([]float64, rank*rank)
	for i := 0; i < rank; i++ {
		for j := 0; j < rank; j++ {
			m[i*rank+j] = s.density[i] * s.density[j]
		}
	}
	return m
}

// SiteDensityMatrix returns the rank×rank row-major matrix of site
// densities: ρ_i+ρ_j off the diagonal, ρ_i on it. Omega fields are always
// scaled by this matrix.
func (s *System) SiteDensityMatrix() []float64 {
	rank := len(s.types)
	m := make([]float64, rank*rank)
	for i := 0; i < rank; i++ {
		for j := 0; j < rank; j++ {
			if i == j {
				m[i*rank+j] = s.density[i]
			} else {
				m[i*rank+j] = s.density[i] + s.density[j]
			}
		}
	}
	return m
}

// Snapshot returns the independently-owned copy a solver holds for the
// duration of one solve. The domain is rebuilt, densities and tables are
// re-allocated and closures are cloned; potential and omega providers are
// shared read-only handles.
func (s *System) Snapshot() (*System, error) {
	d, err := domain.New(s.dom.Length(), s.dom.DR())
	if err != nil {
		return nil, fmt.Errorf("system: Snapshot: %w", err)
	}
	c, err := New(d, s.types)
	if err != nil {
		return nil, fmt.Errorf("system: Snapshot: %w", err)
	}
	copy(c.density, s.density)
	copy(c.potentials, s.potentials)
	copy(c.omegas, s.omegas)

	// Closures carry per-solve state (bound potential, last value), so each
	// unordered pair gets one clone mirrored into both table slots.
	rank := len(s.types)
	for i := 0; i < rank; i++ {
		for j := i; j < rank; j++ {
			if cl := s.closures[i*rank+j]; cl != nil {
				cc := cl.Clone()
				c.closures[i*rank+j] = cc
				c.closures[j*rank+i] = cc
			}
		}
	}

	return c, nil
}

// pair resolves two labels to block indices.
func (s *System) pair(t1, t2 string) (int, int, error) {
	a, err := s.TypeIndex(t1)
	if err != nil {
		return 0, 0, err
	}
	b, err := s.TypeIndex(t2)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
