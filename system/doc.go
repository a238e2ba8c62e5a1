// Package system assembles the full specification of a PRISM problem: the
// solution domain, the ordered site-type labels, per-type number densities,
// and per-pair potential, closure and intramolecular-correlation tables.
//
// A System is built incrementally (SetDensity, SetPotential, SetClosure,
// SetOmega — all pair setters symmetric) and validated for pairwise
// completeness by Check before a solver may be constructed: every unordered
// site-type pair must carry exactly one potential, one closure and one
// omega provider, and every site-type a positive density. Incomplete
// systems fail with ErrIncompleteSystem naming the first gap.
//
// Snapshot produces the deep copy a solver owns for the duration of a
// solve: axes, densities and tables are independently allocated, closures
// are cloned (they carry per-solve state), and only the read-only
// potential/omega provider handles are shared. Mutating the original
// System afterwards cannot affect an in-flight solve.
package system
