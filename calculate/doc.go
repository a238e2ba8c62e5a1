// Package calculate derives physical observables from a converged solver.
//
// Every helper takes a *prism.PRISM, refuses to run unless its last solve
// converged, and returns a fresh Matrix-Field (or per-pair series) the
// caller owns. None of them mutate the solver's buffers.
//
// Available observables:
//
//   - PairCorrelation: the real-space radial distribution g(r) = h(r) + 1.
//   - StructureFactor: the reciprocal-space partial structure factor built
//     from the intramolecular and total correlation fields.
//   - PMF: the potential of mean force w(r) = −ln g(r), in units of kT.
package calculate
