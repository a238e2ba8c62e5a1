// Package closure implements the closure relations that supply the direct
// correlation function c(r) from a pair potential and the propagator γ(r).
//
// The exact integral-equation theory is not closed-form: an approximate
// closure is what makes the Ornstein–Zernike relation solvable. Closures
// here are written in the r·γ(r) change of variables — the solver hands in
// the bare γ series after dividing out r — and, more importantly, in a form
// that stays finite when the potential has a hard core (U → ∞). Written in
// the untransformed variable, these relations diverge and the equations are
// numerically unsolvable for hard-core potentials.
//
// Two capability families exist:
//
//   - Atomic closures compute c(r) pointwise from the full scalar γ field.
//     PercusYevick and HyperNettedChain are provided; the family is open
//     and a new closure only needs to hold its bound potential and formula.
//   - Molecular closures are a distinct algorithm family. They are declared
//     in the type space (ReferenceMolecular) but not implemented: selecting
//     one fails with ErrNotImplemented, never a silent no-op.
//
// Every closure holds a reference to its pair's potential series (fixed for
// the life of a solve) and its last computed value. A closure belongs to
// exactly one site-type pair of one solver; Clone produces the independent
// copy a new solver needs.
package closure
