// Package potential provides pairwise-decomposed interaction potentials for
// PRISM calculations.
//
// A Potential produces the real-space scalar series U(r)/kT for one
// unordered pair of site-types, aligned to the caller's r grid. The core
// solver only reads these series — it binds each one to the pair's closure
// at build time and never recomputes it.
//
// Hard cores are expressed as +Inf; the closures are written so that the
// Boltzmann factor exp(−U) collapses to zero there and the calculation
// stays finite.
//
// Provided forms: HardSphere, LennardJones, HardCoreLennardJones and
// Exponential.
package potential
