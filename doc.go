// Package goprism is a polymer reference interaction site model (PRISM)
// integral-equation solver: it predicts pair correlations, structure
// factors and other equilibrium structure of polymer liquids, blends and
// solutions from site-site potentials and chain architecture.
//
// 🚀 What is goprism?
//
//	A self-contained numerical engine that brings together:
//		• Solution domain: paired real/reciprocal grids with fast sine transforms
//		• Matrix-Fields: per-grid-point rank×rank correlation algebra
//		• Closures: Percus–Yevick, hypernetted chain, and room for more
//		• Potentials: hard sphere, Lennard-Jones and variants, exponential
//		• Intramolecular correlations: ideal chains, tabulated input, trivial sites
//		• Root finding: Newton–Krylov (GMRES) and damped Picard iteration
//		• Observables: g(r), partial structure factors, potentials of mean force
//
// ✨ Why choose goprism?
//
//   - Declarative setup – describe sites, densities, potentials, closures
//     and chain structure, then solve
//   - Predictable numerics – explicit space tags on every field, a
//     hard-core-stable change of variables, fail-fast validation
//   - Pre-allocated hot path – the functional never allocates per call
//
// Under the hood, everything is organized per concern:
//
//	domain/    — grids and the dual-space sine-transform pair
//	field/     — the Matrix-Field container and its algebra
//	potential/ — pairwise site-site interaction models
//	closure/   — approximations tying γ to the direct correlation
//	omega/     — intramolecular (single-chain) structure factors
//	system/    — the complete problem description and its validation
//	rootfind/  — the numerical methods driving the functional to a root
//	prism/     — the solver: working set, functional, solve driver
//	calculate/ — observables derived from a converged solution
//
// Quick sketch of a solve:
//
//	domain → system (sites, ρ, U, closure, ω) → prism.New → Solve → calculate
//
// Dive into the package docs for worked examples, starting with
// prism.ExamplePRISM_Solve.
//
//	go get github.com/katalvlaran/goprism
package goprism
