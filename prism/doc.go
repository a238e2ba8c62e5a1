// Package prism owns a fully specified PRISM problem and drives it to its
// self-consistent solution.
//
// A PRISM solver is built from a validated system.System. Construction
// snapshots the system (later mutation of the original cannot affect the
// solve), evaluates and density-scales the intramolecular correlation field
// once, binds each pair's potential to its closure, and pre-allocates every
// working buffer the functional needs so that repeated evaluations allocate
// nothing.
//
// The functional is the residual whose root is the PRISM solution. Per
// evaluation it:
//
//  1. reshapes the candidate vector into a real-space Matrix-Field and
//     divides out the stabilizing r·γ change of variables,
//  2. applies each pair's closure to produce the direct correlation field,
//  3. transforms it to reciprocal space,
//  4. applies the Ornstein–Zernike relation H = (I−ΩC)⁻¹ΩCΩ as per-point
//     matrix algebra and recovers physical normalization,
//  5. transforms γ_out = h − c back to real space and returns
//     r·(γ_out − γ_in) flattened.
//
// Solve wraps a rootfind method around the functional, seeding with zeros
// when no guess is supplied, and returns the finder's Result unjudged —
// inspecting the Converged flag is the caller's job. After a solve the
// solver's buffers hold the fields of the last functional call; they are
// only meaningful when that flag is true.
//
// A solver instance is single-threaded: its buffers are clobbered by every
// functional call, so concurrent solves need one solver each, built from
// their own snapshots.
package prism
