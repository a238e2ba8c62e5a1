// Package rootfind provides the nonlinear root-finding algorithms that
// drive a PRISM functional to its self-consistent fixed point.
//
// The package solves F(x) = 0 for a caller-supplied residual function over
// a flat float64 vector. Methods are selected by name:
//
//   - "krylov" — matrix-free Newton–GMRES: each Newton step solves the
//     linearized system J·s = −F with GMRES, approximating Jacobian-vector
//     products by finite differences of F, and globalizes with an Armijo
//     backtracking line search. The workhorse method; handles the dense,
//     unstructured Jacobians the integral equations produce.
//   - "picard" — damped fixed-point mixing x ← x + α·F(x). Cheap and
//     simple; useful for mild systems and as a robustness fallback.
//
// Solve is strictly sequential: the residual function is called one
// invocation at a time and must be deterministic (same x, same output).
// Any error it returns — a singular matrix inside the functional, for
// example — aborts the solve immediately and is propagated to the caller
// unwrapped; there is no automatic retry.
//
// Non-convergence is not an error: the returned Result carries a false
// Converged flag plus the final residual norm and iteration diagnostics,
// and judging it is the caller's policy.
package rootfind
