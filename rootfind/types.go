// SPDX-License-Identifier: MIT
// Package rootfind: contracts, options, result diagnostics and sentinels.
package rootfind

import (
	"errors"
	"io"
)

var (
	// ErrUnknownMethod is returned when Options.Method names no registered
	// algorithm. The check happens before any function evaluation.
	ErrUnknownMethod = errors.New("rootfind: unknown method")

	// ErrBadInput is returned for an empty guess vector or non-positive
	// tolerance, iteration budget or mixing parameter.
	ErrBadInput = errors.New("rootfind: invalid options or guess")
)

// Method names accepted by Options.Method.
const (
	// MethodKrylov selects matrix-free Newton–GMRES.
	MethodKrylov = "krylov"

	// MethodPicard selects damped fixed-point mixing.
	MethodPicard = "picard"
)

// Func is the residual whose root is sought. It writes F(x) into dst
// (len(dst) == len(x)) and returns a non-nil error only for fatal
// evaluation failures, which abort the solve.
type Func func(dst, x []float64) error

// Options configures a solve.
//
// Fields:
//   - Method        — algorithm name (MethodKrylov or MethodPicard).
//   - Tolerance     — convergence threshold on the residual 2-norm.
//   - MaxIterations — outer iteration budget; the bound a caller uses to
//     limit runtime (there is no other cancellation primitive).
//   - Mixing        — Picard damping factor α in x ← x + α·F(x).
//   - Progress      — optional sink for per-iteration diagnostics; nil
//     silences them.
type Options struct {
	Method        string
	Tolerance     float64
	MaxIterations int
	Mixing        float64
	Progress      io.Writer
}

// DefaultOptions returns the standard configuration: Newton–Krylov with a
// 1e-8 residual tolerance and a 200-iteration budget.
func DefaultOptions() Options {
	return Options{
		Method:        MethodKrylov,
		Tolerance:     1e-8,
		MaxIterations: 200,
		Mixing:        0.1,
	}
}

// Result reports the outcome of a solve. A false Converged flag is a valid
// outcome, not an error: X then holds the last attempted iterate and the
// caller decides policy.
type Result struct {
	Converged    bool
	ResidualNorm float64 // final ‖F‖₂
	Iterations   int     // outer iterations performed
	FuncEvals    int     // residual evaluations, Jacobian probes included
	Message      string  // human-readable termination reason
	X            []float64
}
