// SPDX-License-Identifier: MIT
// Package rootfind: method registry, Solve facade and the Picard kernel.
package rootfind

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// methods maps a method name to its kernel. Lookup happens once, up front,
// so a typo fails before the first (possibly expensive) evaluation.
var methods = map[string]func(f Func, x0 []float64, o *Options) (*Result, error){
	MethodKrylov: newtonKrylov,
	MethodPicard: picard,
}

// Solve drives F to a root starting from guess using the algorithm named in
// opts (DefaultOptions when nil).
//
// The guess is copied; the caller's slice is never mutated. On a fatal
// evaluation error the error is returned as-is and the Result is nil. In
// every other case a Result is returned and its Converged flag — not an
// error — reports whether ‖F‖₂ reached opts.Tolerance.
func Solve(f Func, guess []float64, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if f == nil || len(guess) == 0 || o.Tolerance <= 0 || o.MaxIterations <= 0 {
		return nil, fmt.Errorf("rootfind: Solve: %w", ErrBadInput)
	}
	kernel, ok := methods[o.Method]
	if !ok {
		return nil, fmt.Errorf("rootfind: Solve: method %q: %w", o.Method, ErrUnknownMethod)
	}

	x0 := append([]float64(nil), guess...)
	return kernel(f, x0, &o)
}

// picard iterates damped fixed-point mixing: x ← x + α·F(x).
//
// Linearly convergent when the mixed map is contractive; diverges otherwise
// and reports the fact through the Result rather than looping forever.
func picard(f Func, x []float64, o *Options) (*Result, error) {
	if o.Mixing <= 0 {
		return nil, fmt.Errorf("rootfind: picard: mixing %g: %w", o.Mixing, ErrBadInput)
	}

	n := len(x)
	fx := make([]float64, n)
	res := &Result{X: x}

	for it := 0; it <= o.MaxIterations; it++ {
		if err := f(fx, x); err != nil {
			return nil, err
		}
		res.FuncEvals++
		res.Iterations = it
		res.ResidualNorm = floats.Norm(fx, 2)
		if o.Progress != nil {
			fmt.Fprintf(o.Progress, "picard: iter %3d  |F| = %.6e\n", it, res.ResidualNorm)
		}

		if res.ResidualNorm <= o.Tolerance {
			res.Converged = true
			res.Message = "converged"
			return res, nil
		}
		floats.AddScaled(x, o.Mixing, fx)
	}

	res.Message = "maximum iterations reached"
	return res, nil
}
