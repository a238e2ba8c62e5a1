// SPDX-License-Identifier: MIT
// Package rootfind: the matrix-free Newton–GMRES kernel.
package rootfind

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// gmresRestart bounds the Krylov subspace built per Newton step.
	gmresRestart = 30

	// forcingTerm is the inexact-Newton tolerance: each linear solve only
	// needs to reduce the linear residual to this fraction of ‖F‖.
	forcingTerm = 0.1

	// armijoSlope is the sufficient-decrease constant of the line search.
	armijoSlope = 1e-4

	// maxBacktracks bounds the step-halving line search (λ ≥ 2⁻¹²).
	maxBacktracks = 12

	// sqrtEps scales the finite-difference Jacobian probes.
	sqrtEps = 1.4901161193847656e-08 // √(2⁻⁵²)
)

// newtonKrylov solves F(x)=0 with inexact Newton iterations.
//
// Each outer step solves J(x)·s = −F(x) approximately with GMRES, where
// J·v is probed by a forward difference of F, then accepts x+λs for the
// first λ ∈ {1, ½, ¼, …} giving sufficient residual decrease.
func newtonKrylov(f Func, x []float64, o *Options) (*Result, error) {
	n := len(x)
	res := &Result{X: x}

	fx := make([]float64, n)
	step := make([]float64, n)
	xt := make([]float64, n)
	ft := make([]float64, n)

	eval := func(dst, at []float64) error {
		res.FuncEvals++
		return f(dst, at)
	}

	if err := eval(fx, x); err != nil {
		return nil, err
	}
	fnorm := floats.Norm(fx, 2)

	for it := 0; it <= o.MaxIterations; it++ {
		res.Iterations = it
		res.ResidualNorm = fnorm
		if o.Progress != nil {
			fmt.Fprintf(o.Progress, "krylov: iter %3d  |F| = %.6e\n", it, fnorm)
		}
		if fnorm <= o.Tolerance {
			res.Converged = true
			res.Message = "converged"
			return res, nil
		}
		if it == o.MaxIterations {
			break
		}

		// Jacobian-vector probe at the current iterate.
		jv := func(dst, v []float64) error {
			vnorm := floats.Norm(v, 2)
			if vnorm == 0 {
				for i := range dst {
					dst[i] = 0
				}
				return nil
			}
			eps := sqrtEps * (1 + floats.Norm(x, 2)) / vnorm
			floats.AddScaledTo(xt, x, eps, v)
			if err := eval(ft, xt); err != nil {
				return err
			}
			floats.SubTo(dst, ft, fx)
			floats.Scale(1/eps, dst)
			return nil
		}

		// Solve J·step = −F inexactly.
		rhs := make([]float64, n)
		floats.ScaleTo(rhs, -1, fx)
		if err := gmres(step, jv, rhs, forcingTerm*fnorm); err != nil {
			return nil, err
		}

		// Armijo backtracking on ‖F‖.
		lambda := 1.0
		accepted := false
		var fnt float64
		for bt := 0; bt < maxBacktracks; bt++ {
			floats.AddScaledTo(xt, x, lambda, step)
			if err := eval(ft, xt); err != nil {
				return nil, err
			}
			fnt = floats.Norm(ft, 2)
			if fnt <= (1-armijoSlope*lambda)*fnorm {
				accepted = true
				break
			}
			lambda *= 0.5
		}
		if !accepted {
			res.Message = "line search failed to reduce the residual"
			return res, nil
		}

		copy(x, xt)
		copy(fx, ft)
		fnorm = fnt
	}

	res.Message = "maximum iterations reached"
	return res, nil
}

// gmres approximately solves A·s = b for the matrix-free operator av,
// stopping when the linear residual 2-norm drops to tol or the Krylov
// budget is exhausted. s is overwritten with the best least-squares
// iterate; the zero vector seeds the subspace.
//
// Standard restarted-free Arnoldi with modified Gram–Schmidt and Givens
// rotations on the Hessenberg matrix.
func gmres(s []float64, av func(dst, v []float64) error, b []float64, tol float64) error {
	n := len(b)
	for i := range s {
		s[i] = 0
	}

	beta := floats.Norm(b, 2)
	if beta == 0 {
		return nil
	}
	m := gmresRestart
	if n < m {
		m = n
	}

	v := make([][]float64, m+1)
	v[0] = make([]float64, n)
	floats.ScaleTo(v[0], 1/beta, b)

	h := make([][]float64, m+1)
	for i := range h {
		h[i] = make([]float64, m)
	}
	cs := make([]float64, m)
	sn := make([]float64, m)
	g := make([]float64, m+1)
	g[0] = beta

	w := make([]float64, n)
	k := 0
	for j := 0; j < m; j++ {
		if err := av(w, v[j]); err != nil {
			return err
		}

		// Modified Gram–Schmidt orthogonalization.
		for i := 0; i <= j; i++ {
			h[i][j] = floats.Dot(v[i], w)
			floats.AddScaled(w, -h[i][j], v[i])
		}
		h[j+1][j] = floats.Norm(w, 2)

		breakdown := h[j+1][j] <= 1e-14*beta
		if !breakdown {
			v[j+1] = make([]float64, n)
			floats.ScaleTo(v[j+1], 1/h[j+1][j], w)
		}

		// Apply accumulated rotations to the new column, then zero its
		// subdiagonal with a fresh rotation.
		for i := 0; i < j; i++ {
			t := cs[i]*h[i][j] + sn[i]*h[i+1][j]
			h[i+1][j] = -sn[i]*h[i][j] + cs[i]*h[i+1][j]
			h[i][j] = t
		}
		d := math.Hypot(h[j][j], h[j+1][j])
		if d == 0 {
			cs[j], sn[j] = 1, 0
		} else {
			cs[j], sn[j] = h[j][j]/d, h[j+1][j]/d
		}
		h[j][j] = d
		h[j+1][j] = 0
		g[j+1] = -sn[j] * g[j]
		g[j] *= cs[j]

		k = j + 1
		if math.Abs(g[k]) <= tol || breakdown {
			break
		}
	}

	// Back-substitute the k×k triangular system, then expand into s.
	y := make([]float64, k)
	for i := k - 1; i >= 0; i-- {
		sum := g[i]
		for l := i + 1; l < k; l++ {
			sum -= h[i][l] * y[l]
		}
		if h[i][i] == 0 {
			y[i] = 0
			continue
		}
		y[i] = sum / h[i][i]
	}
	for i := 0; i < k; i++ {
		floats.AddScaled(s, y[i], v[i])
	}

	return nil
}
