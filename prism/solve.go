// SPDX-License-Identifier: MIT
// Package prism: the solve driver.
package prism

import (
	"fmt"

	"github.com/katalvlaran/goprism/rootfind"
)

// Solve drives the functional to a root with the configured root-finding
// method and returns the finder's diagnostics.
//
// guess may be nil (an all-zeros γ seed) or a vector of length Size();
// anything else fails with ErrBadGuess. opts selects method, tolerance,
// iteration budget and progress output (rootfind.DefaultOptions when nil).
//
// Solve does not judge the outcome: it returns the Result even when the
// Converged flag is false, and retrying with other guesses or methods is
// caller policy. On success the solver's buffers are refreshed with one
// final functional evaluation at the returned iterate, so TotalCorr and
// DirectCorr expose the converged fields.
func (p *PRISM) Solve(guess []float64, opts *rootfind.Options) (*rootfind.Result, error) {
	if guess == nil {
		guess = make([]float64, p.Size())
	} else if len(guess) != p.Size() {
		return nil, fmt.Errorf("prism: Solve: got %d values, want %d: %w", len(guess), p.Size(), ErrBadGuess)
	}

	p.solved = false
	result, err := rootfind.Solve(p.Residual, guess, opts)
	if err != nil {
		return nil, fmt.Errorf("prism: Solve: %w", err)
	}

	// Leave the working set at the finder's final iterate; accessors gate
	// on the convergence flag. A non-converged finder may hand back an
	// iterate one step past the last point its kernel evaluated, so an
	// evaluation failure there does not outrank the Result itself.
	if err = p.Residual(p.y, result.X); err != nil {
		if result.Converged {
			return nil, fmt.Errorf("prism: Solve: %w", err)
		}
		return result, nil
	}
	p.solved = result.Converged

	return result, nil
}
