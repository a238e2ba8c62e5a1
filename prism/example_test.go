package prism_test

import (
	"fmt"

	"github.com/katalvlaran/goprism/closure"
	"github.com/katalvlaran/goprism/domain"
	"github.com/katalvlaran/goprism/omega"
	"github.com/katalvlaran/goprism/prism"
	"github.com/katalvlaran/goprism/system"
)

// ExamplePRISM_Solve solves the non-interacting single-site fluid, the one
// case with a closed-form answer: the total correlation vanishes and the
// pair correlation function is exactly one everywhere.
func ExamplePRISM_Solve() {
	d, _ := domain.New(256, 0.1)
	s, _ := system.New(d, []string{"A"})
	_ = s.SetDensity("A", 0.5)
	_ = s.SetPotential("A", "A", idealPotential{})
	_ = s.SetClosure("A", "A", closure.NewPercusYevick())
	_ = s.SetOmega("A", "A", omega.SingleSite{})

	p, err := prism.New(s)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	res, err := p.Solve(nil, nil)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Println("converged:", res.Converged)

	h, _ := p.TotalCorr()
	_ = h.ToReal(d)
	series, _ := h.SeriesAt(nil, 0, 0)
	fmt.Printf("g(r) at contact: %.2f\n", series[10]+1.0)

	// Output:
	// converged: true
	// g(r) at contact: 1.00
}

// idealPotential is identically zero: no interaction at any separation.
type idealPotential struct{}

func (idealPotential) Calculate(r []float64) []float64 { return make([]float64, len(r)) }
