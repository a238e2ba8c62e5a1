// Package domain defines the discretized real/reciprocal solution grids for
// PRISM calculations and the discrete sine transforms that move scalar
// functions between them.
//
// 🚀 What is a Domain?
//
//	A Domain pins down everything about the numerical axes of a PRISM
//	problem:
//	  • length — number of grid points shared by both spaces
//	  • dr     — real-space spacing; r[i] = (i+1)·dr
//	  • dk     — reciprocal spacing, fixed by the Nyquist relation
//	             dk = π / (dr · length), so that dr·dk·length = π
//
// ✨ Key features:
//   - ToFourier / ToReal implement the 3-D radial Fourier pair
//     F(k) = (4π/k)∫ r·f(r)·sin(kr) dr  and its inverse, discretized with
//     the FFTPACK quarter-wave sine transforms (SINQB/SINQF).
//   - The pair is exactly inverse: ToReal(ToFourier(f)) == f to within
//     floating-point tolerance for any finite series of the grid length.
//   - Arbitrary grid lengths are supported (no power-of-two requirement).
//
// ⚙️ Usage:
//
//	d, err := domain.New(1024, 0.1)
//	if err != nil { ... }
//	fk, _ := d.ToFourier(nil, fr) // real → reciprocal
//	fr2, _ := d.ToReal(nil, fk)   // reciprocal → real; fr2 ≈ fr
//
// A Domain is immutable once constructed. The transform methods share an
// internal FFT plan and must not be called concurrently on one Domain.
package domain
