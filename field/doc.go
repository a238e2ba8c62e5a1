// Package field provides the Matrix-Field primitive used throughout the
// PRISM core: a grid-length stack of symmetric rank×rank matrices together
// with a tagged current space (real or reciprocal).
//
// A MatrixField of length L and rank R stores L·R·R float64 values in a
// flat, block-major slice (the R×R block of grid point i is contiguous).
// At every grid point the block holds the value of one correlation function
// for every unordered pair of site-types, which lets the Ornstein–Zernike
// relation be written as ordinary matrix algebra applied point by point.
//
// The package provides:
//
//   - Elementwise Add/Sub/MulElem/DivElem between compatible fields, plus
//     scalar, per-grid-point (MulGrid/DivGrid) and per-block
//     (MulBlock/DivBlock) broadcasts.
//   - Dot — per-grid-point matrix multiplication.
//   - Invert — per-grid-point matrix inversion, reporting the failing grid
//     index on singularity.
//   - NewIdentity — the "I" of (I − ΩC).
//   - Site-type labelled access (PairSeries/SetPairSeries) that
//     auto-symmetrizes: setting (A,B) also sets (B,A).
//   - ToFourier/ToReal — whole-field transforms that flip the space tag and
//     fail loudly when the field is already in the target space.
//
// Every operation is validated fail-fast against shape and space
// compatibility; violations surface as the package sentinels
// (ErrDimensionMismatch, ErrSpaceMismatch, ErrSingular, ...) matched with
// errors.Is. A MatrixField is not safe for concurrent mutation.
package field
