// Package omega provides intramolecular correlation functions (form
// factors) for PRISM calculations.
//
// An Omega supplies, for one unordered pair of site-types, the
// reciprocal-space series Ω(k) describing correlations between sites on the
// same molecule. The solver evaluates each provider once per solve on the
// domain's k axis and scales the result by the site-density matrix.
//
// Analytic forms: SingleSite (ω = 1, a monatomic site), NoIntra (ω = 0,
// sites never on the same molecule), GaussianChain and FreelyJointedChain
// (ideal-chain form factors, normalized so ω(k→0) → chain length).
//
// FromFile reads a two-column (k, ω) plain-text table and refuses to
// interpolate: the stored k grid must match the requested axis exactly, or
// Calculate fails with ErrDomainMismatch.
package omega
