// SPDX-License-Identifier: MIT

// Package lyapunov: functional configuration for the solver's numeric
// policy. This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package lyapunov

import "math"

// DefaultSingularTol is the non-negative tolerance used by the singularity
// check: a pair of eigenvalues λᵢ, λⱼ of A is rejected when
//
//	|λᵢ + λⱼ| < tol · max(1, |λᵢ|, |λⱼ|).
//
// The absolute floor (the 1 in the max) catches eigenvalues that are
// themselves nearly zero; the relative factor scales the bound for large
// spectra. 1e-10 sits a few orders of magnitude above machine epsilon,
// where a pivot of that size no longer carries meaningful precision
// through the back-substitution.
const DefaultSingularTol = 1e-10

// panicSingularTolInvalid is the message used when WithSingularTol is
// handed a NaN or negative tolerance (programmer error, not user input).
const panicSingularTolInvalid = "lyapunov: WithSingularTol: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options is the internal, unexported option state consumed by Solve.
type options struct {
	singularTol float64 // threshold for the eigenvalue-pair singularity check
}

// defaultOptions returns the documented default numeric policy.
func defaultOptions() options {
	return options{singularTol: DefaultSingularTol}
}

// WithSingularTol overrides the singularity-check tolerance.
// Panics if tol is NaN, infinite or negative.
func WithSingularTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *options) { o.singularTol = tol }
}

// gatherOptions folds the supplied options over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
