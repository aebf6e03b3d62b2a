// SPDX-License-Identifier: MIT
// Package lyapunov: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// lyapunov package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors in option
// constructors.

package lyapunov

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "lyapunov: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still
// use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil input -> dimension mismatch -> singularity. A decomposition
// failure, should one occur, surfaces after the shape checks and before
// the spectrum check.

var (
	// ErrNilMatrix indicates that a nil matrix argument was passed.
	ErrNilMatrix = errors.New("lyapunov: nil matrix")

	// ErrDimensionMismatch indicates that A or Q is not square, or that
	// their sizes disagree. Detected before any numerical work begins.
	ErrDimensionMismatch = errors.New("lyapunov: A and Q must be square matrices of equal size")

	// ErrSingularSystem indicates that the eigen-structure of A implies a
	// non-unique solution: some eigenvalue pair satisfies λᵢ + λⱼ ≈ 0
	// within the singularity tolerance. Attempting to solve such a system
	// would hit a (near-)zero pivot, so the call is aborted instead.
	ErrSingularSystem = errors.New("lyapunov: eigenvalue pair sum within tolerance of zero; solution is not unique")

	// ErrSchurFailed indicates that the underlying real Schur
	// decomposition routine failed to converge (rare, pathological input).
	// Retrying is pointless: the computation is deterministic.
	ErrSchurFailed = errors.New("lyapunov: real Schur decomposition did not converge")
)
