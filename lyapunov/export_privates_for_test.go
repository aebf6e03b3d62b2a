// SPDX-License-Identifier: MIT

package lyapunov

// Test-Bridge (White-Box) for the Reduced Sub-Solvers
//
// Purpose:
//   - Expose the UNEXPORTED closed-form 1×1/2×2 solvers to lyapunov_test ONLY.
//   - These entry points accept an already-reduced diagonal sub-block of T
//     together with a symmetric right-hand side; they perform no validation
//     and no Schur reduction — the caller guarantees a valid sub-problem.
//
// Behavior & Determinism:
//   - Thin pass-throughs; no allocations beyond what the wrapped functions do.
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here to avoid clutter across files.
//   - If a private solver changes signature, mirror the change here once.

var (
	// Solve1By1_TestOnly forwards to the private scalar closed form
	// y = −q/(2a). Requires a ≠ 0.
	Solve1By1_TestOnly = solve1By1

	// Solve2By2_TestOnly forwards to the private 2×2 closed form for
	// AᵀX + XA = −Q. Reads only q(0,0), q(1,0), q(1,1); the mirrored
	// q(0,1) entry is never touched.
	Solve2By2_TestOnly = solve2By2

	// RealSchur_TestOnly forwards to the private Schur wrapper
	// A = U·T·Uᵀ. Requires n ≥ 2.
	RealSchur_TestOnly = realSchur
)
