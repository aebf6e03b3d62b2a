// SPDX-License-Identifier: MIT
// Package: lyapunov
//
// Purpose:
//  - Provide a single, canonical source of truth for input validation.
//  - Keep the solver pipeline minimal by delegating nil/shape checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package lyapunov

import "gonum.org/v1/gonum/mat"

// validateShapes ensures A and Q are non-nil, square, and of equal size.
// This is the Input Validator of the pipeline: it runs before any
// decomposition or arithmetic, so a shape error never costs numerical work.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func validateShapes(a, q mat.Matrix) error {
	// Reject nil interfaces before touching Dims.
	if a == nil || q == nil {
		return ErrNilMatrix
	}

	ar, ac := a.Dims()
	qr, qc := q.Dims()
	// Non-square A.
	if ar != ac {
		return ErrDimensionMismatch
	}
	// Non-square Q.
	if qr != qc {
		return ErrDimensionMismatch
	}
	// Size mismatch between A and Q.
	if ar != qr {
		return ErrDimensionMismatch
	}

	return nil
}
