package gramian

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/gostab/gostab/lyapunov"
	"github.com/gostab/gostab/stability"
)

var (
	// ErrNilMatrix indicates that a nil matrix argument was passed.
	ErrNilMatrix = errors.New("gramian: nil matrix")

	// ErrDimensionMismatch indicates that A is not square, or that the
	// input/output matrix does not conform to A's dimension.
	ErrDimensionMismatch = errors.New("gramian: incompatible system dimensions")

	// ErrUnstable indicates that A is not Hurwitz: the infinite-horizon
	// Gramian integral diverges, so no Gramian exists.
	ErrUnstable = errors.New("gramian: system matrix is not Hurwitz")
)

// Controllability computes the controllability Gramian Wc of (A, B),
// the unique symmetric solution of
//
//	A·Wc + Wc·Aᵀ = −B·Bᵀ.
//
// A must be n×n Hurwitz and B must have n rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnstable, plus any
// lyapunov solver error surfaced as-is.
// Complexity: O(n³).
func Controllability(a, b mat.Matrix) (*mat.Dense, error) {
	if err := validateSystem(a, b, true); err != nil {
		return nil, err
	}

	// Q = B·Bᵀ is symmetric positive-semidefinite by construction.
	var q mat.Dense
	q.Mul(b, b.T())

	// A·Wc + Wc·Aᵀ = −BBᵀ is the Lyapunov equation MᵀX + XM = −Q for M = Aᵀ.
	return lyapunov.Solve(a.T(), &q)
}

// Observability computes the observability Gramian Wo of (A, C),
// the unique symmetric solution of
//
//	Aᵀ·Wo + Wo·A = −Cᵀ·C.
//
// A must be n×n Hurwitz and C must have n columns.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnstable, plus any
// lyapunov solver error surfaced as-is.
// Complexity: O(n³).
func Observability(a, c mat.Matrix) (*mat.Dense, error) {
	if err := validateSystem(a, c, false); err != nil {
		return nil, err
	}

	// Q = Cᵀ·C is symmetric positive-semidefinite by construction.
	var q mat.Dense
	q.Mul(c.T(), c)

	return lyapunov.Solve(a, &q)
}

// validateSystem checks the (A, B) or (A, C) pair and the stability of A.
// When rows is true the companion matrix must have n rows (input matrix
// B), otherwise n columns (output matrix C).
func validateSystem(a, m mat.Matrix, rows bool) error {
	if a == nil || m == nil {
		return ErrNilMatrix
	}
	n, c := a.Dims()
	if n != c {
		return ErrDimensionMismatch
	}
	mr, mc := m.Dims()
	if rows && mr != n {
		return ErrDimensionMismatch
	}
	if !rows && mc != n {
		return ErrDimensionMismatch
	}

	hurwitz, err := stability.IsHurwitz(a)
	if err != nil {
		return err
	}
	if !hurwitz {
		return ErrUnstable
	}

	return nil
}
