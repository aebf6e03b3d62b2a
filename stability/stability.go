package stability

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix indicates that a nil matrix argument was passed.
	ErrNilMatrix = errors.New("stability: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("stability: matrix is not square")

	// ErrEigenFailed indicates that the eigendecomposition failed to
	// converge for the given matrix.
	ErrEigenFailed = errors.New("stability: eigendecomposition failed")
)

// SpectralAbscissa returns the largest real part over the spectrum of A,
//
//	α(A) = max { Re λ : λ eigenvalue of A }.
//
// The system ẋ = A·x is asymptotically stable iff α(A) < 0.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEigenFailed.
// Complexity: O(n³) time, O(n²) space.
func SpectralAbscissa(a mat.Matrix) (float64, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}
	n, c := a.Dims()
	if n != c {
		return 0, ErrNonSquare
	}
	if n == 0 {
		// Empty spectrum: the supremum over nothing is −∞.
		return math.Inf(-1), nil
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return 0, ErrEigenFailed
	}

	alpha := math.Inf(-1)
	for _, v := range eig.Values(nil) {
		if re := real(v); re > alpha {
			alpha = re
		}
	}

	return alpha, nil
}

// IsHurwitz reports whether every eigenvalue of A has a strictly negative
// real part, i.e. whether ẋ = A·x is asymptotically stable.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEigenFailed.
// Complexity: O(n³).
func IsHurwitz(a mat.Matrix) (bool, error) {
	alpha, err := SpectralAbscissa(a)
	if err != nil {
		return false, err
	}

	return alpha < 0, nil
}
