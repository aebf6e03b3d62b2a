// Package lyapunov: real Schur reduction, consumed from gonum's LAPACK
// routines rather than reimplemented. The factorization A = U·T·Uᵀ has
// U orthogonal and T quasi-upper-triangular (1×1 and standardized 2×2
// diagonal blocks), and reports every eigenvalue of A through wr/wi.
package lyapunov

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"
	lapackimpl "gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
)

// realSchur computes the real Schur decomposition A = U·T·Uᵀ by the
// standard LAPACK sequence: permutation-only balancing (Dgebal),
// Hessenberg reduction (Dgehrd), accumulation of the orthogonal factor
// from the Householder vectors (Dlacpy + Dorghr), QR iteration with
// Schur-vector accumulation (Dhseqr), and undoing the balancing
// permutation on the vectors (Dgebak). Balancing is restricted to
// permutations because diagonal scaling would break U's orthogonality.
//
// Returns T, U and the eigenvalues of A as (wr[k], wi[k]) pairs in the
// order they appear on T's diagonal; complex-conjugate pairs appear
// consecutively, positive imaginary part first.
//
// The input is copied; A itself is never mutated. Requires n ≥ 2 (the
// 1×1 case short-circuits in Solve).
//
// Errors: ErrSchurFailed when the QR iteration fails to converge.
// Complexity: O(n³) time, O(n²) space.
func realSchur(a mat.Matrix) (t, u *mat.Dense, wr, wi []float64, err error) {
	n, _ := a.Dims()

	// Row-major copy of A; the QR iteration overwrites it with T.
	ta := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ta[i*n+j] = a.At(i, j)
		}
	}
	wr = make([]float64, n)
	wi = make([]float64, n)
	vs := make([]float64, n*n) // receives the Schur vectors U

	var impl lapackimpl.Implementation

	// Workspace queries (lwork = -1 stores the optimal size in work[0]);
	// one buffer sized for the largest of the three stages.
	var query [1]float64
	impl.Dgehrd(n, 0, n-1, nil, n, nil, query[:], -1)
	lwork := int(query[0])
	impl.Dorghr(n, 0, n-1, nil, n, nil, query[:], -1)
	if w := int(query[0]); w > lwork {
		lwork = w
	}
	impl.Dhseqr(lapack.EigenvaluesAndSchur, lapack.SchurOrig, n, 0, n-1,
		nil, n, nil, nil, nil, n, query[:], -1)
	if w := int(query[0]); w > lwork {
		lwork = w
	}
	if lwork < n {
		lwork = n
	}
	work := make([]float64, lwork)

	// Balance by permutation only, as DGEES does.
	balance := make([]float64, n)
	ilo, ihi := impl.Dgebal(lapack.Permute, n, ta, n, balance)

	// Reduce to upper Hessenberg form; tau holds the Householder scalars.
	tau := make([]float64, n-1)
	impl.Dgehrd(n, ilo, ihi, ta, n, tau, work, lwork)

	// Accumulate the orthogonal factor from the Householder vectors.
	impl.Dlacpy(blas.Lower, n, n, ta, n, vs, n)
	impl.Dorghr(n, ilo, ihi, vs, n, tau, work, lwork)

	// QR iteration: Schur form into ta, Schur vectors accumulated in vs.
	unconverged := impl.Dhseqr(lapack.EigenvaluesAndSchur, lapack.SchurOrig,
		n, ilo, ihi, ta, n, wr, wi, vs, n, work, lwork)
	if unconverged > 0 {
		return nil, nil, nil, nil, ErrSchurFailed
	}

	// Undo the balancing permutation on the Schur vectors.
	impl.Dgebak(lapack.Permute, lapack.EVRight, n, ilo, ihi, balance, n, vs, n)

	return mat.NewDense(n, n, ta), mat.NewDense(n, n, vs), wr, wi, nil
}
