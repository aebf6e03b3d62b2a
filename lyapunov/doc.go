// Package lyapunov solves the real continuous Lyapunov matrix equation
//
//	AᵀX + XA = −Q
//
// for a square real X, given a square real A and a symmetric real Q.
//
// 🚀 What is the continuous Lyapunov equation?
//
//	The central linear matrix equation of stability analysis for linear
//	dynamical systems ẋ = A·x. It is how Lyapunov functions are built and
//	how controllability/observability Gramians are computed. It is widely
//	used in:
//	  • Stability certificates for LTI systems
//	  • Gramian-based model reduction & balancing
//	  • LQR/LQE and other control-design computations
//
// ✨ Key features:
//   - direct (non-iterative) Bartels–Stewart solve: Schur reduction,
//     blockwise back-substitution, closed-form 1×1/2×2 diagonal solves
//   - strict fail-fast validation (ErrDimensionMismatch before any numerics)
//   - principled singularity detection: every eigenvalue pair λᵢ+λⱼ is
//     tested against a tolerance (ErrSingularSystem when the solution is
//     not unique)
//   - exact symmetry of the result, enforced by explicit symmetrization
//
// ⚙️ Usage:
//
//	import "github.com/gostab/gostab/lyapunov"
//
//	a := mat.NewDense(2, 2, []float64{1, -3, 2, -4})
//	q := mat.NewDense(2, 2, []float64{3, 1, 1, 1})
//
//	x, err := lyapunov.Solve(a, q)
//	if err != nil {
//	  // ErrDimensionMismatch | ErrSingularSystem | ErrSchurFailed
//	}
//
// Performance:
//
//   - Time:   O(n³), dominated by the real Schur decomposition
//   - Memory: O(n²)
//
// The solver is pure and synchronous: no shared state between calls, so
// concurrent calls on independent inputs are safe without locking.
package lyapunov
