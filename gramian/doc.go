// Package gramian computes controllability and observability Gramians of
// stable linear time-invariant systems
//
//	ẋ = A·x + B·u,    y = C·x.
//
// For a Hurwitz A the infinite-horizon Gramians are the unique symmetric
// positive-semidefinite solutions of a pair of continuous Lyapunov
// equations:
//
//	A·Wc + Wc·Aᵀ = −B·Bᵀ   (controllability)
//	Aᵀ·Wo + Wo·A = −Cᵀ·C   (observability)
//
// Both are computed by one call to the lyapunov solver; stability of A is
// checked first, since the integrals defining the Gramians diverge for
// unstable systems.
//
// ⚙️ Usage:
//
//	import "github.com/gostab/gostab/gramian"
//
//	wc, err := gramian.Controllability(a, b)
//	wo, err := gramian.Observability(a, c)
//
// Typical applications: minimality checks, balanced truncation, input
// energy analysis.
package gramian
