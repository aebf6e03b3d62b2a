// Package stability provides eigenvalue-based stability predicates for
// linear time-invariant systems ẋ = A·x.
//
// A real matrix A is Hurwitz when every eigenvalue has a strictly
// negative real part; the system is then asymptotically stable. The
// spectral abscissa — the largest real part over the spectrum — is the
// quantity that decides it.
//
// ⚙️ Usage:
//
//	import "github.com/gostab/gostab/stability"
//
//	ok, err := stability.IsHurwitz(a)   // ok ⇒ ẋ = A·x asymptotically stable
//	alpha, err := stability.SpectralAbscissa(a)
//
// Both operations cost one dense eigendecomposition, O(n³).
package stability
