package lyapunov_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gostab/gostab/lyapunov"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The scalar system ẋ = −x with weight Q = [2]:
//	  AᵀX + XA = −Q  ⇒  −2X = −2  ⇒  X = [1].
//
// Use case:
//
//	The simplest Lyapunov certificate: X > 0 proves ẋ = −x stable.
//
// Complexity: O(1) for the scalar base case.
func ExampleSolve() {
	a := mat.NewDense(1, 1, []float64{-1})
	q := mat.NewDense(1, 1, []float64{2})

	x, err := lyapunov.Solve(a, q)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("X = [%.1f]\n", x.At(0, 0))
	// Output:
	// X = [1.0]
}

// ExampleSolve_twoByTwo solves the classic Matlab lyap example
// (Matlab solves AX + XAᵀ + Q = 0, hence the transpose here).
func ExampleSolve_twoByTwo() {
	a := mat.NewDense(2, 2, []float64{1, -3, 2, -4}) // Aᵀ of the Matlab example
	q := mat.NewDense(2, 2, []float64{3, 1, 1, 1})

	x, err := lyapunov.Solve(a, q)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("X = [%.4f %.4f; %.4f %.4f]\n", x.At(0, 0), x.At(0, 1), x.At(1, 0), x.At(1, 1))
	// Output:
	// X = [6.1667 -3.8333; -3.8333 3.0000]
}

// ExampleSolve_singular shows the failure mode for a non-unique system:
// A = [0 1; −1 0] has eigenvalues ±i, whose sum is zero.
func ExampleSolve_singular() {
	a := mat.NewDense(2, 2, []float64{0, 1, -1, 0})
	q := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	_, err := lyapunov.Solve(a, q)
	fmt.Println(err)
	// Output:
	// lyapunov: eigenvalue pair sum within tolerance of zero; solution is not unique
}
