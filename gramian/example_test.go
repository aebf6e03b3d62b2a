package gramian_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gostab/gostab/gramian"
)

// ExampleControllability computes the Gramian of a decoupled stable
// system, where the closed form Wc[i][i] = 1/(−2aᵢ) is known.
func ExampleControllability() {
	a := mat.NewDense(2, 2, []float64{-1, 0, 0, -2})
	b := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	wc, err := gramian.Controllability(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("Wc diagonal = [%.2f %.2f]\n", wc.At(0, 0), wc.At(1, 1))
	// Output:
	// Wc diagonal = [0.50 0.25]
}

// ExampleControllability_unstable shows the failure mode: an unstable A
// has no infinite-horizon Gramian.
func ExampleControllability_unstable() {
	a := mat.NewDense(1, 1, []float64{1})
	b := mat.NewDense(1, 1, []float64{1})

	_, err := gramian.Controllability(a, b)
	fmt.Println(err)
	// Output:
	// gramian: system matrix is not Hurwitz
}
