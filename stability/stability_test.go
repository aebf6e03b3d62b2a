package stability_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/gostab/gostab/stability"
)

// TestIsHurwitz_KnownSpectra checks the predicate on matrices whose
// spectra are known in closed form.
func TestIsHurwitz_KnownSpectra(t *testing.T) {
	cases := []struct {
		name string
		a    *mat.Dense
		want bool
	}{
		{"negative identity", mat.NewDense(2, 2, []float64{-1, 0, 0, -1}), true},
		{"damped oscillator", mat.NewDense(2, 2, []float64{0, 1, -1, -1}), true},
		{"marginal rotation", mat.NewDense(2, 2, []float64{0, 1, -1, 0}), false},
		{"unstable scalar", mat.NewDense(1, 1, []float64{1}), false},
		{"zero eigenvalue", mat.NewDense(2, 2, []float64{0, 0, 0, -1}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stability.IsHurwitz(tc.a)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSpectralAbscissa_Values checks α(A) against hand-computed spectra.
func TestSpectralAbscissa_Values(t *testing.T) {
	// Eigenvalues −1 and −2: abscissa −1.
	a := mat.NewDense(2, 2, []float64{-1, 0, 0, -2})
	alpha, err := stability.SpectralAbscissa(a)
	require.NoError(t, err)
	assert.InDelta(t, -1, alpha, 1e-12)

	// Eigenvalues −0.5 ± 0.866i: abscissa −0.5.
	b := mat.NewDense(2, 2, []float64{0, 1, -1, -1})
	alpha, err = stability.SpectralAbscissa(b)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, alpha, 1e-12)
}

// TestSpectralAbscissa_Validation covers the guard rails.
func TestSpectralAbscissa_Validation(t *testing.T) {
	_, err := stability.SpectralAbscissa(nil)
	assert.ErrorIs(t, err, stability.ErrNilMatrix)

	_, err = stability.SpectralAbscissa(mat.NewDense(1, 2, []float64{1, 2}))
	assert.ErrorIs(t, err, stability.ErrNonSquare)

	alpha, err := stability.SpectralAbscissa(&mat.Dense{})
	require.NoError(t, err, "an empty matrix has an empty spectrum")
	assert.True(t, math.IsInf(alpha, -1))
}
