package lyapunov

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Solve — real continuous Lyapunov equation solver
//
// Description:
//
//	Solve computes the unique symmetric X satisfying
//
//	    AᵀX + XA = −Q
//
//	for a square real A and a symmetric real Q. Callers are expected to
//	supply a symmetric Q; the algorithm reads Q through a congruence
//	transform and never requires the mirrored halves to be consistent
//	beyond symmetry. The equation has a unique solution iff no pair of
//	eigenvalues of A sums to zero.
//
// Algorithm Outline (Bartels–Stewart):
//  1. Validate shapes: A, Q square and of equal size n.
//  2. n = 0 → empty result; n = 1 → scalar closed form.
//  3. Real Schur reduction A = U·T·Uᵀ (gonum Dgees), T quasi-upper
//     triangular with 1×1 and 2×2 diagonal blocks.
//  4. Singularity check over all eigenvalue pairs: reject when
//     |λᵢ + λⱼ| < tol·max(1, |λᵢ|, |λⱼ|).
//  5. Form Q′ = Uᵀ·Q·U (symmetry is preserved by congruence) and solve
//     the reduced equation TᵀY + YT = −Q′ blockwise: for each block
//     column, small Sylvester solves for the off-diagonal couplings,
//     then a closed-form 1×1/2×2 solve for the diagonal block.
//  6. Reconstruct X = U·Y·Uᵀ and symmetrize X ← (X + Xᵀ)/2 so the
//     symmetry invariant holds exactly despite rounding.
//
// Complexity:
//
//	Time   = O(n³) (dominated by the Schur decomposition)
//	Memory = O(n²)
//
// Errors:
//   - ErrNilMatrix          — A or Q is nil.
//   - ErrDimensionMismatch  — A or Q not square, or sizes disagree.
//   - ErrSingularSystem     — an eigenvalue pair sums to ≈0 (no unique solution).
//   - ErrSchurFailed        — the decomposition failed to converge.
//
// All failures abort the call with no partial result.
func Solve(a, q mat.Matrix, opts ...Option) (*mat.Dense, error) {
	o := gatherOptions(opts...)

	if err := validateShapes(a, q); err != nil {
		return nil, err
	}
	n, _ := a.Dims()

	// Empty system: nothing to solve.
	if n == 0 {
		return &mat.Dense{}, nil
	}

	// Scalar system: the Schur form of a 1×1 matrix is the matrix itself,
	// so the closed form applies directly (base case of the block solver).
	if n == 1 {
		alpha := a.At(0, 0)
		if err := checkSpectrum([]float64{alpha}, []float64{0}, o.singularTol); err != nil {
			return nil, err
		}

		return mat.NewDense(1, 1, []float64{solve1By1(alpha, q.At(0, 0))}), nil
	}

	t, u, wr, wi, err := realSchur(a)
	if err != nil {
		return nil, err
	}
	if err = checkSpectrum(wr, wi, o.singularTol); err != nil {
		return nil, err
	}

	// Q′ = Uᵀ·Q·U remains symmetric: congruence transforms preserve symmetry.
	var qbar mat.Dense
	qbar.Product(u.T(), q, u)

	y, err := solveReduced(t, &qbar)
	if err != nil {
		return nil, err
	}

	// X = U·Y·Uᵀ, then enforce exact symmetry against accumulated rounding.
	var x mat.Dense
	x.Product(u, y, u.T())
	symmetrize(&x)

	return &x, nil
}

// checkSpectrum rejects spectra for which the Lyapunov equation has no
// unique solution. Every unordered eigenvalue pair (a value paired with
// itself included) must satisfy |λᵢ + λⱼ| ≥ tol·max(1, |λᵢ|, |λⱼ|);
// the self-pair case catches (near-)zero eigenvalues, the cross pairs
// catch mirrored real values and conjugate pairs on the imaginary axis.
//
// Running this before the block solver matters: a violating pair is
// exactly what would surface later as a (near-)zero pivot inside a
// diagonal or coupling solve.
func checkSpectrum(wr, wi []float64, tol float64) error {
	n := len(wr)
	for i := 0; i < n; i++ {
		li := complex(wr[i], wi[i])
		for j := i; j < n; j++ {
			lj := complex(wr[j], wi[j])
			scale := math.Max(1, math.Max(cmplx.Abs(li), cmplx.Abs(lj)))
			if cmplx.Abs(li+lj) < tol*scale {
				return ErrSingularSystem
			}
		}
	}

	return nil
}

// solveReduced solves the transformed equation TᵀY + YT = −Q′ for
// symmetric Y, where T is quasi-upper-triangular and Q′ is symmetric.
//
// For this orientation the dependency structure of the block equations
// runs forward: the (0,0) block equation is closed, and every later
// block's right-hand side involves only blocks from earlier block
// columns. So the solver walks block columns left to right; within a
// column it resolves the off-diagonal couplings top-down, then the
// diagonal block. Each off-diagonal coupling is a Sylvester-type system
// over at most 4 unknowns; each diagonal block has a closed form.
// Y_ki = Y_ikᵀ is stored eagerly so later right-hand sides can read
// either triangle.
func solveReduced(t, qbar *mat.Dense) (*mat.Dense, error) {
	n, _ := t.Dims()
	blocks := partition(t)
	y := mat.NewDense(n, n, nil)

	for k := range blocks {
		bk := blocks[k]

		// Off-diagonal couplings Y_ik for every block i above k.
		for i := 0; i < k; i++ {
			bi := blocks[i]
			g := couplingRHS(t, qbar, y, blocks, i, k)
			yik, err := solveCoupling(t, bi, bk, g)
			if err != nil {
				return nil, err
			}
			setBlock(y, bi.start, bk.start, yik)
			setBlockTransposed(y, bk.start, bi.start, yik)
		}

		// Diagonal block Y_kk via the closed-form sub-solver.
		rkk := diagonalRHS(t, qbar, y, blocks, k)
		tkk := t.Slice(bk.start, bk.start+bk.size, bk.start, bk.start+bk.size)
		if bk.size == 1 {
			y.Set(bk.start, bk.start, solve1By1(tkk.At(0, 0), rkk.At(0, 0)))

			continue
		}
		setBlock(y, bk.start, bk.start, solve2By2(tkk, rkk))
	}

	return y, nil
}

// couplingRHS accumulates the right-hand side for the coupling block
// (i,k), i < k:
//
//	G_ik = Q′_ik + Σ_{l<i} T_liᵀ·Y_lk + Σ_{l<k} Y_il·T_lk
//
// so that the coupling equation reads T_iiᵀ·Y_ik + Y_ik·T_kk = −G_ik.
// Every Y block referenced here was resolved earlier: Y_lk (l < i) by
// this column's top-down sweep, Y_il (l < k) by an earlier column.
func couplingRHS(t, qbar, y *mat.Dense, blocks []block, i, k int) *mat.Dense {
	bi, bk := blocks[i], blocks[k]
	g := mat.DenseCopyOf(qbar.Slice(bi.start, bi.start+bi.size, bk.start, bk.start+bk.size))

	var c mat.Dense
	for l := 0; l < i; l++ {
		bl := blocks[l]
		tli := t.Slice(bl.start, bl.start+bl.size, bi.start, bi.start+bi.size)
		ylk := y.Slice(bl.start, bl.start+bl.size, bk.start, bk.start+bk.size)
		c.Mul(tli.T(), ylk)
		g.Add(g, &c)
	}
	for l := 0; l < k; l++ {
		bl := blocks[l]
		yil := y.Slice(bi.start, bi.start+bi.size, bl.start, bl.start+bl.size)
		tlk := t.Slice(bl.start, bl.start+bl.size, bk.start, bk.start+bk.size)
		c.Reset()
		c.Mul(yil, tlk)
		g.Add(g, &c)
	}

	return g
}

// diagonalRHS accumulates the right-hand side for diagonal block k:
//
//	R_kk = Q′_kk + Σ_{l<k} (T_lkᵀ·Y_lk + (T_lkᵀ·Y_lk)ᵀ)
//
// using Y_kl = Y_lkᵀ; the result is symmetric by construction, and the
// diagonal equation reads T_kkᵀ·Y_kk + Y_kk·T_kk = −R_kk.
func diagonalRHS(t, qbar, y *mat.Dense, blocks []block, k int) *mat.Dense {
	bk := blocks[k]
	r := mat.DenseCopyOf(qbar.Slice(bk.start, bk.start+bk.size, bk.start, bk.start+bk.size))

	var c mat.Dense
	for l := 0; l < k; l++ {
		bl := blocks[l]
		tlk := t.Slice(bl.start, bl.start+bl.size, bk.start, bk.start+bk.size)
		ylk := y.Slice(bl.start, bl.start+bl.size, bk.start, bk.start+bk.size)
		c.Reset()
		c.Mul(tlk.T(), ylk)
		r.Add(r, &c)
		r.Add(r, c.T())
	}

	return r
}

// solveCoupling solves the Sylvester-type coupling equation
//
//	T_iiᵀ·W + W·T_kk = −G
//
// for the p×s unknown W (p, s ∈ {1,2}) by a direct linear solve over the
// combined unknowns: stacking W by columns turns the equation into
// (I_s ⊗ T_iiᵀ + T_kkᵀ ⊗ I_p)·vec(W) = vec(−G), a system of at most 4
// equations. The eigenvalue check guarantees the system matrix is
// nonsingular; a failed solve can only mean a pivot slipped below
// working precision, which is the same root cause.
func solveCoupling(t *mat.Dense, bi, bk block, g *mat.Dense) (*mat.Dense, error) {
	p, s := bi.size, bk.size
	tii := t.Slice(bi.start, bi.start+p, bi.start, bi.start+p)
	tkk := t.Slice(bk.start, bk.start+s, bk.start, bk.start+s)

	m := p * s
	sys := mat.NewDense(m, m, nil)
	// I_s ⊗ T_iiᵀ: s diagonal copies of T_iiᵀ.
	for c := 0; c < s; c++ {
		for r1 := 0; r1 < p; r1++ {
			for r2 := 0; r2 < p; r2++ {
				sys.Set(c*p+r1, c*p+r2, tii.At(r2, r1))
			}
		}
	}
	// + T_kkᵀ ⊗ I_p.
	for c1 := 0; c1 < s; c1++ {
		for c2 := 0; c2 < s; c2++ {
			v := tkk.At(c2, c1)
			for r := 0; r < p; r++ {
				sys.Set(c1*p+r, c2*p+r, sys.At(c1*p+r, c2*p+r)+v)
			}
		}
	}

	rhs := mat.NewVecDense(m, nil)
	for c := 0; c < s; c++ {
		for r := 0; r < p; r++ {
			rhs.SetVec(c*p+r, -g.At(r, c))
		}
	}

	var w mat.VecDense
	if err := w.SolveVec(sys, rhs); err != nil {
		return nil, ErrSingularSystem
	}

	res := mat.NewDense(p, s, nil)
	for c := 0; c < s; c++ {
		for r := 0; r < p; r++ {
			res.Set(r, c, w.AtVec(c*p+r))
		}
	}

	return res, nil
}

// solve1By1 is the scalar closed form: a·y + y·a = −q ⇒ y = −q/(2a).
// The caller guarantees a ≠ 0 (enforced by the spectrum check).
func solve1By1(a, q float64) float64 {
	return -q / (2 * a)
}

// solve2By2 solves the 2×2 continuous Lyapunov equation AᵀX + XA = −Q
// for the symmetric X = [x₁₁ x₂₁; x₂₁ x₂₂] in closed form.
//
// Symmetry leaves three independent scalar equations (the (0,1) equation
// duplicates the (1,0) one), giving the 3×3 system
//
//	⎡2a₁₁     2a₂₁      0   ⎤ ⎡x₁₁⎤   ⎡−q₁₁⎤
//	⎢ a₁₂   a₁₁+a₂₂    a₂₁  ⎥ ⎢x₂₁⎥ = ⎢−q₂₁⎥
//	⎣  0      2a₁₂     2a₂₂ ⎦ ⎣x₂₂⎦   ⎣−q₂₂⎦
//
// solved here by Cramer's rule. Only q(0,0), q(1,0) and q(1,1) are read:
// the mirrored upper-triangular entry q(0,1) is never touched, so callers
// may leave it unset.
func solve2By2(a, q mat.Matrix) *mat.Dense {
	a11, a12 := a.At(0, 0), a.At(0, 1)
	a21, a22 := a.At(1, 0), a.At(1, 1)
	q11, q21, q22 := q.At(0, 0), q.At(1, 0), q.At(1, 1)

	tr := a11 + a22
	// det = 4·tr(A)·det(A) = 2λ₁·(λ₁+λ₂)·2λ₂ — the product of all
	// eigenvalue pair sums, nonzero by the spectrum check.
	det := 4 * tr * (a11*a22 - a12*a21)
	// Cramer numerators: each column of the system replaced by the RHS.
	d1 := -q11*(2*a22*tr-2*a12*a21) + 4*a21*a22*q21 - 2*a21*a21*q22
	d2 := 2*a12*a22*q11 - 4*a11*a22*q21 + 2*a11*a21*q22
	d3 := -2*a12*a12*q11 + 4*a11*a12*q21 + (2*a12*a21-2*a11*tr)*q22

	x11 := d1 / det
	x21 := d2 / det
	x22 := d3 / det

	return mat.NewDense(2, 2, []float64{x11, x21, x21, x22})
}

// setBlock writes the p×s matrix w into y at (row, col).
func setBlock(y *mat.Dense, row, col int, w mat.Matrix) {
	p, s := w.Dims()
	for r := 0; r < p; r++ {
		for c := 0; c < s; c++ {
			y.Set(row+r, col+c, w.At(r, c))
		}
	}
}

// setBlockTransposed writes wᵀ into y at (row, col).
func setBlockTransposed(y *mat.Dense, row, col int, w mat.Matrix) {
	p, s := w.Dims()
	for r := 0; r < p; r++ {
		for c := 0; c < s; c++ {
			y.Set(row+c, col+r, w.At(r, c))
		}
	}
}

// symmetrize enforces x ← (x + xᵀ)/2 in place, making the result exactly
// symmetric regardless of rounding in the reconstruction products.
func symmetrize(x *mat.Dense) {
	n, _ := x.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := (x.At(i, j) + x.At(j, i)) / 2
			x.Set(i, j, v)
			x.Set(j, i, v)
		}
	}
}
