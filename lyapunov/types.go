// Package lyapunov: internal domain types for the block back-substitution
// solver. The block partition mirrors the diagonal structure of the real
// Schur form: a sequence of contiguous 1×1 blocks (real eigenvalues) and
// 2×2 blocks (complex-conjugate eigenvalue pairs).
package lyapunov

import "gonum.org/v1/gonum/mat"

// block describes one diagonal block of the quasi-upper-triangular Schur
// factor T: its starting row/column and its size (1 or 2).
//
//   - size 1 — a real eigenvalue of A.
//   - size 2 — a complex-conjugate eigenvalue pair; Dgees standardizes the
//     block to the form [a b; c a] with b·c < 0.
type block struct {
	start int // first row/column of the block in T
	size  int // 1 or 2
}

// partition scans the first subdiagonal of T and returns its ordered
// diagonal block sequence. A nonzero entry at T[k+1,k] marks a 2×2 block.
// Complexity: O(n).
func partition(t *mat.Dense) []block {
	n, _ := t.Dims()
	blocks := make([]block, 0, n)
	for k := 0; k < n; {
		if k+1 < n && t.At(k+1, k) != 0 {
			blocks = append(blocks, block{start: k, size: 2})
			k += 2

			continue
		}
		blocks = append(blocks, block{start: k, size: 1})
		k++
	}

	return blocks
}
