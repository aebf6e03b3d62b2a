// Package gostab is a toolkit for stability analysis of linear dynamical
// systems — from the continuous Lyapunov matrix equation to Gramians and
// Hurwitz tests.
//
// 🚀 What is gostab?
//
//	A small, focused library that brings together:
//		• Lyapunov solver: direct Bartels–Stewart solve of AᵀX + XA = −Q
//		• Gramians: controllability & observability Gramians of stable systems
//		• Stability: Hurwitz predicate and spectral abscissa
//
// ✨ Why choose gostab?
//
//   - Exact, direct solvers – no iteration, no tuning, deterministic output
//   - Honest failure modes – sentinel errors for shape, singularity, convergence
//   - Pure Go numerics – dense linear algebra via gonum, no cgo
//   - Safe concurrency – no shared state, every call is independent
//
// Under the hood, everything is organized under three subpackages:
//
//	lyapunov/  — continuous Lyapunov equation solver (the core)
//	gramian/   — controllability & observability Gramians built on lyapunov
//	stability/ — eigenvalue-based stability predicates
//
// Quick sketch:
//
//	ẋ = A·x is asymptotically stable iff for some Q ≻ 0 the equation
//	AᵀX + XA = −Q has a solution X ≻ 0 — which lyapunov.Solve computes.
//
// Dive into each package's doc.go and example_test.go for usage patterns.
//
//	go get github.com/gostab/gostab/lyapunov
package gostab
