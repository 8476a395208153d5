// SPDX-License-Identifier: MIT

// Package lvalgebra is a small linear-algebra kernel over abstract scalars.
//
// Matrices are generic in their entry type: anything satisfying
// scalar.Ring gets arithmetic, transposition, stacking, minors and the
// cofactor determinant; anything satisfying scalar.Field additionally gets
// Gauss-Jordan reduction with a tracked transform, rank, nullity, inverse,
// nullspace and eigen-decomposition.
//
// Layout:
//
//	scalar/        Ring and Field constraints, big-float Real, float64 Complex
//	poly/          polynomials over a ring, Durand–Kerner root finder
//	matrix/        Dense[T], reduction, determinant, nullspace, eigen
//	literal/       {(1 2),(3 4)} matrix literals, parse and format
//	config/        YAML numeric policy and REPL presentation
//	repl/          named-variable command evaluator and read loop
//	cmd/lvalgebra/ command-line front end
//
// Quick start:
//
//	a, _ := literal.Parse("{(1 2 3),(4 5 6),(7 8 9)}", 0)
//	red, _ := matrix.Reduce(a)
//	fmt.Print(red.RREF)       // 1 0 -1 / 0 1 2 / 0 0 0
//	d, _ := matrix.Determinant(a)
//	pairs, _ := matrix.EigenMap(a)
//
// Eigenvalues are complex roots of det(xI − A). The characteristic
// polynomial comes from the same cofactor determinant, run over a matrix of
// polynomials; poly.Poly is itself a scalar.Ring.
package lvalgebra
