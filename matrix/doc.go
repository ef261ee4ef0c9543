// Package matrix provides the dense linear-algebra layer used by the LP engines.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return errors instead of panicking.
//   - Constructors and block builders (NewZeros, NewIdentity, NewDiag,
//     HStack, VStack, Blocks, SelectCols) for assembling KKT systems and
//     simplex bases.
//   - Kernels: Add, Sub, Scale, Mul, Transpose, MatVec, MatTVec, WeightedGram.
//   - Solve for square systems (LU with partial pivoting) and Rank, both
//     backed by gonum.org/v1/gonum/mat.
//   - Slice helpers for vectors (Dot, Norm2, NormInf, AddScaled, MaxStep, …)
//     backed by gonum.org/v1/gonum/floats.
//
// Contract for callers: Solve fails with ErrSingular when the system is
// numerically singular. Callers must not retry the same system unmodified.
// No caller may rely on the factorization used behind Solve.
//
// Matrices here are small and dense (tens of rows); no sparsity is exploited.
package matrix
