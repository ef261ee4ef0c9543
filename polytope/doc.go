// Package polytope converts a convex polytope given as half-spaces into the
// (A, b, c) triple every LP engine consumes:
//
//	maximize cᵀx  subject to  A·x ≤ b
//
// A 2-D polygon arrives as an ordered list of Inequality{A, B, C} lines
// (A·x + B·y ≤ C); n-dimensional problems are built with New. Problems can
// also be decoded from YAML (or JSON) documents.
//
// Besides the conversion the package offers the geometric helpers the
// engines and tests need: residuals, feasibility checks, vertex
// enumeration and the vertex centroid (an interior starting point for the
// central path). Nothing here iterates; every function is pure.
package polytope
