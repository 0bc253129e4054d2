package geometry

import "math"

const Epsilon = 1e-6

// To compensate for imprecision in floats, mesh vertex deduplication is
// tolerance based. Note that the geometric predicates deliberately do NOT
// use this: the winding tie rule and the intersection determinant check
// are exact comparisons, and triangulation behavior depends on them.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// ApproximatelyEqual reports whether two mesh vertices are close enough to
// share a buffer slot.
func ApproximatelyEqual(a, b Point3) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y) && Equal(a.Z, b.Z)
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it
// only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
