package geometry

// Recursive ear cutting by diagonal validity. At every step the candidate
// diagonal connects the second vertex to the last one, which cuts off the
// first vertex as an ear. If the diagonal is not valid, the path is
// rotated and the step retried; once every rotation has been tried the
// input is declared degenerate.
//
// This is neither a minimum-fan nor a Delaunay method: with rotation
// retries the worst case is O(n^3). It is meant for one-time offline
// baking, not for re-triangulating changing geometry every frame.

// Triangulate decomposes a simple closed polygon into triangles. The
// triangles come back in ear-cut order and with no particular winding;
// use CertifyWindingAll (or the mesh assembler, which does it for you)
// when a consistent orientation matters. Panics with a GeometryError on
// paths shorter than 3 vertices and on input where no valid diagonal can
// be found.
func Triangulate(path Path) []Triangle {
	return triangulate(path, 0)
}

func triangulate(path Path, attempt int) []Triangle {
	if len(path) < 3 {
		fatalf(ErrInvalidInput, "cannot triangulate path with %d points", len(path))
	}
	// A 3 vertex path is its own ear. There is no diagonal to validate:
	// the candidate segment would be an actual polygon edge, and testing
	// an on-boundary midpoint against PointInPolygon is at the mercy of
	// rounding in the crossing count.
	if len(path) == 3 {
		return []Triangle{{path[0], path[1], path[2]}}
	}

	diagonal := Segment{path[1], path[len(path)-1]}
	if !diagonalIsValid(path, diagonal) {
		// The attempt counter bounds the recursion on adversarial input:
		// rotating more times than the path has vertices means every
		// starting vertex has been tried.
		if attempt > len(path) {
			fatalf(ErrRetriesExhausted, "no valid diagonal after %d rotations; input is likely degenerate or self-intersecting", attempt)
		}
		return triangulate(RotateClockwise(path), attempt+1)
	}

	ear := Triangle{path[0], path[1], path[len(path)-1]}
	// The shape changed, so the retry budget resets.
	return append([]Triangle{ear}, triangulate(path[1:], 0)...)
}

// A diagonal is valid when its midpoint lies inside the polygon and it
// crosses no polygon edge. Touching an edge at a shared vertex does not
// count as a crossing.
func diagonalIsValid(path Path, diagonal Segment) bool {
	if !PointInPolygon(path, diagonal.Midpoint()) {
		return false
	}
	for i, vertex := range path {
		next := path[CircularIndex(i+1, len(path))]
		if _, ok := SegmentsIntersect(diagonal.A, diagonal.B, vertex, next, false); ok {
			return false
		}
	}
	return true
}
