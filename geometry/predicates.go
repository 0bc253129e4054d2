package geometry

// Pure geometric predicates. These are usable on their own for callers
// that need point-in-polygon or intersection queries without a full
// triangulation. All of them are O(n) scans with no acceleration
// structure; they are meant for offline baking, not per-frame queries.

// SegmentsIntersect solves the 2x2 linear system for the parametric
// intersection of segments [p1,p2] and [p3,p4]. A zero determinant
// (parallel or collinear segments) reports no intersection, even for
// overlapping collinear segments. When allowOnLine is false,
// intersections exactly at an endpoint are rejected as well, which
// distinguishes a real crossing from two segments touching at a shared
// vertex. The returned point is computed from the parameter along the
// first segment.
func SegmentsIntersect(p1, p2, p3, p4 Point, allowOnLine bool) (Point, bool) {
	det := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if det == 0 {
		return Point{}, false
	}
	u := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / det
	v := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / det
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return Point{}, false
	}
	if !allowOnLine && (u == 0 || u == 1 || v == 0 || v == 1) {
		return Point{}, false
	}
	return Point{p1.X + u*(p2.X-p1.X), p1.Y + u*(p2.Y-p1.Y)}, true
}

// PointInPolygon ray-casts from p to the polygon's bounding-box maximum x
// at the same height and counts edge crossings. An odd count means the
// point is inside (even-odd rule).
func PointInPolygon(poly Path, p Point) bool {
	_, _, maxX, _ := BoundingBox(poly)
	far := Point{maxX, p.Y}
	crossings := 0
	for i, vertex := range poly {
		next := poly[CircularIndex(i+1, len(poly))]
		if _, ok := SegmentsIntersect(p, far, vertex, next, true); ok {
			crossings++
		}
	}
	return crossings%2 == 1
}

func BoundingBox(path Path) (minX, minY, maxX, maxY float64) {
	if len(path) == 0 {
		fatalf(ErrInvalidInput, "cannot compute bounding box of empty path")
	}
	minX, minY = path[0].X, path[0].Y
	maxX, maxY = minX, minY
	for _, p := range path[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}

// IsPolygonClockwise computes the shoelace sum over consecutive edges. A
// sum of exactly zero classifies as clockwise; the tie-break direction is
// load-bearing and must not be "fixed" with a tolerance.
func IsPolygonClockwise(poly Path) bool {
	if len(poly) < 3 {
		fatalf(ErrInvalidInput, "winding requires at least 3 points, got %d", len(poly))
	}
	var sum float64
	for i, vertex := range poly {
		next := poly[CircularIndex(i+1, len(poly))]
		sum += (next.X - vertex.X) * (next.Y + vertex.Y)
	}
	return sum >= 0
}

func IsTriangleClockwise(t Triangle) bool {
	return IsPolygonClockwise(Path{t.A, t.B, t.C})
}
