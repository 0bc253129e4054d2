package geometry

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/polyfold/earclip/dbg"
)

// Point is a 2D point. Points are plain values; the predicates compare
// coordinates exactly, so callers should not round-trip them through any
// lossy representation between calls. Tolerance-based comparison is used
// only when deduplicating 3D mesh vertices (see ApproximatelyEqual).
type Point struct {
	X, Y float64
}

// Point3 is a 3D mesh vertex.
type Point3 struct {
	X, Y, Z float64
}

// Path is an ordered vertex sequence interpreted as a closed polygon. The
// last point implicitly connects back to the first.
type Path []Point

type Segment struct {
	A, B Point
}

func (s Segment) Midpoint() Point {
	return Point{(s.A.X + s.B.X) / 2, (s.A.Y + s.B.Y) / 2}
}

// Reverse returns a copy of the path with the vertex order flipped,
// which flips the polygon's winding direction.
func (path Path) Reverse() Path {
	reversed := make(Path, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		reversed = append(reversed, path[i])
	}
	return reversed
}

// Triangle is an ordered vertex triple. The order encodes winding; any
// cyclic permutation is the same geometric triangle.
type Triangle struct {
	A, B, C Point
}

func (t Triangle) Points() []Point {
	return []Point{t.A, t.B, t.C}
}

// SignedArea is positive for counterclockwise triangles and negative for
// clockwise ones, in a standard cartesian frame.
func (t Triangle) SignedArea() float64 {
	return ((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)) / 2
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle %s (%.4g, %.4g) (%.4g, %.4g) (%.4g, %.4g)",
		t.DbgName(), t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y)
}

func (t Triangle) DbgName() string {
	// Color by orientation, with degenerate triangles called out in red
	name := dbg.Name(t)
	area := t.SignedArea()
	switch {
	case Equal(area, 0):
		name = aurora.Red(name).String()
	case area > 0:
		name = aurora.Green(name).String()
	default:
		name = aurora.Cyan(name).String()
	}
	return name
}
