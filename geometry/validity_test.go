package geometry

// This contains no actual tests. It is just a helper for checking that a
// triangulation is valid. The rules are:
// 1. There are exactly n-2 triangles for an n vertex polygon.
// 2. Every triangle vertex is a member of the original path (the ear cut
//    introduces no new points).
// 3. No triangle has (tolerance) zero area.
// 4. The triangle areas sum to the polygon area.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func AssertValidTriangulation(t *testing.T, path Path, triangles []Triangle) {
	require.Len(t, triangles, len(path)-2)

	pathPoints := make(map[Point]struct{}, len(path))
	for _, p := range path {
		pathPoints[p] = struct{}{}
	}

	var areaSum float64
	for _, tri := range triangles {
		for _, p := range tri.Points() {
			_, ok := pathPoints[p]
			require.True(t, ok, "triangle vertex %v is not a polygon vertex", p)
		}
		area := math.Abs(tri.SignedArea())
		require.Greater(t, area, 0.0, "degenerate triangle: %s", tri)
		areaSum += area
	}

	require.InDelta(t, pathArea(path), areaSum, Epsilon,
		"triangle areas must sum to the polygon area")
}

// Shoelace area of the polygon, unsigned.
func pathArea(path Path) float64 {
	var sum float64
	for i, vertex := range path {
		next := path[CircularIndex(i+1, len(path))]
		sum += vertex.X*next.Y - next.X*vertex.Y
	}
	return math.Abs(sum) / 2
}
