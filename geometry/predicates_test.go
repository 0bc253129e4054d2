package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() Path {
	return Path{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
}

func TestSegmentsIntersect_Crossing(t *testing.T) {
	p, ok := SegmentsIntersect(Point{0, 0}, Point{4, 4}, Point{0, 4}, Point{4, 0}, true)
	require.True(t, ok)
	assert.Equal(t, Point{2, 2}, p)

	// Same crossing, reported regardless of allowOnLine, since it isn't at
	// an endpoint
	_, ok = SegmentsIntersect(Point{0, 0}, Point{4, 4}, Point{0, 4}, Point{4, 0}, false)
	assert.True(t, ok)
}

func TestSegmentsIntersect_Parallel(t *testing.T) {
	// Parallel segments have a zero determinant and never intersect
	_, ok := SegmentsIntersect(Point{0, 0}, Point{4, 0}, Point{0, 1}, Point{4, 1}, true)
	assert.False(t, ok)

	// Not even when they're collinear and overlapping
	_, ok = SegmentsIntersect(Point{0, 0}, Point{4, 0}, Point{2, 0}, Point{6, 0}, true)
	assert.False(t, ok)
}

func TestSegmentsIntersect_Disjoint(t *testing.T) {
	_, ok := SegmentsIntersect(Point{0, 0}, Point{1, 1}, Point{3, 0}, Point{3, 4}, true)
	assert.False(t, ok)
}

func TestSegmentsIntersect_EndpointTouch(t *testing.T) {
	// The second segment starts exactly on the first segment's endpoint
	_, ok := SegmentsIntersect(Point{0, 0}, Point{2, 2}, Point{2, 2}, Point{4, 0}, true)
	assert.True(t, ok)

	// With allowOnLine false, a touch at an endpoint is not a crossing
	_, ok = SegmentsIntersect(Point{0, 0}, Point{2, 2}, Point{2, 2}, Point{4, 0}, false)
	assert.False(t, ok)

	// Also rejected when only one parametric coordinate is at an endpoint
	_, ok = SegmentsIntersect(Point{0, 0}, Point{4, 4}, Point{2, 2}, Point{4, 0}, false)
	assert.False(t, ok)
}

func TestPointInPolygon(t *testing.T) {
	assert.True(t, PointInPolygon(square(), Point{2, 2}))
	assert.False(t, PointInPolygon(square(), Point{5, 5}))
	assert.False(t, PointInPolygon(square(), Point{-1, 2}))
}

func TestPointInPolygon_Concave(t *testing.T) {
	star := SimpleStar(5)
	assert.True(t, PointInPolygon(star, Point{0, 0}))
	// A point between two star tips is outside even though it's within the
	// bounding box
	tipGap := Point{
		(star[0].X + star[2].X) / 2 * 1.2,
		(star[0].Y + star[2].Y) / 2 * 1.2,
	}
	assert.False(t, PointInPolygon(star, tipGap))
}

func TestBoundingBox(t *testing.T) {
	minX, minY, maxX, maxY := BoundingBox(Path{{1, 7}, {-2, 3}, {5, -1}})
	assert.Equal(t, -2.0, minX)
	assert.Equal(t, -1.0, minY)
	assert.Equal(t, 5.0, maxX)
	assert.Equal(t, 7.0, maxY)
}

func TestBoundingBox_Empty(t *testing.T) {
	err := recoverGeometryError(func() {
		BoundingBox(Path{})
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsPolygonClockwise(t *testing.T) {
	// The square fixture is counterclockwise in a standard cartesian frame
	assert.False(t, IsPolygonClockwise(square()))
	assert.True(t, IsPolygonClockwise(square().Reverse()))
}

func TestIsPolygonClockwise_TooShort(t *testing.T) {
	err := recoverGeometryError(func() {
		IsPolygonClockwise(Path{{0, 0}, {1, 1}})
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsTriangleClockwise(t *testing.T) {
	ccw := Triangle{Point{0, 0}, Point{4, 0}, Point{2, 3}}
	assert.False(t, IsTriangleClockwise(ccw))
	assert.True(t, IsTriangleClockwise(Triangle{ccw.A, ccw.C, ccw.B}))
}

func TestApproximatelyEqual(t *testing.T) {
	assert.True(t, ApproximatelyEqual(Point3{1, 1, 0}, Point3{1 + 1e-7, 1, 0}))
	assert.False(t, ApproximatelyEqual(Point3{1, 1, 0}, Point3{1 + 1e-5, 1, 0}))
	assert.False(t, ApproximatelyEqual(Point3{1, 1, 0}, Point3{1, 1, 1e-5}))
}

// Run f and convert a geometry panic into the error it carries.
func recoverGeometryError(f func()) (err error) {
	defer func() {
		err = HandlePanicRecover(recover())
	}()
	f()
	return nil
}
