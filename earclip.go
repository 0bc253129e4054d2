// Package earclip decomposes simple (non-self-intersecting) 2D polygons
// into triangles and assembles the triangles into deduplicated
// vertex/index buffers suitable for rendering.
//
// The triangulator is a recursive ear-cutting procedure that retries from
// rotated starting vertices when it cannot cut an ear, so its worst case
// is cubic in the vertex count. It is an offline "baking" tool: run it
// once when geometry changes, not every frame. Polygons with holes,
// self-intersections, or 3D surfaces are not supported.
//
// The geometry package underneath exposes the raw predicates and the
// panicking variants of these entry points for callers that want to
// manage recovery themselves.
package earclip

import (
	"log/slog"

	"github.com/polyfold/earclip/geometry"
)

type Point = geometry.Point
type Point3 = geometry.Point3
type Path = geometry.Path
type Segment = geometry.Segment
type Triangle = geometry.Triangle
type Mesh = geometry.Mesh

// Sentinel causes for returned errors, matchable with errors.Is.
var (
	ErrInvalidInput     = geometry.ErrInvalidInput
	ErrRetriesExhausted = geometry.ErrRetriesExhausted
)

// Triangulate converts a closed polygon path into a list of triangles
// whose vertices are all members of the path. Triangle winding is
// unspecified; pass the result through AddTrianglesToMesh (or
// geometry.CertifyWindingAll) when orientation matters.
//
// Paths with fewer than 3 vertices fail with ErrInvalidInput. Degenerate
// or self-intersecting input fails with ErrRetriesExhausted once every
// rotation of the path has been tried.
func Triangulate(points []Point) (result []Triangle, err error) {
	defer func() {
		if recoveredErr := geometry.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return geometry.Triangulate(Path(points)), nil
}

// AddTrianglesToMesh normalizes each triangle to the requested winding
// and appends it to the mesh's vertex/index buffers at the given depth.
// Vertices approximately equal to an existing one share its buffer slot.
// The same mesh can accumulate triangles across repeated calls.
func AddTrianglesToMesh(mesh *Mesh, triangles []Triangle, depth float64, clockwise bool) (err error) {
	defer func() {
		if recoveredErr := geometry.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	mesh.AddTriangles(triangles, depth, clockwise)
	return nil
}

// TriangulateIntoMesh is the common caller path: triangulate and append
// the result to the mesh in one step. On error the mesh is unchanged.
func TriangulateIntoMesh(mesh *Mesh, points []Point, depth float64, clockwise bool) (err error) {
	defer func() {
		if recoveredErr := geometry.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	triangles := geometry.Triangulate(Path(points))
	mesh.AddTriangles(triangles, depth, clockwise)
	return nil
}

// Independent geometric queries, for callers that need containment or
// intersection tests without a full triangulation.

// PointInPolygon reports whether p is inside the polygon by even-odd ray
// casting.
func PointInPolygon(polygon []Point, p Point) (inside bool, err error) {
	defer func() {
		if recoveredErr := geometry.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return geometry.PointInPolygon(Path(polygon), p), nil
}

// SegmentsIntersect reports whether segments [p1,p2] and [p3,p4] cross,
// and where. Parallel segments never intersect, and endpoint touches only
// count when allowOnLine is true.
func SegmentsIntersect(p1, p2, p3, p4 Point, allowOnLine bool) (Point, bool) {
	return geometry.SegmentsIntersect(p1, p2, p3, p4, allowOnLine)
}

// IsPolygonClockwise reports the polygon's winding direction. A
// degenerate zero-area polygon classifies as clockwise.
func IsPolygonClockwise(polygon []Point) (clockwise bool, err error) {
	defer func() {
		if recoveredErr := geometry.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return geometry.IsPolygonClockwise(Path(polygon)), nil
}

// SetLogger configures logging for earclip and its subpackages. By
// default nothing is logged; pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	geometry.SetLogger(l)
}
