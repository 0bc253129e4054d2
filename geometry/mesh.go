package geometry

// Mesh accumulates a deduplicated vertex buffer and a parallel index
// buffer. Three consecutive indices form one renderable face. The same
// Mesh may be passed to repeated AddTriangles calls to grow one mesh out
// of several triangulations.
//
// Methods mutate the buffers without synchronization; concurrent writers
// sharing a Mesh must be serialized externally.
type Mesh struct {
	Vertices []Point3
	Indices  []int
}

// AddVertex appends an index referencing v, reusing an existing vertex
// slot when one is approximately equal. The linear scan makes n
// insertions O(n^2), which is fine at the offline-baked mesh sizes this
// is for. Returns the index used.
func (m *Mesh) AddVertex(v Point3) int {
	for i, existing := range m.Vertices {
		if ApproximatelyEqual(existing, v) {
			m.Indices = append(m.Indices, i)
			return i
		}
	}
	m.Vertices = append(m.Vertices, v)
	i := len(m.Vertices) - 1
	m.Indices = append(m.Indices, i)
	return i
}

// AddTriangle certifies the triangle's winding against the requested
// orientation and adds its vertices in a, b, c order, with depth as the
// fixed z coordinate.
func (m *Mesh) AddTriangle(t Triangle, depth float64, clockwise bool) {
	t = CertifyWinding(t, clockwise)
	m.AddVertex(Point3{t.A.X, t.A.Y, depth})
	m.AddVertex(Point3{t.B.X, t.B.Y, depth})
	m.AddVertex(Point3{t.C.X, t.C.Y, depth})
}

// AddTriangles adds every triangle in list order.
func (m *Mesh) AddTriangles(triangles []Triangle, depth float64, clockwise bool) {
	for _, t := range triangles {
		m.AddTriangle(t, depth, clockwise)
	}
}
