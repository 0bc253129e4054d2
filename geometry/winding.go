package geometry

// CertifyWinding returns t with the requested orientation, swapping the
// second and third vertices when the current orientation disagrees. The
// transform is idempotent for a fixed target orientation.
func CertifyWinding(t Triangle, clockwise bool) Triangle {
	if IsTriangleClockwise(t) != clockwise {
		t.B, t.C = t.C, t.B
	}
	return t
}

// CertifyWindingAll applies CertifyWinding to every triangle in place.
func CertifyWindingAll(triangles []Triangle, clockwise bool) {
	for i, t := range triangles {
		triangles[i] = CertifyWinding(t, clockwise)
	}
}
