package geometry

// RotateClockwise moves the first vertex to the end of the path. The
// cyclic polygon is unchanged; only which vertex is "first" moves. The
// triangulator uses this to retry an ear cut from a different starting
// vertex. An empty path is returned unchanged with a logged warning. A
// single-vertex path still performs the move.
func RotateClockwise(path Path) Path {
	if len(path) == 0 {
		logger().Warn("rotate requested on empty path")
		return path
	}
	rotated := make(Path, 0, len(path))
	rotated = append(rotated, path[1:]...)
	return append(rotated, path[0])
}
