package geometry

import "github.com/pkg/errors"

// Threading errors up and down the recursive triangulation would add a
// ton of complexity to the code. Instead, we use panics, and the public
// API recovers to convert to an error.

type GeometryError error

// Sentinel causes for recovered errors, matchable with errors.Is.
var (
	// ErrInvalidInput means the caller passed geometry the operation
	// cannot be applied to, such as a polygon with fewer than 3 vertices.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRetriesExhausted means triangulation cycled through every
	// rotation of the path without finding a valid diagonal. This usually
	// indicates degenerate or self-intersecting input, which is
	// unsupported.
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// Panic with a GeometryError wrapping the given sentinel.
func fatalf(sentinel error, format string, args ...interface{}) {
	panic(GeometryError(errors.Wrapf(sentinel, format, args...)))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
