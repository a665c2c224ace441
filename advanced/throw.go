package advanced

import "github.com/pkg/errors"

// Threading an error return up through the insertion loop and the legalize
// worklist would add noise to every call site for failures that can only
// happen at well-defined points. Instead, we panic with an error, and the
// public API recovers and converts it to an error return.

type TriangulateError error

// ErrNoTriangulation is thrown when the input admits no triangulation: it is
// empty, or every point is coincident or collinear.
var ErrNoTriangulation = errors.New("no triangulation exists")

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with a predefined error value.
func throw(err error) {
	panic(err)
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
