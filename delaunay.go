// A fast 2D Delaunay triangulation package for Go.
//
// This package takes a set of points and produces a triangulation covering
// their convex hull, such that no point lies strictly inside the circumcircle
// of any triangle. The triangulation is built incrementally by growing a
// convex hull outward from a well-conditioned seed triangle, legalizing edges
// as it goes.
package delaunay

import "github.com/osuushi/delaunay/advanced"

type Point = advanced.Point
type Triangulation = advanced.Triangulation

// Empty marks a halfedge with no twin (the outer boundary of the
// triangulation), or a hull point that has been enclosed by later triangles.
const Empty = advanced.Empty

// ErrNoTriangulation is returned when the input admits no triangulation: it is
// empty, or every point is coincident or collinear.
var ErrNoTriangulation = advanced.ErrNoTriangulation

// Triangulate a set of 2D points. Points are identified by their index in the
// input slice; the result's Triangles, Halfedges and Hull arrays all refer
// back to the input by index.
//
// Near-duplicate points (both coordinates within advanced.Epsilon of an
// already-processed point) are dropped from the triangulation for robustness.
// Returns ErrNoTriangulation if the input is degenerate.
func Triangulate(points []Point) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Triangulate(points), nil
}
