package advanced

type Point struct {
	X float64
	Y float64
}

// Points, triangles and halfedges all refer to each other by int32 index into
// shared arrays. Halfedges 3t, 3t+1 and 3t+2 belong to triangle t, so int32
// comfortably addresses the 3*(2n-5) halfedges a triangulation of n points
// can produce; Triangulate rejects inputs past that limit up front.
//
// Empty is the one reserved index. A halfedge whose twin is Empty lies on the
// outer boundary; a hull point whose next link is Empty has been enclosed by
// later triangles and is no longer part of the advancing hull.
const Empty int32 = -1

// Triangulation is the result of a Delaunay triangulation.
type Triangulation struct {
	// Point indices, where each consecutive triple is one triangle, wound
	// counterclockwise.
	Triangles []int32

	// Halfedge adjacency, parallel to Triangles. The i-th halfedge leaves
	// vertex Triangles[i]; Halfedges[i] is the index of its twin in the
	// adjacent triangle, or Empty on the outer boundary.
	Halfedges []int32

	// Point indices of the convex hull, in counterclockwise order.
	Hull []int32
}

// Len is the number of triangles in the triangulation.
func (t *Triangulation) Len() int {
	return len(t.Triangles) / 3
}

// NextHalfedge gives the next halfedge within the same triangle.
func NextHalfedge(i int32) int32 {
	if i%3 == 2 {
		return i - 2
	}
	return i + 1
}

// PrevHalfedge gives the previous halfedge within the same triangle.
func PrevHalfedge(i int32) int32 {
	if i%3 == 0 {
		return i + 2
	}
	return i - 1
}
