package advanced

// mesh is the growing triangle / halfedge arena. Triangles only ever get
// appended; legalize rewires existing entries in place.
type mesh struct {
	triangles []int32
	halfedges []int32

	// Worklist for legalize, reused across calls.
	stack []int32
}

func newMesh(maxTriangles int) *mesh {
	return &mesh{
		triangles: make([]int32, 0, maxTriangles*3),
		halfedges: make([]int32, 0, maxTriangles*3),
	}
}

func (m *mesh) setTwin(halfedgeID, twinID int32) {
	if halfedgeID != Empty {
		m.halfedges[halfedgeID] = twinID
	}
}

// Appends a triangle over points (i0, i1, i2), twinning its three halfedges
// against a, b and c (possibly Empty). Returns the id of the first new
// halfedge; the other two follow it.
func (m *mesh) addTriangle(i0, i1, i2, a, b, c int32) int32 {
	t := int32(len(m.triangles))

	m.triangles = append(m.triangles, i0, i1, i2)
	m.halfedges = append(m.halfedges, a, b, c)

	m.setTwin(a, t)
	m.setTwin(b, t+1)
	m.setTwin(c, t+2)
	return t
}

// If the pair of triangles sharing halfedge a doesn't satisfy the Delaunay
// condition (p1 is inside the circumcircle of [p0, pl, pr]), flip them, then
// repeat the check for the two pairs the flip may have broken, until every
// edge in the affected region is legal.
//
//	          pl                    pl
//	         /||\                  /  \
//	      al/ || \bl            al/    \a
//	       /  ||  \              /      \
//	      /  a||b  \    flip    /___ar___\
//	    p0\   ||   /p1   =>   p0\---bl---/p1
//	       \  ||  /              \      /
//	      ar\ || /br             b\    /br
//	         \||/                  \  /
//	          pr                    pr
//
// The repair is driven by an explicit worklist rather than recursion, so the
// stack depth stays bounded no matter how far a flip cascades. Returns a
// halfedge originating from the newly inserted point on the hull boundary,
// which the caller records as that point's outgoing hull edge.
func (m *mesh) legalize(a int32, points []Point, h *hull) int32 {
	stack := m.stack[:0]
	var ar int32

	for {
		b := m.halfedges[a]
		ar = PrevHalfedge(a)

		if b == Empty {
			// Boundary edge, nothing to flip.
			if len(stack) == 0 {
				break
			}
			a = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		al := NextHalfedge(a)
		bl := PrevHalfedge(b)

		p0 := m.triangles[ar]
		pr := m.triangles[a]
		pl := m.triangles[al]
		p1 := m.triangles[bl]

		illegal := points[p0].inCircle(points[pr], points[pl], points[p1])
		if !illegal {
			if len(stack) == 0 {
				break
			}
			a = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		m.triangles[a] = p1
		m.triangles[b] = p0

		hbl := m.halfedges[bl]
		har := m.halfedges[ar]

		// The flipped edge swapped sides across the hull boundary
		// (rare); the hull's out reference for bl's origin is now
		// stale and must be rewired to a.
		if hbl == Empty {
			h.fixHalfedge(bl, a)
		}

		m.setTwin(a, hbl)
		m.setTwin(b, har)
		m.setTwin(ar, bl)

		m.setTwin(hbl, a)
		m.setTwin(har, b)
		m.setTwin(bl, ar)

		// Recheck a with its new twin, then the far edge of b's
		// triangle.
		stack = append(stack, NextHalfedge(b))
	}

	m.stack = stack[:0]
	return ar
}
