package advanced

import (
	"math"
	"sort"
)

// Triangulate computes the Delaunay triangulation of a set of 2D points. It
// throws ErrNoTriangulation on degenerate input (empty, all coincident, or
// all collinear); callers normally go through the root package, which
// recovers the throw into an error return.
func Triangulate(points []Point) *Triangulation {
	n := len(points)

	i0, i1, i2, ok := findSeedTriangle(points)
	if !ok {
		throw(ErrNoTriangulation)
	}

	// All further insertions happen in order of distance from the seed
	// circumcenter, which is also the fixed reference center of the hull's
	// angular hash.
	center := points[i0].circumcenter(points[i1], points[i2])

	// A triangulation of n points has at most 2n-5 triangles. Degenerate
	// inputs can exceed the estimate, so the arrays still grow by append;
	// what must hold is that every halfedge id fits in an int32.
	if 6*int64(n)-15 > math.MaxInt32 {
		fatalf("too many points to triangulate: %d", n)
	}
	maxTriangles := 2*n - 5

	m := newMesh(maxTriangles)
	m.addTriangle(i0, i1, i2, Empty, Empty, Empty)

	type pointDist struct {
		index int32
		dist  float64
	}
	dists := make([]pointDist, n)
	for i, p := range points {
		dists[i] = pointDist{int32(i), center.dist2(p)}
	}
	sort.Slice(dists, func(a, b int) bool {
		return dists[a].dist < dists[b].dist
	})

	h := newHull(n, center, i0, i1, i2, points)

	for k, entry := range dists {
		i := entry.index
		p := points[i]

		// Skip near-duplicates. This only catches duplicates adjacent
		// in sort order; a coincident pair whose distances from the
		// center differ by rounding can slip through here, but is then
		// caught by the visibility search below.
		if k > 0 && p.nearlyEquals(points[dists[k-1].index]) {
			continue
		}
		// Skip seed triangle points.
		if i == i0 || i == i1 || i == i2 {
			continue
		}

		// Find a hull edge visible from p.
		e, walkBack := h.findVisibleEdge(p, points)
		if e == Empty {
			// Likely a near-duplicate point; skip it.
			continue
		}

		// First triangle of the fan.
		t := m.addTriangle(e, i, h.next[e], Empty, Empty, h.out[e])

		// Flip triangles from the point until they satisfy the
		// Delaunay condition, and keep track of boundary triangles on
		// the hull.
		h.out[i] = m.legalize(t+2, points, h)
		h.out[e] = t

		// Walk forward through the hull, fanning out more triangles
		// while the next edge still faces p. Each consumed hull point
		// is now enclosed and leaves the hull.
		next := h.next[e]
		for {
			q := h.next[next]
			if !p.orient(points[next], points[q]) {
				break
			}
			t := m.addTriangle(next, i, q, h.out[i], Empty, h.out[next])
			h.out[i] = m.legalize(t+2, points, h)
			h.remove(next)
			next = q
		}

		// If the visibility walk started from its own beginning, the
		// fan may also extend on the other side; walk backward too.
		if walkBack {
			for {
				q := h.prev[e]
				if !p.orient(points[q], points[e]) {
					break
				}
				t := m.addTriangle(q, i, e, Empty, h.out[e], h.out[q])
				m.legalize(t+2, points, h)
				h.out[q] = t
				h.remove(e)
				e = q
			}
		}

		// Splice p into the hull between the two fan boundaries.
		h.prev[i], h.next[i] = e, next
		h.prev[next], h.next[e] = i, i
		h.start = e

		// Hash the two new boundary edges.
		h.hashEdge(p, i)
		h.hashEdge(points[e], e)
	}

	// Read the hull boundary off the linked list.
	var hullIndices []int32
	e := h.start
	for {
		hullIndices = append(hullIndices, e)
		e = h.next[e]
		if e == h.start {
			break
		}
	}

	return &Triangulation{
		Triangles: m.triangles,
		Halfedges: m.halfedges,
		Hull:      hullIndices,
	}
}
