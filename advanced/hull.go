package advanced

import "math"

// hull tracks the edges of the advancing convex hull during construction. The
// boundary is a circular doubly-linked list over point ids, with an angular
// hash table that turns "which hull edge can see this point" into an O(1)
// guess plus a short walk.
type hull struct {
	// Maps hull point id to the previous hull point id.
	prev []int32

	// Maps hull point id to the next hull point id. Empty here means the
	// point has been enclosed and is no longer on the hull.
	next []int32

	// Maps hull point id to its outgoing boundary halfedge id, used to
	// attach new triangles.
	out []int32

	// Angular hash: pseudo-angle bucket to the most recently hashed hull
	// point in that bucket. Only ever a starting guess for hull walks,
	// never load-bearing for correctness.
	hash []int32

	// Any point currently on the hull.
	start int32

	// Fixed reference center for the angular hash, the circumcenter of the
	// seed triangle.
	center Point
}

func newHull(n int, center Point, i0, i1, i2 int32, points []Point) *hull {
	hashLen := int(math.Sqrt(float64(n)))

	h := &hull{
		prev:   make([]int32, n),
		next:   make([]int32, n),
		out:    make([]int32, n),
		hash:   make([]int32, hashLen),
		start:  i0,
		center: center,
	}
	for i := range h.hash {
		h.hash[i] = Empty
	}

	h.next[i0], h.prev[i0] = i1, i2
	h.next[i1], h.prev[i1] = i2, i0
	h.next[i2], h.prev[i2] = i0, i1

	h.out[i0] = 0
	h.out[i1] = 1
	h.out[i2] = 2

	h.hashEdge(points[i0], i0)
	h.hashEdge(points[i1], i1)
	h.hashEdge(points[i2], i2)

	return h
}

// Buckets the direction from the hash center to p. The pseudo-angle is a
// monotonic function of the true angle, which is all the hash needs: points
// close in angle land in close buckets. No trig involved.
func (h *hull) hashKey(p Point) int {
	dx := p.X - h.center.X
	dy := p.Y - h.center.Y

	d := math.Abs(dx) + math.Abs(dy)
	if d == 0 {
		return 0
	}
	pseudo := dx / d
	var a float64 // [0..1]
	if dy > 0 {
		a = (3 - pseudo) / 4
	} else {
		a = (1 + pseudo) / 4
	}

	n := len(h.hash)
	return int(math.Floor(float64(n)*a)) % n
}

func (h *hull) hashEdge(p Point, i int32) {
	h.hash[h.hashKey(p)] = i
}

// Finds a hull edge visible from p, identified by its originating point id.
// Starts from the hashed bucket, probes forward for the first live hull
// point, then walks the hull until an edge faces p. Returns Empty if no edge
// is visible (p is coincident with or inside the current hull, typically an
// undetected duplicate). The second return reports whether the walk started
// from its own beginning, in which case the caller must also walk backward
// when fanning.
func (h *hull) findVisibleEdge(p Point, points []Point) (int32, bool) {
	var start int32
	key := h.hashKey(p)
	n := len(h.hash)
	for j := 0; j < n; j++ {
		start = h.hash[(key+j)%n]
		if start != Empty && h.next[start] != Empty {
			break
		}
	}
	start = h.prev[start]
	e := start

	for !p.orient(points[e], points[h.next[e]]) {
		e = h.next[e]
		if e == start {
			return Empty, false
		}
	}
	return e, e == start
}

// Marks a hull point as enclosed. Walks skip it from now on because its next
// link is the Empty sentinel.
func (h *hull) remove(i int32) {
	h.next[i] = Empty
}

// Replaces a stale out reference after a legalize flip crossed a boundary
// edge. This rewalks the whole hull, but boundary-crossing flips are rare.
func (h *hull) fixHalfedge(oldID, newID int32) {
	e := h.start
	for {
		if h.out[e] == oldID {
			h.out[e] = newID
			break
		}
		e = h.next[e]
		if e == h.start {
			break
		}
	}
}
