package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Validate checks the structural invariants of a triangulation against the
// points it was built from: index ranges, twin symmetry, triangle winding,
// the Delaunay condition on every internal edge, and hull consistency. The
// tests lean on this, but it is also useful as a sanity check when debugging
// caller-side traversal code.
func (t *Triangulation) Validate(points []Point) error {
	n := int32(len(points))

	if len(t.Triangles) == 0 || len(t.Triangles)%3 != 0 {
		return errors.Errorf("triangle array length %d is not a positive multiple of 3", len(t.Triangles))
	}
	if len(t.Halfedges) != len(t.Triangles) {
		return errors.Errorf("halfedge array length %d does not match triangle array length %d",
			len(t.Halfedges), len(t.Triangles))
	}

	for i, p := range t.Triangles {
		if p < 0 || p >= n {
			return errors.Errorf("triangles[%d] = %d is not a valid point index", i, p)
		}
	}

	// Twin symmetry.
	for i, twin := range t.Halfedges {
		if twin == Empty {
			continue
		}
		if twin < 0 || int(twin) >= len(t.Halfedges) {
			return errors.Errorf("halfedges[%d] = %d is not a valid halfedge index", i, twin)
		}
		if t.Halfedges[twin] != int32(i) {
			return errors.Errorf("halfedge %d and its twin %d are not symmetric", i, twin)
		}
	}

	// Winding: no triangle may be clockwise.
	for i := 0; i < len(t.Triangles); i += 3 {
		a := points[t.Triangles[i]]
		b := points[t.Triangles[i+1]]
		c := points[t.Triangles[i+2]]
		if a.orient(b, c) {
			return errors.Errorf("triangle %d is wound clockwise", i/3)
		}
	}

	// Delaunay condition: for every internal edge, the far point of the
	// adjacent triangle must not be strictly inside this triangle's
	// circumcircle.
	for a := int32(0); int(a) < len(t.Halfedges); a++ {
		b := t.Halfedges[a]
		if b == Empty || b < a {
			continue
		}
		p0 := points[t.Triangles[PrevHalfedge(a)]]
		pr := points[t.Triangles[a]]
		pl := points[t.Triangles[NextHalfedge(a)]]
		p1 := points[t.Triangles[PrevHalfedge(b)]]
		if p0.inCircle(pr, pl, p1) {
			return errors.Errorf("halfedge %d violates the Delaunay condition", a)
		}
	}

	// Hull: CCW cycle, no duplicate points, one boundary halfedge per hull
	// point.
	if len(t.Hull) < 3 {
		return errors.Errorf("hull has only %d points", len(t.Hull))
	}
	seen := make(map[int32]bool, len(t.Hull))
	for i, p := range t.Hull {
		if p < 0 || p >= n {
			return errors.Errorf("hull[%d] = %d is not a valid point index", i, p)
		}
		if seen[p] {
			return errors.Errorf("hull contains point %d twice", p)
		}
		seen[p] = true

		q := t.Hull[(i+1)%len(t.Hull)]
		r := t.Hull[(i+2)%len(t.Hull)]
		if points[p].orient(points[q], points[r]) {
			return errors.Errorf("hull turns clockwise at point %d", q)
		}
	}
	boundary := 0
	for _, twin := range t.Halfedges {
		if twin == Empty {
			boundary++
		}
	}
	if boundary != len(t.Hull) {
		return errors.Errorf("hull has %d points but there are %d boundary halfedges",
			len(t.Hull), boundary)
	}

	// The triangles must exactly tile the hull polygon: the sum of triangle
	// areas has to match the hull polygon's area.
	var hullArea, triArea float64
	for i := 1; i < len(t.Hull)-1; i++ {
		hullArea += area2(points[t.Hull[0]], points[t.Hull[i]], points[t.Hull[i+1]])
	}
	for i := 0; i < len(t.Triangles); i += 3 {
		triArea += area2(points[t.Triangles[i]], points[t.Triangles[i+1]], points[t.Triangles[i+2]])
	}
	if diff := math.Abs(triArea - hullArea); diff > 1e-9*math.Max(math.Abs(triArea), math.Abs(hullArea)) {
		return errors.Errorf("triangle area sum %v does not match hull area %v", triArea, hullArea)
	}

	return nil
}

// Twice the signed area of (p, q, r), positive for the winding convention the
// triangulation uses.
func area2(p, q, r Point) float64 {
	return (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
}
