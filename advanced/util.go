package advanced

import "math"

// Near-duplicate points (where both X and Y only differ within this value)
// will not be included in the triangulation, for robustness.
const Epsilon = 2 * 2.220446049250313e-16

func (p Point) dist2(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// True iff the path p -> q -> r turns clockwise. This single test fixes the
// handedness convention for the whole algorithm: hull visibility, fan
// expansion and the seed winding all go through it.
func (p Point) orient(q, r Point) bool {
	return (q.Y-p.Y)*(r.X-q.X)-(q.X-p.X)*(r.Y-q.Y) < 0
}

// Offset of the circumcenter of triangle (p, b, c) from p, from the 2x2 solve
// of the two perpendicular-bisector equations. If the three points are
// collinear the denominator vanishes and the result is infinite or NaN;
// callers detect that by the circumradius never being finite, rather than by
// an error return.
func (p Point) circumdelta(b, c Point) (float64, float64) {
	dx := b.X - p.X
	dy := b.Y - p.Y
	ex := c.X - p.X
	ey := c.Y - p.Y

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := 0.5 / (dx*ey - dy*ex)

	x := (ey*bl - dy*cl) * d
	y := (dx*cl - ex*bl) * d
	return x, y
}

func (p Point) circumradius2(b, c Point) float64 {
	x, y := p.circumdelta(b, c)
	return x*x + y*y
}

func (p Point) circumcenter(b, c Point) Point {
	x, y := p.circumdelta(b, c)
	return Point{p.X + x, p.Y + y}
}

// True iff q lies strictly inside the circumcircle of (p, b, c). Derived for
// the same winding convention as orient; changing one without the other
// silently inverts the flip condition in legalize.
func (p Point) inCircle(b, c, q Point) bool {
	dx := p.X - q.X
	dy := p.Y - q.Y
	ex := b.X - q.X
	ey := b.Y - q.Y
	fx := c.X - q.X
	fy := c.Y - q.Y

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	return dx*(ey*cp-bp*fy)-dy*(ex*cp-bp*fx)+ap*(ex*fy-ey*fx) < 0
}

func (p Point) nearlyEquals(q Point) bool {
	return math.Abs(p.X-q.X) <= Epsilon && math.Abs(p.Y-q.Y) <= Epsilon
}
