package advanced

import "math"

// Seed selection. The first triangle wants to be small and central, so that
// the radial insertion order stays close to breadth-first and the hull hash
// stays useful: we take the point nearest the bounding box center, its
// nearest neighbor, and whichever third point gives the smallest
// circumcircle.

func calcBBoxCenter(points []Point) Point {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Point{(minX + maxX) / 2, (minY + maxY) / 2}
}

// Index of the point strictly closest to p0, excluding points coincident with
// it. Returns false if there is no such point.
func findClosestPoint(points []Point, p0 Point) (int32, bool) {
	minDist := math.Inf(1)
	var k int32
	for i, p := range points {
		d := p0.dist2(p)
		if d > 0 && d < minDist {
			k = int32(i)
			minDist = d
		}
	}
	if math.IsInf(minDist, 1) {
		return 0, false
	}
	return k, true
}

// Picks three well-conditioned starting points and fixes their winding so the
// seed triangle is counterclockwise. Returns false when the input is
// degenerate (fewer than three distinct points, or all collinear): collinear
// candidates produce an infinite or NaN circumradius, so the minimum never
// improves and no third point is ever accepted.
func findSeedTriangle(points []Point) (int32, int32, int32, bool) {
	bboxCenter := calcBBoxCenter(points)
	i0, ok := findClosestPoint(points, bboxCenter)
	if !ok {
		return 0, 0, 0, false
	}
	p0 := points[i0]

	i1, ok := findClosestPoint(points, p0)
	if !ok {
		return 0, 0, 0, false
	}
	p1 := points[i1]

	minRadius := math.Inf(1)
	var i2 int32
	for i, p := range points {
		if int32(i) == i0 || int32(i) == i1 {
			continue
		}
		r := p0.circumradius2(p1, p)
		if r < minRadius {
			i2 = int32(i)
			minRadius = r
		}
	}

	if math.IsInf(minRadius, 1) {
		return 0, 0, 0, false
	}
	if p0.orient(p1, points[i2]) {
		return i0, i2, i1, true
	}
	return i0, i1, i2, true
}
