package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDist2(t *testing.T) {
	assert.Equal(t, 0.0, Point{1, 2}.dist2(Point{1, 2}))
	assert.Equal(t, 25.0, Point{0, 0}.dist2(Point{3, 4}))
	assert.Equal(t, 2.0, Point{-1, -1}.dist2(Point{0, 0}))
}

func TestOrient(t *testing.T) {
	p := Point{0, 0}

	t.Run("clockwise turn", func(t *testing.T) {
		assert.True(t, p.orient(Point{1, 0}, Point{0, 1}))
	})

	t.Run("counterclockwise turn", func(t *testing.T) {
		assert.False(t, p.orient(Point{0, 1}, Point{1, 0}))
	})

	t.Run("collinear is not clockwise", func(t *testing.T) {
		assert.False(t, p.orient(Point{1, 0}, Point{2, 0}))
		assert.False(t, p.orient(Point{1, 1}, Point{2, 2}))
	})

	t.Run("antisymmetric", func(t *testing.T) {
		q := Point{3, 1}
		r := Point{-2, 5}
		assert.NotEqual(t, p.orient(q, r), p.orient(r, q))
	})
}

func TestCircumcenter(t *testing.T) {
	t.Run("right triangle", func(t *testing.T) {
		c := Point{0, 0}.circumcenter(Point{1, 0}, Point{0, 1})
		assert.InDelta(t, 0.5, c.X, 1e-12)
		assert.InDelta(t, 0.5, c.Y, 1e-12)
		assert.InDelta(t, 0.5, Point{0, 0}.circumradius2(Point{1, 0}, Point{0, 1}), 1e-12)
	})

	t.Run("translated triangle", func(t *testing.T) {
		c := Point{10, 20}.circumcenter(Point{11, 20}, Point{10, 21})
		assert.InDelta(t, 10.5, c.X, 1e-12)
		assert.InDelta(t, 20.5, c.Y, 1e-12)
	})

	t.Run("equilateral-ish triangle", func(t *testing.T) {
		a := Point{0, 0}
		b := Point{4, 0}
		c := Point{2, 3}
		center := a.circumcenter(b, c)
		// The circumcenter is equidistant from all three vertices.
		assert.InDelta(t, center.dist2(a), center.dist2(b), 1e-12)
		assert.InDelta(t, center.dist2(a), center.dist2(c), 1e-12)
	})

	t.Run("collinear points have no finite circumradius", func(t *testing.T) {
		r := Point{0, 0}.circumradius2(Point{1, 0}, Point{2, 0})
		assert.False(t, r < math.Inf(1))

		r = Point{0, 0}.circumradius2(Point{1, 1}, Point{2, 2})
		assert.False(t, r < math.Inf(1))
	})
}

func TestInCircle(t *testing.T) {
	// Circumcircle of (0,0), (1,1), (1,0) is centered on (0.5, 0.5) with
	// squared radius 0.5. The triple is wound to match the convention the
	// triangulation produces (orient is false).
	a := Point{0, 0}
	b := Point{1, 1}
	c := Point{1, 0}
	assert.False(t, a.orient(b, c))

	t.Run("point strictly inside", func(t *testing.T) {
		assert.True(t, a.inCircle(b, c, Point{0.5, 0.5}))
		assert.True(t, a.inCircle(b, c, Point{0.9, 0.4}))
	})

	t.Run("point strictly outside", func(t *testing.T) {
		assert.False(t, a.inCircle(b, c, Point{5, 5}))
		assert.False(t, a.inCircle(b, c, Point{-1, 0}))
	})

	t.Run("cocircular point is not inside", func(t *testing.T) {
		assert.False(t, a.inCircle(b, c, Point{0, 1}))
	})
}

func TestNearlyEquals(t *testing.T) {
	p := Point{1, 1}
	assert.True(t, p.nearlyEquals(Point{1, 1}))
	assert.True(t, p.nearlyEquals(Point{1 + Epsilon, 1 - Epsilon}))
	assert.False(t, p.nearlyEquals(Point{1 + 1e-10, 1}))
	assert.False(t, p.nearlyEquals(Point{1, 1.000001}))
}
