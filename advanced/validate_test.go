package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCatchesCorruption(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}

	fresh := func() *Triangulation {
		return Triangulate(points)
	}

	t.Run("valid triangulation passes", func(t *testing.T) {
		assert.NoError(t, fresh().Validate(points))
	})

	t.Run("broken twin symmetry", func(t *testing.T) {
		tri := fresh()
		for i, twin := range tri.Halfedges {
			if twin != Empty {
				tri.Halfedges[i] = Empty
				break
			}
		}
		assert.Error(t, tri.Validate(points))
	})

	t.Run("clockwise triangle", func(t *testing.T) {
		tri := fresh()
		tri.Triangles[0], tri.Triangles[1] = tri.Triangles[1], tri.Triangles[0]
		assert.Error(t, tri.Validate(points))
	})

	t.Run("out of range point index", func(t *testing.T) {
		tri := fresh()
		tri.Triangles[2] = int32(len(points))
		assert.Error(t, tri.Validate(points))
	})

	t.Run("duplicate hull point", func(t *testing.T) {
		tri := fresh()
		tri.Hull[1] = tri.Hull[0]
		assert.Error(t, tri.Validate(points))
	})

	t.Run("truncated hull", func(t *testing.T) {
		tri := fresh()
		tri.Hull = tri.Hull[:len(tri.Hull)-1]
		assert.Error(t, tri.Validate(points))
	})
}
