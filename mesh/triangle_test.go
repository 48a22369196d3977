package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A clockwise right triangle with its corner at the origin. Its circumcircle
// is centered at (2, 2) with squared radius 8.
func rightTriangle() *Triangle {
	return NewTriangle(
		&Point{X: 0, Y: 0},
		&Point{X: 0, Y: 4},
		&Point{X: 4, Y: 0},
	)
}

func TestCenter(t *testing.T) {
	tri := NewTriangle(
		&Point{X: 0, Y: 0, Z: 3},
		&Point{X: 3, Y: 0, Z: 6},
		&Point{X: 0, Y: 3, Z: 9},
	)
	center := tri.Center()
	assert.InDelta(t, 1, center.X, Epsilon)
	assert.InDelta(t, 1, center.Y, Epsilon)
	assert.InDelta(t, 6, center.Z, Epsilon)
	// Cached: same pointer until a vertex changes
	assert.Same(t, center, tri.Center())
}

func TestCircumcenter(t *testing.T) {
	tri := rightTriangle()
	cc := tri.Circumcenter()
	assert.InDelta(t, 2, cc.X, Epsilon)
	assert.InDelta(t, 2, cc.Y, Epsilon)
	assert.InDelta(t, 0, cc.Z, Epsilon)
	assert.InDelta(t, 8, tri.CircumradiusSq(), Epsilon)
	assert.Same(t, cc, tri.Circumcenter())

	// Every vertex is equidistant from the circumcenter
	for _, v := range tri.Vertices {
		assert.InDelta(t, tri.CircumradiusSq(), cc.PlanarDistanceSq(v), Epsilon)
	}
}

func TestCircumcenterInterpolatesElevation(t *testing.T) {
	// Vertices lie on the plane z = x + y, so the circumcenter at (2, 2)
	// should pick up z = 4.
	tri := NewTriangle(
		&Point{X: 0, Y: 0, Z: 0},
		&Point{X: 0, Y: 4, Z: 4},
		&Point{X: 4, Y: 0, Z: 4},
	)
	cc := tri.Circumcenter()
	assert.InDelta(t, 2, cc.X, Epsilon)
	assert.InDelta(t, 2, cc.Y, Epsilon)
	assert.InDelta(t, 4, cc.Z, Epsilon)
}

func TestCircumcenterCollinearPanics(t *testing.T) {
	tri := NewTriangle(
		&Point{X: 0, Y: 0},
		&Point{X: 1, Y: 1},
		&Point{X: 2, Y: 2},
	)
	assert.Panics(t, func() { tri.Circumcenter() })
}

func TestContainsPoint(t *testing.T) {
	tri := rightTriangle()

	t.Run("Interior", func(t *testing.T) {
		assert.True(t, tri.ContainsPoint(&Point{X: 1, Y: 1}))
		assert.True(t, tri.ContainsPoint(&Point{X: 0.5, Y: 2.9}))
	})

	t.Run("Boundary is inclusive", func(t *testing.T) {
		assert.True(t, tri.ContainsPoint(&Point{X: 2, Y: 0}))  // on an edge
		assert.True(t, tri.ContainsPoint(&Point{X: 2, Y: 2}))  // on the hypotenuse
		assert.True(t, tri.ContainsPoint(&Point{X: 0, Y: 4}))  // on a vertex
	})

	t.Run("Exterior", func(t *testing.T) {
		assert.False(t, tri.ContainsPoint(&Point{X: 3, Y: 3}))
		assert.False(t, tri.ContainsPoint(&Point{X: -1, Y: 1}))
		assert.False(t, tri.ContainsPoint(&Point{X: 1, Y: -1}))
	})
}

func TestSetVertexInvalidatesCaches(t *testing.T) {
	tri := rightTriangle()
	oldCenter := tri.Center()
	oldCC := tri.Circumcenter()
	oldRadiusSq := tri.CircumradiusSq()

	tri.SetVertex(2, &Point{X: 8, Y: 0})

	assert.NotSame(t, oldCenter, tri.Center())
	assert.NotSame(t, oldCC, tri.Circumcenter())
	assert.NotEqual(t, oldRadiusSq, tri.CircumradiusSq())
	// New circumcircle through (0,0), (0,4), (8,0): center (4, 2)
	assert.InDelta(t, 4, tri.Circumcenter().X, Epsilon)
	assert.InDelta(t, 2, tri.Circumcenter().Y, Epsilon)
}

func TestVertexIdentity(t *testing.T) {
	// Membership is by pointer, not by coordinates.
	a := &Point{X: 0, Y: 0}
	twin := &Point{X: 0, Y: 0}
	tri := NewTriangle(a, &Point{X: 0, Y: 4}, &Point{X: 4, Y: 0})
	assert.True(t, tri.HasVertex(a))
	assert.False(t, tri.HasVertex(twin))
}

func TestDistanceHelpers(t *testing.T) {
	tri := rightTriangle()
	p := &Point{X: 2, Y: 5, Z: 40}
	require.InDelta(t, 9, tri.DistanceToCircumcenter(p), Epsilon)
	center := tri.Center()
	dx, dy := p.X-center.X, p.Y-center.Y
	assert.InDelta(t, dx*dx+dy*dy, tri.DistanceToCenter(p), Epsilon)
}
