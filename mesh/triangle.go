package mesh

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/dbg"
)

// Centroid of the cell, including the elevation. Cached until a vertex
// changes.
func (t *Triangle) Center() *Point {
	if t.center == nil {
		a, b, c := t.Vertices[0], t.Vertices[1], t.Vertices[2]
		t.center = &Point{
			X: (a.X + b.X + c.X) / 3,
			Y: (a.Y + b.Y + c.Y) / 3,
			Z: (a.Z + b.Z + c.Z) / 3,
		}
	}
	return t.center
}

// Circumcenter of the cell's planar projection, with an elevation
// interpolated from the vertices.
//
// The planar coordinates come from solving the perpendicular-bisector system
// of the three projected vertices. The elevation is a plane fit through the
// three vertices, not a true 3D circumsphere; for points that aren't close to
// coplanar it is an approximation, which is acceptable because nothing
// downstream uses Z for anything but display.
func (t *Triangle) Circumcenter() *Point {
	if t.circumcenter != nil {
		return t.circumcenter
	}
	a, b, c := t.Vertices[0], t.Vertices[1], t.Vertices[2]
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if Equal(d, 0) {
		fatalf(ErrDegenerateGeometry, "cell %s has collinear vertices", t.DbgName())
	}
	aSq := a.X*a.X + a.Y*a.Y
	bSq := b.X*b.X + b.Y*b.Y
	cSq := c.X*c.X + c.Y*c.Y
	u := (aSq*(b.Y-c.Y) + bSq*(c.Y-a.Y) + cSq*(a.Y-b.Y)) / d
	v := (aSq*(c.X-b.X) + bSq*(a.X-c.X) + cSq*(b.X-a.X)) / d

	var z float64
	if Equal(a.Z, b.Z) && Equal(b.Z, c.Z) {
		z = a.Z
	} else {
		// Weights r, s such that u = ax + r·bx + s·cx and v = ay + r·by + s·cy,
		// then the same weights applied to the elevations.
		det := b.X*c.Y - c.X*b.Y
		if Equal(det, 0) {
			fatalf(ErrDegenerateGeometry, "cell %s: elevation weights are unsolvable", t.DbgName())
		}
		r := ((u-a.X)*c.Y - (v-a.Y)*c.X) / det
		s := ((v-a.Y)*b.X - (u-a.X)*b.Y) / det
		z = a.Z + r*b.Z + s*c.Z
	}

	t.circumcenter = &Point{X: u, Y: v, Z: z}
	return t.circumcenter
}

// Squared planar circumradius. Cached until a vertex changes.
func (t *Triangle) CircumradiusSq() float64 {
	if !t.hasRadiusSq {
		t.radiusSq = t.Circumcenter().PlanarDistanceSq(t.Vertices[0])
		t.hasRadiusSq = true
	}
	return t.radiusSq
}

// Does the cell's planar projection contain p? The boundary is inclusive: a
// point exactly on an edge or vertex is contained, with the usual tolerance
// padding against round-off.
func (t *Triangle) ContainsPoint(p *Point) bool {
	a, b, c := t.Vertices[0], t.Vertices[1], t.Vertices[2]
	abX, abY := b.X-a.X, b.Y-a.Y
	acX, acY := c.X-a.X, c.Y-a.Y
	det := abX*acY - acX*abY
	if Equal(det, 0) {
		fatalf(ErrDegenerateGeometry, "cell %s is too thin for containment testing", t.DbgName())
	}
	apX, apY := p.X-a.X, p.Y-a.Y
	u := (apX*acY - apY*acX) / det
	v := (abX*apY - abY*apX) / det
	return u >= -Epsilon && v >= -Epsilon && u+v <= 1+Epsilon
}

// Replace vertex i. All cached derived geometry depends on the vertices, so
// it is dropped here.
func (t *Triangle) SetVertex(i int, p *Point) {
	t.Vertices[i] = p
	t.center = nil
	t.circumcenter = nil
	t.hasRadiusSq = false
}

func (t *Triangle) DistanceToCircumcenter(p *Point) float64 {
	return t.Circumcenter().PlanarDistanceSq(p)
}

func (t *Triangle) DistanceToCenter(p *Point) float64 {
	return t.Center().PlanarDistanceSq(p)
}

// Vertex membership is by pointer identity, never by coordinates.
func (t *Triangle) HasVertex(p *Point) bool {
	return t.Vertices[0] == p || t.Vertices[1] == p || t.Vertices[2] == p
}

// Index of the one vertex not shared with the given edge-adjacent cell.
func (t *Triangle) offVertexIndex(other *Triangle) int {
	for i, v := range t.Vertices {
		if !other.HasVertex(v) {
			return i
		}
	}
	panic("cells share all three vertices")
}

// Swap the neighbor link that points at old to point at new instead. Every
// caller has just made new own the edge that old used to own, so a missing
// link is a broken invariant, not a recoverable condition.
func (t *Triangle) replaceNeighbor(old, new *Triangle) {
	for i, n := range t.Neighbors {
		if n == old {
			t.Neighbors[i] = new
			return
		}
	}
	panic("replacing a neighbor that was never linked")
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle %s (%v, %v, %v) <%s, %s, %s>",
		t.DbgName(),
		*t.Vertices[0], *t.Vertices[1], *t.Vertices[2],
		dbg.Name(t.Neighbors[0]),
		dbg.Name(t.Neighbors[1]),
		dbg.Name(t.Neighbors[2]),
	)
}

func (t *Triangle) DbgName() string {
	name := dbg.Name(t)
	if t.Neighbors[0] == nil || t.Neighbors[1] == nil || t.Neighbors[2] == nil { // On the outer boundary
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
