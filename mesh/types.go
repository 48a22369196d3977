package mesh

// A point in the plane, carrying an elevation. The Z value is interpolated
// for display purposes but never participates in any triangulation predicate.
//
// Note that all points involved with the mesh are pointers. Two points with
// identical coordinates inserted separately are distinct vertices, and vertex
// membership is always tested by comparing pointers, never coordinates. We
// should never modify a point value once it is part of the mesh.
type Point struct {
	X, Y, Z float64
}

// A single cell of the mesh. Cells connect to each other only through their
// neighbor links; there is no global container of cells anywhere. The mesh
// "is" whatever is reachable from some live cell.
type Triangle struct {
	// Vertices in clockwise order.
	Vertices [3]*Point

	// Neighbors[i] is the cell across the edge (Vertices[i], Vertices[i+1]).
	// A nil entry means the edge is on the outer boundary of the mesh.
	Neighbors [3]*Triangle

	// Derived geometry, computed lazily and dropped whenever a vertex changes.
	center       *Point
	circumcenter *Point
	radiusSq     float64
	hasRadiusSq  bool

	// Generation of the last search or harvest pass that touched this cell.
	// Comparing against the current pass generation gives an O(1) "visited"
	// check without ever having to reset a visited set between passes.
	lastVisit uint64
}

func NewTriangle(a, b, c *Point) *Triangle {
	return &Triangle{Vertices: [3]*Point{a, b, c}}
}

type TriangleStack []*Triangle

func (s *TriangleStack) Push(t *Triangle) {
	*s = append(*s, t)
}

func (s *TriangleStack) Pop() *Triangle {
	if len(*s) == 0 {
		return nil
	}
	t := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return t
}

func (s *TriangleStack) Empty() bool {
	return len(*s) == 0
}

type TriangleQueue []*Triangle

func (q *TriangleQueue) Push(t *Triangle) {
	*q = append(*q, t)
}

func (q *TriangleQueue) Shift() *Triangle {
	if len(*q) == 0 {
		return nil
	}
	t := (*q)[0]
	*q = (*q)[1:]
	return t
}

func (q *TriangleQueue) Empty() bool {
	return len(*q) == 0
}

type PointSet map[*Point]struct{}
