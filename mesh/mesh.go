package mesh

import (
	"math"

	"github.com/pkg/errors"
)

// Slack multiplier for the bounding triangle's incircle. The incircle must
// strictly contain the circle circumscribing the bounding box, so anything
// above 1 would do; 1.5 leaves comfortable margin for points exactly on the
// box edge.
const boundsSlack = 1.5

// Mesh incrementally maintains a Delaunay triangulation of the points
// inserted into it.
//
// There is deliberately no container of cells. The engine holds one
// "current" cell (the most recently created one, which keeps searches local
// to recent activity) and everything else is reachable from it through
// neighbor links. Cells orphaned by splits simply become unreachable.
//
// A Mesh is not safe for concurrent use. Insert must run to completion
// before the mesh is queried again: mid-repair the Delaunay property and,
// briefly, neighbor symmetry do not hold.
type Mesh struct {
	current *Triangle

	// The three synthetic vertices of the bounding triangle. They stay in the
	// mesh for its whole lifetime; Collect filters out any cell still touching
	// one of them.
	boundA, boundB, boundC *Point

	// Monotonically increasing pass counter backing the cells' visitation
	// stamps.
	generation uint64
}

// New builds a mesh whose bounding triangle strictly contains the given box,
// so that every point inside the box can be located and inserted. Points
// outside the box are not supported and will be reported as skipped by
// Insert.
func New(minX, maxX, minY, maxY float64) (*Mesh, error) {
	dx := (maxX - minX) / 2
	dy := (maxY - minY) / 2
	radius := math.Sqrt(dx*dx + dy*dy)
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, errors.Wrapf(ErrDegenerateGeometry,
			"bounding box (%v, %v)-(%v, %v) has no extent", minX, minY, maxX, maxY)
	}
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2

	// Equilateral triangle whose incircle radius is the box's half-diagonal
	// times the slack factor.
	side := 6 * radius * boundsSlack / math.Sqrt(3)
	height := side * math.Sqrt(3) / 2

	m := &Mesh{
		boundA: &Point{X: cx - side/2, Y: cy - radius},
		boundB: &Point{X: cx, Y: cy + height},
		boundC: &Point{X: cx + side/2, Y: cy - radius},
	}
	m.current = NewTriangle(m.boundA, m.boundB, m.boundC)
	return m, nil
}

// Insert adds the given points to the mesh one at a time, in order. Each
// point goes through the full locate, split and repair cycle before the next
// one is touched, so the Delaunay property holds between any two insertions.
//
// Points that cannot be placed (location failure, degenerate geometry, or a
// planar position coinciding with an existing vertex) are skipped; the
// returned InsertError lists them. A nil return means every point landed.
func (m *Mesh) Insert(points ...*Point) error {
	var skipped []PointError
	for _, p := range points {
		if err := m.insertOne(p); err != nil {
			skipped = append(skipped, PointError{Point: p, Err: err})
		}
	}
	if len(skipped) == 0 {
		return nil
	}
	return &InsertError{Skipped: skipped}
}

func (m *Mesh) insertOne(p *Point) (err error) {
	defer func() {
		if rErr := recoverMeshError(recover()); rErr != nil {
			err = rErr
		}
	}()

	host := locate(p, m.current, m.nextGeneration())
	if host == nil {
		return errors.Wrapf(ErrLocationFailure, "no cell contains (%v, %v)", p.X, p.Y)
	}

	// Precondition: a point whose planar projection lands on an existing
	// vertex is unsupported. The existing vertex is necessarily a vertex of
	// the containing cell, so the check stays O(1).
	for _, v := range host.Vertices {
		if v != p && Equal(v.X, p.X) && Equal(v.Y, p.Y) {
			return errors.Wrapf(ErrCoincidentPoint,
				"(%v, %v) coincides with an existing vertex", p.X, p.Y)
		}
	}

	// A point sitting exactly on one of the host's edges would make the
	// child on that edge zero-area. Reject it here, before any neighbor
	// links change hands: once split has run, the point is wired into live
	// cells and "skipped" would be a lie.
	for i := 0; i < 3; i++ {
		a := host.Vertices[i]
		b := host.Vertices[(i+1)%3]
		if Equal((b.X-a.X)*(p.Y-a.Y)-(p.X-a.X)*(b.Y-a.Y), 0) {
			return errors.Wrapf(ErrDegenerateGeometry,
				"(%v, %v) lies on an edge of cell %s", p.X, p.Y, host.DbgName())
		}
	}

	children := m.split(host, p)
	m.repair(children)
	m.current = children[0]
	return nil
}

// Split host into three cells around p, all sharing p and pairwise adjacent.
// Child i keeps host's edge i, and with it host's neighbor across that edge;
// the neighbor's back-reference is repointed from host to the child. Host
// itself becomes unreachable.
func (m *Mesh) split(host *Triangle, p *Point) [3]*Triangle {
	var children [3]*Triangle
	for i := 0; i < 3; i++ {
		children[i] = NewTriangle(host.Vertices[i], host.Vertices[(i+1)%3], p)
	}
	for i := 0; i < 3; i++ {
		children[i].Neighbors[0] = host.Neighbors[i]
		children[i].Neighbors[1] = children[(i+1)%3]
		children[i].Neighbors[2] = children[(i+2)%3]
		if outer := host.Neighbors[i]; outer != nil {
			outer.replaceNeighbor(host, children[i])
		}
	}
	return children
}

// Restore the Delaunay property around freshly created cells. The cascade is
// a worklist rather than call recursion: a flip changes the topology under
// the cell being scanned, so the cell goes back on the worklist and its
// neighbor scan restarts from the top. Every flip strictly improves the
// local triangulation, so the worklist drains.
func (m *Mesh) repair(children [3]*Triangle) {
	var work TriangleStack
	for _, c := range children {
		work.Push(c)
	}
	for !work.Empty() {
		t := work.Pop()
		for _, n := range t.Neighbors {
			if n == nil {
				continue
			}
			if violatesDelaunay(t, n) {
				flip(t, n)
				work.Push(n)
				work.Push(t)
				break
			}
		}
	}
}

// Does any vertex of n lie inside t's circumcircle? Vertices shared with t
// sit on the circle and never trip the tolerance-padded comparison.
func violatesDelaunay(t, n *Triangle) bool {
	radiusSq := t.CircumradiusSq()
	for _, v := range n.Vertices {
		if t.HasVertex(v) {
			continue
		}
		d := t.DistanceToCircumcenter(v)
		if d+Epsilon*math.Abs(d) < radiusSq {
			return true
		}
	}
	return false
}

// Flip the edge shared by a and b, replacing it with the opposite diagonal.
// Both cells mutate in place. Four neighbor links change in total: the two
// cross links now point at each other, and each cell picks up the other's
// prior outer neighbor along the rotated edge, including that neighbor's own
// back-reference.
func flip(a, b *Triangle) {
	i := a.offVertexIndex(b)
	j := b.offVertexIndex(a)
	if a.Neighbors[(i+1)%3] != b || b.Neighbors[(j+1)%3] != a {
		panic("flipping cells that do not share an edge")
	}
	offA := a.Vertices[i]
	offB := b.Vertices[j]

	// The outer neighbors that change hands with the diagonal.
	outerA := a.Neighbors[(i+2)%3]
	outerB := b.Neighbors[(j+2)%3]

	a.SetVertex((i+2)%3, offB)
	b.SetVertex((j+2)%3, offA)

	a.Neighbors[(i+1)%3] = outerB
	a.Neighbors[(i+2)%3] = b
	b.Neighbors[(j+1)%3] = outerA
	b.Neighbors[(j+2)%3] = a
	if outerB != nil {
		outerB.replaceNeighbor(b, a)
	}
	if outerA != nil {
		outerA.replaceNeighbor(a, b)
	}
}

// Collect returns every settled cell that does not touch a bounding vertex,
// which is exactly the triangulation of the inserted points. Two calls with
// no intervening Insert return the same set of cells.
//
// Both phases are iterative. The mesh can easily grow large enough that
// walking it with call recursion would overflow the stack.
func (m *Mesh) Collect() []*Triangle {
	// Phase A: hunt for one interior cell to expand from. The cached current
	// cell may itself touch a bounding vertex, so depth-first probe from it.
	root := m.findInteriorRoot()
	if root == nil {
		return nil
	}

	// Phase B: breadth-first expansion over neighbor links, accepting every
	// interior cell. A fresh generation so cells stamped during the hunt are
	// not lost.
	generation := m.nextGeneration()
	var cells []*Triangle
	var frontier TriangleQueue
	root.lastVisit = generation
	frontier.Push(root)
	for !frontier.Empty() {
		t := frontier.Shift()
		cells = append(cells, t)
		for _, n := range t.Neighbors {
			if n == nil || n.lastVisit == generation || m.touchesBounds(n) {
				continue
			}
			n.lastVisit = generation
			frontier.Push(n)
		}
	}
	return cells
}

func (m *Mesh) findInteriorRoot() *Triangle {
	generation := m.nextGeneration()
	var stack TriangleStack
	m.current.lastVisit = generation
	stack.Push(m.current)
	for !stack.Empty() {
		t := stack.Pop()
		if !m.touchesBounds(t) {
			return t
		}
		for _, n := range t.Neighbors {
			if n == nil || n.lastVisit == generation {
				continue
			}
			n.lastVisit = generation
			stack.Push(n)
		}
	}
	return nil
}

func (m *Mesh) touchesBounds(t *Triangle) bool {
	return t.HasVertex(m.boundA) || t.HasVertex(m.boundB) || t.HasVertex(m.boundC)
}

func (m *Mesh) nextGeneration() uint64 {
	m.generation++
	return m.generation
}
