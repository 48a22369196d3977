package mesh

// Best-first search over the neighbor graph for the cell whose planar
// projection contains p.
//
// The frontier is ordered by the squared planar distance from p to the
// nearest of a cell's three vertices. That is not a lower bound on the
// distance to the cell's interior, so this is a greedy expansion rather than
// a guaranteed-optimal A*; it still terminates and still finds a containing
// cell whenever one exists, because every reachable cell is eventually
// stamped and enqueued.
//
// Returns nil when the start cell is nil, when the start cell was already
// stamped with this generation, or when the frontier empties without a hit.
// The last case should be impossible while the bounding triangle invariant
// holds, and the caller reports it rather than swallowing it.
func locate(p *Point, start *Triangle, generation uint64) *Triangle {
	if start == nil || start.lastVisit == generation {
		return nil
	}

	frontier := NewHeap[*Triangle](func(a, b *Triangle) int {
		da, db := nearestVertexDistanceSq(p, a), nearestVertexDistanceSq(p, b)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})

	start.lastVisit = generation
	frontier.Push(start)

	for !frontier.Empty() {
		t := frontier.PopMin()
		if t.ContainsPoint(p) {
			return t
		}
		for _, n := range t.Neighbors {
			if n == nil || n.lastVisit == generation {
				continue
			}
			n.lastVisit = generation
			frontier.Push(n)
		}
	}
	return nil
}

// Squared planar distance from p to the closest of the cell's three
// vertices.
func nearestVertexDistanceSq(p *Point, t *Triangle) float64 {
	best := p.PlanarDistanceSq(t.Vertices[0])
	for _, v := range t.Vertices[1:] {
		if d := p.PlanarDistanceSq(v); d < best {
			best = d
		}
	}
	return best
}
