package mesh

import "math"

const Epsilon = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, round-off on nearly-collinear vertices would leak
// NaNs into the predicates instead of being caught as degenerate geometry.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Squared distance between two points projected onto the plane. Nothing in
// the system needs a true distance, only relative comparisons, so we never
// take the square root.
func (p *Point) PlanarDistanceSq(q *Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}
