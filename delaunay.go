// An incremental Delaunay triangulation package for Go.
//
// This package maintains a triangulation of a growing planar point set,
// inserting one point at a time and repairing the Delaunay property locally
// with edge flips. Points carry a Z coordinate that is linearly interpolated
// for display but never used in any triangulation predicate.
package delaunay

import "github.com/osuushi/delaunay/mesh"

type Point = mesh.Point
type Triangle = mesh.Triangle
type Mesh = mesh.Mesh

// New builds an empty mesh whose bounding triangle strictly contains the
// given box. All points inserted later must lie within the box.
func New(minX, maxX, minY, maxY float64) (*Mesh, error) {
	return mesh.New(minX, maxX, minY, maxY)
}

// Triangulate is the one-shot form: build a mesh over the box, insert every
// point, and harvest the triangulation.
//
// The returned error, if any, lists points that were skipped (see
// mesh.InsertError); the returned triangles are still a valid Delaunay
// triangulation of the points that landed.
func Triangulate(minX, maxX, minY, maxY float64, points []*Point) ([]*Triangle, error) {
	m, err := mesh.New(minX, maxX, minY, maxY)
	if err != nil {
		return nil, err
	}
	insertErr := m.Insert(points...)
	return m.Collect(), insertErr
}
