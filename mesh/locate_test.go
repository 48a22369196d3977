package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateOnSeedMesh(t *testing.T) {
	m, err := New(0, 10, 0, 10)
	require.NoError(t, err)

	// Before any insertion there is exactly one cell, and every point in the
	// box lands in it.
	cell := locate(&Point{X: 5, Y: 5}, m.current, m.nextGeneration())
	require.NotNil(t, cell)
	assert.Same(t, m.current, cell)
}

func TestLocateAfterInsertions(t *testing.T) {
	m, err := New(0, 100, 0, 100)
	require.NoError(t, err)
	require.NoError(t, m.Insert(LoadFixture("grid")...))

	queries := []*Point{
		{X: 50, Y: 50},
		{X: 3.2, Y: 97.5},
		{X: 99, Y: 1},
		{X: 12.4, Y: 11.8}, // exactly on an inserted vertex
	}
	for _, q := range queries {
		cell := locate(q, m.current, m.nextGeneration())
		require.NotNil(t, cell, "no cell found for (%v, %v)", q.X, q.Y)
		assert.True(t, cell.ContainsPoint(q))
	}
}

func TestLocateNilStart(t *testing.T) {
	assert.Nil(t, locate(&Point{X: 1, Y: 1}, nil, 1))
}

func TestLocateStampedStartFailsFast(t *testing.T) {
	m, err := New(0, 10, 0, 10)
	require.NoError(t, err)

	generation := m.nextGeneration()
	p := &Point{X: 5, Y: 5}
	require.NotNil(t, locate(p, m.current, generation))
	// Same generation again: the start cell is already stamped, so the search
	// must refuse rather than loop.
	assert.Nil(t, locate(p, m.current, generation))
}

func TestLocateExhaustionReturnsNil(t *testing.T) {
	m, err := New(0, 10, 0, 10)
	require.NoError(t, err)

	// A point far outside the bounding triangle is in no cell at all.
	assert.Nil(t, locate(&Point{X: 1e6, Y: 1e6}, m.current, m.nextGeneration()))
}

func TestNearestVertexDistanceSq(t *testing.T) {
	tri := NewTriangle(
		&Point{X: 0, Y: 0},
		&Point{X: 0, Y: 4},
		&Point{X: 4, Y: 0},
	)
	assert.InDelta(t, 2, nearestVertexDistanceSq(&Point{X: 1, Y: 1}, tri), Epsilon)
	assert.InDelta(t, 1, nearestVertexDistanceSq(&Point{X: 5, Y: 0}, tri), Epsilon)
	assert.InDelta(t, 0, nearestVertexDistanceSq(&Point{X: 0, Y: 4}, tri), Epsilon)
}
