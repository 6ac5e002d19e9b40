package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneAltitude(t *testing.T) {
	p, err := NewPlane(V(0, 1), 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, p.Altitude(V(0, 2)), 1e-12)

	p, err = NewPlane(V(1, 0), 2)
	require.NoError(t, err)
	assert.InDelta(t, -2, p.Altitude(V(0, 0)), 1e-12)
}

func TestPlaneIsInside(t *testing.T) {
	p, err := NewPlane(V(1, 1), 1)
	require.NoError(t, err)
	assert.True(t, p.IsInside(V(0, 0.7)))

	p, err = NewPlane(V(-1, 0.5), 2)
	require.NoError(t, err)
	assert.False(t, p.IsInside(V(-3, 0.5)))
}

func TestPlaneMirrorAndProject(t *testing.T) {
	p, err := NewPlane(V(1, 1), 0)
	require.NoError(t, err)
	m := p.Mirror(V(1, 0))
	assert.True(t, m.Sub(V(0, -1)).IsZero())

	proj := p.Project(V(1, 0))
	assert.InDelta(t, 0, p.Altitude(proj), 1e-12)
	assert.InDelta(t, 0.5, proj.X(), 1e-12)
	assert.InDelta(t, -0.5, proj.Y(), 1e-12)
}

func TestPlaneFromPoints(t *testing.T) {
	p, err := PlaneFromPoints(V(0, 5), V(10, 5))
	require.NoError(t, err)
	assert.InDelta(t, 0, p.Normal.X(), 1e-12)
	assert.InDelta(t, 1, p.Normal.Y(), 1e-12)
	assert.InDelta(t, 5, p.Distance, 1e-12)

	_, err = PlaneFromPoints(V(1, 1), V(1, 1))
	assert.Error(t, err)

	_, err = NewPlane(Zero, 3)
	assert.Error(t, err)
}
