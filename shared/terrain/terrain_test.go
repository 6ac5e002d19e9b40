package terrain

import (
	"math"
	"testing"

	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlat(t *testing.T) {
	f := Flat{Height: 60}
	for _, x := range []float64{-100, 0, 12.5, 1e6} {
		assert.Equal(t, 60.0, f.HeightAt(x))
		assert.Equal(t, Up, f.NormalAt(x))
	}
}

func TestSurfaceHeightAndNormal(t *testing.T) {
	s, err := NewSurface([]gamemath.Vec2{
		gamemath.V(200, 100), gamemath.V(0, 60), gamemath.V(100, 60),
	})
	require.NoError(t, err)

	tests := []struct {
		x      float64
		height float64
	}{
		{-50, 60},
		{0, 60},
		{50, 60},
		{100, 60},
		{150, 80},
		{200, 100},
		{500, 100},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.height, s.HeightAt(tt.x), 1e-9, "x=%v", tt.x)
	}

	n := s.NormalAt(150)
	assert.InDelta(t, 1, n.Mag(), 1e-9)
	assert.Greater(t, n.Y(), 0.0)
	assert.Less(t, n.X(), 0.0)
	assert.Equal(t, Up, s.NormalAt(-10))
	assert.Equal(t, Up, s.NormalAt(1000))

	l, r := s.Extent()
	assert.Equal(t, 0.0, l)
	assert.Equal(t, 200.0, r)
}

func TestSurfaceIsContinuous(t *testing.T) {
	s, err := NewSurface([]gamemath.Vec2{
		gamemath.V(0, 60), gamemath.V(80, 75), gamemath.V(160, 40), gamemath.V(400, 40),
	})
	require.NoError(t, err)
	for x := -10.0; x < 410; x += 0.5 {
		d := math.Abs(s.HeightAt(x+0.01) - s.HeightAt(x))
		assert.Less(t, d, 0.1, "jump at x=%v", x)
	}
}

func TestNewSurfaceTooFewPoints(t *testing.T) {
	_, err := NewSurface([]gamemath.Vec2{gamemath.V(0, 0)})
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestSurfaceFromPolygon(t *testing.T) {
	for _, name := range []string{"ccw", "cw"} {
		t.Run(name, func(t *testing.T) {
			contour := []gamemath.Vec2{
				gamemath.V(0, 0), gamemath.V(300, 0), gamemath.V(300, 60),
				gamemath.V(150, 90), gamemath.V(0, 60),
			}
			if name == "cw" {
				for i, j := 0, len(contour)-1; i < j; i, j = i+1, j-1 {
					contour[i], contour[j] = contour[j], contour[i]
				}
			}
			s, err := SurfaceFromPolygon(gamemath.NewPolygon(contour...))
			require.NoError(t, err)
			assert.InDelta(t, 60, s.HeightAt(0), 1e-9)
			assert.InDelta(t, 90, s.HeightAt(150), 1e-9)
			assert.InDelta(t, 75, s.HeightAt(225), 1e-9)
		})
	}
}

type countingField struct {
	Flat
	calls int
}

func (c *countingField) HeightAt(x float64) float64 {
	c.calls++
	return c.Flat.HeightAt(x)
}

func TestProbeCachesUntilXChanges(t *testing.T) {
	field := &countingField{Flat: Flat{Height: 60}}
	var p Probe

	h, n := p.Sample(field, 10)
	assert.Equal(t, 60.0, h)
	assert.Equal(t, Up, n)
	p.Sample(field, 10)
	p.Sample(field, 10)
	assert.Equal(t, 1, field.calls)

	p.Sample(field, 11)
	assert.Equal(t, 2, field.calls)

	p.Invalidate()
	p.Sample(field, 11)
	assert.Equal(t, 3, field.calls)
}
