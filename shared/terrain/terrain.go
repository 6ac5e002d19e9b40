// Package terrain maps horizontal positions to ground height and surface
// normal.
package terrain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/bamboo/shared/gamemath"
)

// Up is the normal of flat ground.
var Up = gamemath.V(0, 1)

// HeightField is the ground as seen by physics. Both methods must be
// defined for every x in the level.
type HeightField interface {
	HeightAt(x float64) float64
	NormalAt(x float64) gamemath.Vec2
}

// Flat is level ground at a fixed height.
type Flat struct {
	Height float64
}

func (f Flat) HeightAt(float64) float64       { return f.Height }
func (f Flat) NormalAt(float64) gamemath.Vec2 { return Up }

// Surface is piecewise-linear ground through a sequence of points ordered
// by x. Outside its extent the end heights continue flat.
type Surface struct {
	points  []gamemath.Vec2
	normals []gamemath.Vec2
}

var ErrTooFewPoints = errors.New("terrain: surface needs at least two points")

// NewSurface builds a surface through points. Points may be given in either
// horizontal order.
func NewSurface(points []gamemath.Vec2) (*Surface, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	pts := append([]gamemath.Vec2(nil), points...)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X() < pts[j].X() })

	s := &Surface{points: pts, normals: make([]gamemath.Vec2, len(pts)-1)}
	for i := 1; i < len(pts); i++ {
		seg := gamemath.LineSegment{P1: pts[i-1], P2: pts[i]}
		n, err := seg.Normal()
		if err != nil || n.Y() <= 0 {
			// vertical or repeated points
			n = Up
		}
		s.normals[i-1] = n
	}
	return s, nil
}

// SurfaceFromPolygon extracts the upward-facing edges of the ground polygon
// and joins them into one surface.
func SurfaceFromPolygon(poly *gamemath.Polygon) (*Surface, error) {
	var points []gamemath.Vec2
	for _, contour := range poly.Contours {
		facing := Up
		if signedArea(contour) > 0 {
			// counter-clockwise: left-hand normals point inward
			facing = facing.Neg()
		}
		single := gamemath.NewPolygon(contour...)
		for _, line := range single.PolylinesFacing(facing, 0) {
			points = append(points, line.Vertices...)
		}
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("no upward-facing ground edges: %w", ErrTooFewPoints)
	}
	return NewSurface(points)
}

func signedArea(contour []gamemath.Vec2) float64 {
	var a float64
	for i, p := range contour {
		q := contour[(i+1)%len(contour)]
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return a / 2
}

func (s *Surface) segment(x float64) int {
	i := sort.Search(len(s.points), func(i int) bool { return s.points[i].X() > x })
	switch {
	case i == 0:
		return -1
	case i == len(s.points):
		return len(s.points)
	}
	return i - 1
}

func (s *Surface) HeightAt(x float64) float64 {
	i := s.segment(x)
	switch {
	case i < 0:
		return s.points[0].Y()
	case i >= len(s.normals):
		return s.points[len(s.points)-1].Y()
	}
	a, b := s.points[i], s.points[i+1]
	dx := b.X() - a.X()
	if dx == 0 {
		return b.Y()
	}
	return a.Y() + (x-a.X())/dx*(b.Y()-a.Y())
}

func (s *Surface) NormalAt(x float64) gamemath.Vec2 {
	i := s.segment(x)
	if i < 0 || i >= len(s.normals) {
		return Up
	}
	return s.normals[i]
}

// Extent returns the leftmost and rightmost x covered by the surface.
func (s *Surface) Extent() (float64, float64) {
	return s.points[0].X(), s.points[len(s.points)-1].X()
}

// Points returns the surface vertices, left to right.
func (s *Surface) Points() []gamemath.Vec2 {
	return s.points
}
