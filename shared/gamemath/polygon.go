package gamemath

// LineSegment joins two points.
type LineSegment struct {
	P1, P2 Vec2
}

// Tangent is the unit direction from P1 to P2.
func (s LineSegment) Tangent() (Vec2, error) {
	return s.P2.Sub(s.P1).Normalized()
}

// Normal is the tangent rotated a quarter turn counter-clockwise.
func (s LineSegment) Normal() (Vec2, error) {
	t, err := s.Tangent()
	if err != nil {
		return Zero, err
	}
	return t.Perpendicular(), nil
}

func (s LineSegment) ToPlane() (Plane, error) {
	return PlaneFromPoints(s.P1, s.P2)
}

// PolyLine is an open chain of vertices.
type PolyLine struct {
	Vertices []Vec2
}

func (pl PolyLine) Segments() []LineSegment {
	if len(pl.Vertices) < 2 {
		return nil
	}
	segs := make([]LineSegment, 0, len(pl.Vertices)-1)
	for i := 1; i < len(pl.Vertices); i++ {
		segs = append(segs, LineSegment{P1: pl.Vertices[i-1], P2: pl.Vertices[i]})
	}
	return segs
}

// Polygon is a set of closed contours.
type Polygon struct {
	Contours [][]Vec2
}

func NewPolygon(vertices ...Vec2) *Polygon {
	p := &Polygon{}
	if len(vertices) > 0 {
		p.AddContour(vertices)
	}
	return p
}

func (p *Polygon) AddContour(vertices []Vec2) {
	p.Contours = append(p.Contours, vertices)
}

// Mirror reflects every contour in plane. Contours are reversed so that
// their winding survives the reflection.
func (p *Polygon) Mirror(plane Plane) *Polygon {
	out := &Polygon{}
	for _, c := range p.Contours {
		m := make([]Vec2, len(c))
		for i, v := range c {
			m[len(c)-1-i] = plane.Mirror(v)
		}
		out.AddContour(m)
	}
	return out
}

// PolylinesFacing returns the runs of connected edges whose normals face
// v, that is, whose normal dotted with v exceeds threshold. Degenerate
// edges are skipped.
func (p *Polygon) PolylinesFacing(v Vec2, threshold float64) []PolyLine {
	type edge struct {
		seg    LineSegment
		facing bool
	}

	var lines []PolyLine
	for _, contour := range p.Contours {
		n := len(contour)
		var edges []edge
		for i := 0; i < n; i++ {
			seg := LineSegment{P1: contour[i], P2: contour[(i+1)%n]}
			normal, err := seg.Normal()
			if err != nil {
				continue
			}
			edges = append(edges, edge{seg: seg, facing: normal.Dot(v) > threshold})
		}
		if len(edges) == 0 {
			continue
		}

		// start at a facing/non-facing boundary so no run is split in two
		start := 0
		for i := 1; i < len(edges); i++ {
			if edges[i].facing != edges[0].facing {
				start = i
				break
			}
		}

		var run []Vec2
		for i := range edges {
			e := edges[(i+start)%len(edges)]
			if !e.facing {
				if len(run) >= 2 {
					lines = append(lines, PolyLine{Vertices: run})
				}
				run = nil
				continue
			}
			if run == nil {
				run = []Vec2{e.seg.P1, e.seg.P2}
			} else {
				run = append(run, e.seg.P2)
			}
		}
		if len(run) >= 2 {
			lines = append(lines, PolyLine{Vertices: run})
		}
	}
	return lines
}
