package gamemath

import "math"

// Rect is an axis-aligned rectangle with a y-up origin at its bottom left.
type Rect struct {
	L, B, W, H float64
}

// RectFromCenter builds a w x h rectangle centred on c.
func RectFromCenter(c Vec2, w, h float64) Rect {
	return Rect{L: c.x - w*0.5, B: c.y - h*0.5, W: w, H: h}
}

// RectFromCorners builds the rectangle spanning two opposite corners given
// in any order.
func RectFromCorners(c1, c2 Vec2) Rect {
	x1, x2 := math.Min(c1.x, c2.x), math.Max(c1.x, c2.x)
	y1, y2 := math.Min(c1.y, c2.y), math.Max(c1.y, c2.y)
	return Rect{L: x1, B: y1, W: x2 - x1, H: y2 - y1}
}

func (r Rect) T() float64 { return r.B + r.H }
func (r Rect) R() float64 { return r.L + r.W }

func (r Rect) BottomLeft() Vec2  { return V(r.L, r.B) }
func (r Rect) TopLeft() Vec2     { return V(r.L, r.T()) }
func (r Rect) TopRight() Vec2    { return V(r.R(), r.T()) }
func (r Rect) BottomRight() Vec2 { return V(r.R(), r.B) }

func (r Rect) Center() Vec2 {
	return V(r.L+r.W*0.5, r.B+r.H*0.5)
}

// Empty reports whether the rectangle has neither width nor height.
func (r Rect) Empty() bool { return r.W == 0 && r.H == 0 }

// Intersects reports whether the interiors of r and o overlap. Rectangles
// that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return o.R() > r.L && o.L < r.R() && o.T() > r.B && o.B < r.T()
}

// Contains reports whether p lies in r. The left and bottom edges are
// inclusive, the right and top edges exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.x >= r.L && p.x < r.R() && p.y >= r.B && p.y < r.T()
}

// Intersection returns the overlap of r and o.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	l := math.Max(r.L, o.L)
	b := math.Max(r.B, o.B)
	return Rect{L: l, B: b, W: math.Min(r.R(), o.R()) - l, H: math.Min(r.T(), o.T()) - b}, true
}

func (r Rect) ScaleAboutCenter(sx, sy float64) Rect {
	return RectFromCenter(r.Center(), r.W*sx, r.H*sy)
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{L: r.L + d.x, B: r.B + d.y, W: r.W, H: r.H}
}
