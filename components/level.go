package components

import (
	"math"

	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/shared/terrain"
	"github.com/dhconnelly/rtreego"
	"github.com/yohamta/donburi"
)

// LevelData is the level-wide state shared by the systems.
type LevelData struct {
	Width  float64
	Height float64
	Ground terrain.HeightField

	// Trees is the broad-phase index of climbable trees.
	Trees     *rtreego.Rtree
	treeIndex map[donburi.Entity]*treeSpatial

	// Removals are entities killed this tick, removed from the world at
	// the end of it. Order is the order of the kills.
	Removals   []donburi.Entity
	removalSet map[donburi.Entity]struct{}
	NextSerial int
	Tick       int
	Completed  bool
}

// NewLevelData returns level state for a level of the given size.
func NewLevelData(width, height float64, ground terrain.HeightField) *LevelData {
	return &LevelData{
		Width:     width,
		Height:    height,
		Ground:    ground,
		Trees:     rtreego.NewTree(2, 25, 50),
		treeIndex: make(map[donburi.Entity]*treeSpatial),
	}
}

// QueueRemoval marks e for removal. It reports false if e was already
// queued.
func (l *LevelData) QueueRemoval(e donburi.Entity) bool {
	if l.removalSet == nil {
		l.removalSet = make(map[donburi.Entity]struct{})
	}
	if _, ok := l.removalSet[e]; ok {
		return false
	}
	l.removalSet[e] = struct{}{}
	l.Removals = append(l.Removals, e)
	return true
}

// PendingRemoval reports whether e was killed this tick.
func (l *LevelData) PendingRemoval(e donburi.Entity) bool {
	_, ok := l.removalSet[e]
	return ok
}

// TakeRemovals returns and clears the removal queue.
func (l *LevelData) TakeRemovals() []donburi.Entity {
	out := l.Removals
	l.Removals = nil
	l.removalSet = nil
	return out
}

// Serial hands out increasing numbers used to order entities
// deterministically.
func (l *LevelData) Serial() int {
	l.NextSerial++
	return l.NextSerial
}

type treeSpatial struct {
	entity donburi.Entity
	rect   rtreego.Rect
}

func (t *treeSpatial) Bounds() rtreego.Rect {
	return t.rect
}

// IndexTree adds a tree to the broad-phase index with conservative bounds.
func (l *LevelData) IndexTree(e donburi.Entity, bounds gamemath.Rect) error {
	rect, err := rtreego.NewRect(rtreego.Point{bounds.L, bounds.B}, []float64{bounds.W, bounds.H})
	if err != nil {
		return err
	}
	l.UnindexTree(e)
	s := &treeSpatial{entity: e, rect: rect}
	l.treeIndex[e] = s
	l.Trees.Insert(s)
	return nil
}

// UnindexTree removes a tree from the index.
func (l *LevelData) UnindexTree(e donburi.Entity) {
	s, ok := l.treeIndex[e]
	if !ok {
		return
	}
	l.Trees.Delete(s)
	delete(l.treeIndex, e)
}

// TreeCandidate is an indexed tree and the distance from a query point to
// its bounds.
type TreeCandidate struct {
	Entity  donburi.Entity
	MinDist float64
}

// TreesByDistance returns every indexed tree, nearest bounds first.
func (l *LevelData) TreesByDistance(p gamemath.Vec2) []TreeCandidate {
	n := l.Trees.Size()
	if n == 0 {
		return nil
	}
	found := l.Trees.NearestNeighbors(n, rtreego.Point{p.X(), p.Y()})
	out := make([]TreeCandidate, 0, len(found))
	for _, s := range found {
		ts, ok := s.(*treeSpatial)
		if !ok {
			continue
		}
		out = append(out, TreeCandidate{Entity: ts.entity, MinDist: rectDistance(ts.rect, p)})
	}
	return out
}

// TreesIn returns the trees whose bounds overlap r.
func (l *LevelData) TreesIn(r gamemath.Rect) []donburi.Entity {
	if l.Trees.Size() == 0 || r.W <= 0 || r.H <= 0 {
		return nil
	}
	bb, err := rtreego.NewRect(rtreego.Point{r.L, r.B}, []float64{r.W, r.H})
	if err != nil {
		return nil
	}
	var out []donburi.Entity
	for _, s := range l.Trees.SearchIntersect(bb) {
		if ts, ok := s.(*treeSpatial); ok {
			out = append(out, ts.entity)
		}
	}
	return out
}

func rectDistance(r rtreego.Rect, p gamemath.Vec2) float64 {
	var d2 float64
	for i, v := range []float64{p.X(), p.Y()} {
		lo := r.PointCoord(i)
		hi := lo + r.LengthsCoord(i)
		switch {
		case v < lo:
			d2 += (lo - v) * (lo - v)
		case v > hi:
			d2 += (v - hi) * (v - hi)
		}
	}
	return math.Sqrt(d2)
}

var Level = donburi.NewComponentType[LevelData]()
