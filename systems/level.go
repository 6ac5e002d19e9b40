package systems

import (
	"math"
	"sort"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/shared/terrain"
	"github.com/automoto/bamboo/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func levelOf(w donburi.World) *components.LevelData {
	if entry, ok := components.Level.First(w); ok {
		return components.Level.Get(entry)
	}
	return nil
}

// groundOf returns the level's terrain, or flat ground when the world has
// no level.
func groundOf(w donburi.World) terrain.HeightField {
	if level := levelOf(w); level != nil && level.Ground != nil {
		return level.Ground
	}
	return terrain.Flat{Height: cfg.Level.GroundHeight}
}

func spaceOf(w donburi.World) *resolv.Space {
	if entry, ok := components.Space.First(w); ok {
		return components.Space.Get(entry)
	}
	return nil
}

// IsAlive reports whether e is in the world and not on its way out.
func IsAlive(w donburi.World, e donburi.Entity) bool {
	if e == donburi.Null || !w.Valid(e) {
		return false
	}
	if level := levelOf(w); level != nil && level.PendingRemoval(e) {
		return false
	}
	entry := w.Entry(e)
	if entry.HasComponent(components.Character) {
		return !components.Character.Get(entry).Dying
	}
	return true
}

// Kill takes an entity out of play. Characters let go of their tree and
// lose their controller immediately; the entity itself leaves the world at
// the end of the tick.
func Kill(w donburi.World, entry *donburi.Entry) {
	level := levelOf(w)
	if level == nil || !entry.Valid() || !level.QueueRemoval(entry.Entity()) {
		return
	}

	if entry.HasComponent(components.Character) {
		ch := components.Character.Get(entry)
		ch.Dying = true
		ch.Attack = nil
		if ch.IsClimbing() && w.Valid(ch.Climbing) {
			Detach(w, w.Entry(ch.Climbing), entry)
		}
		if entry.HasComponent(components.AI) {
			*components.AI.Get(entry) = components.AIData{}
		}
		if entry.HasComponent(components.Control) {
			components.Control.Get(entry).Clear()
		}
	}

	if entry.HasComponent(components.Climbable) {
		tree := components.Climbable.Get(entry)
		for len(tree.Climbers) > 0 {
			c := tree.Climbers[0]
			if !w.Valid(c.Entity) {
				tree.Climbers = tree.Climbers[1:]
				continue
			}
			Detach(w, entry, w.Entry(c.Entity))
		}
		level.UnindexTree(entry.Entity())
	}

	removeObject(w, entry)
}

func removeObject(w donburi.World, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	if space := spaceOf(w); space != nil {
		space.Remove(obj.Object)
	}
	obj.Object = nil
}

// UpdateRemovals removes everything killed during the tick.
func UpdateRemovals(ecs *ecs.ECS) {
	level := levelOf(ecs.World)
	if level == nil {
		return
	}
	for _, e := range level.TakeRemovals() {
		if !ecs.World.Valid(e) {
			continue
		}
		removeObject(ecs.World, ecs.World.Entry(e))
		ecs.World.Remove(e)
	}
}

func syncObject(obj *resolv.Object, r gamemath.Rect) {
	if obj == nil {
		return
	}
	obj.X = r.L + components.SpacePad
	obj.Y = r.B + components.SpacePad
	obj.W = r.W
	obj.H = r.H
	obj.Update()
}

// CharactersColliding returns the live characters whose bounds intersect r,
// ordered by spawn order.
func CharactersColliding(w donburi.World, r gamemath.Rect) []*donburi.Entry {
	var candidates []*donburi.Entry
	if space := spaceOf(w); space != nil {
		probe := resolv.NewObject(r.L+components.SpacePad, r.B+components.SpacePad, math.Max(r.W, 1), math.Max(r.H, 1), tags.ResolvProbe)
		space.Add(probe)
		if check := probe.Check(0, 0, tags.ResolvCharacter); check != nil {
			for _, obj := range check.Objects {
				if entry, ok := obj.Data.(*donburi.Entry); ok {
					candidates = append(candidates, entry)
				}
			}
		}
		space.Remove(probe)
	} else {
		tags.Character.Each(w, func(entry *donburi.Entry) {
			candidates = append(candidates, entry)
		})
	}

	var hits []*donburi.Entry
	seen := make(map[donburi.Entity]bool, len(candidates))
	for _, entry := range candidates {
		if seen[entry.Entity()] || !IsAlive(w, entry.Entity()) {
			continue
		}
		seen[entry.Entity()] = true
		if Bounds(w, entry).Intersects(r) {
			hits = append(hits, entry)
		}
	}
	sortBySerial(hits)
	return hits
}

func sortBySerial(entries []*donburi.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return serialOf(entries[i]) < serialOf(entries[j])
	})
}

func serialOf(entry *donburi.Entry) int {
	switch {
	case entry.HasComponent(components.Character):
		return components.Character.Get(entry).Serial
	case entry.HasComponent(components.Climbable):
		return components.Climbable.Get(entry).Serial
	}
	return int(entry.Entity().Id())
}

// Characters returns the live characters in spawn order.
func Characters(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Character.Each(w, func(entry *donburi.Entry) {
		if IsAlive(w, entry.Entity()) {
			out = append(out, entry)
		}
	})
	sortBySerial(out)
	return out
}

// PlayerCharacters returns the live player-controlled characters in spawn
// order.
func PlayerCharacters(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	for _, entry := range Characters(w) {
		if components.Character.Get(entry).Player {
			out = append(out, entry)
		}
	}
	return out
}

// Climbables returns the trees in play in spawn order.
func Climbables(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	components.Climbable.Each(w, func(entry *donburi.Entry) {
		if IsAlive(w, entry.Entity()) {
			out = append(out, entry)
		}
	})
	sortBySerial(out)
	return out
}

// NearestClimbable returns the tree nearest to p and the distance to it,
// or nil if there are no trees.
func NearestClimbable(w donburi.World, p gamemath.Vec2) (*donburi.Entry, float64) {
	level := levelOf(w)
	if level == nil {
		return nil, 0
	}

	var nearest *donburi.Entry
	best := math.Inf(1)
	for _, c := range level.TreesByDistance(p) {
		// trunk distance is never less than the distance to the bounds
		if c.MinDist > best {
			break
		}
		if !IsAlive(w, c.Entity) {
			continue
		}
		entry := w.Entry(c.Entity)
		d := DistanceFrom(components.Climbable.Get(entry), p)
		if d < best || (d == best && nearest != nil && serialOf(entry) < serialOf(nearest)) {
			nearest, best = entry, d
		}
	}
	if nearest == nil {
		return nil, 0
	}
	return nearest, best
}
