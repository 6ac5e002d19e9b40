package scenes

import (
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/systems"
	"github.com/automoto/bamboo/systems/factory"
	"github.com/automoto/bamboo/tags"
	"github.com/yohamta/donburi"
)

// EntityView is what a renderer needs to know about an entity after a
// tick. It is a copy; changing it does not affect the level.
type EntityView struct {
	Entity         donburi.Entity
	Kind           string
	Pos            gamemath.Vec2
	Dir            cfg.Direction
	Pose           cfg.StateID
	Rotation       float64
	HealthFraction float64
	Lives          int
}

// Snapshot describes every character, corpse, tree and decoration in the
// level.
func (l *Level) Snapshot() []EntityView {
	w := l.ecs.World
	var views []EntityView

	for _, e := range systems.Climbables(w) {
		tree := components.Climbable.Get(e)
		views = append(views, EntityView{
			Entity: e.Entity(),
			Kind:   factory.BambooTree,
			Pos:    tree.Base,
			Pose:   cfg.BambooTree,
		})
	}

	for _, e := range systems.Characters(w) {
		ch := components.Character.Get(e)
		v := EntityView{
			Entity:         e.Entity(),
			Kind:           ch.Kind,
			Pos:            components.Body.Get(e).Pos,
			Dir:            ch.Dir,
			Pose:           components.State.Get(e).CurrentState,
			Rotation:       ch.Rotation,
			HealthFraction: components.Health.Get(e).Fraction(),
		}
		if ch.Player {
			v.Lives = l.Lives()
		}
		views = append(views, v)
	}

	tags.Corpse.Each(w, func(e *donburi.Entry) {
		if !systems.IsAlive(w, e.Entity()) {
			return
		}
		sprite := components.Sprite.Get(e)
		views = append(views, EntityView{
			Entity:   e.Entity(),
			Kind:     components.Corpse.Get(e).Kind,
			Pos:      components.Body.Get(e).Pos,
			Dir:      sprite.Dir,
			Pose:     components.State.Get(e).CurrentState,
			Rotation: sprite.Rotation,
		})
	})

	tags.Scenery.Each(w, func(e *donburi.Entry) {
		kind := components.Scenery.Get(e).Kind
		views = append(views, EntityView{
			Entity: e.Entity(),
			Kind:   kind,
			Pos:    components.Body.Get(e).Pos,
			Pose:   sceneryPoses[kind],
		})
	})
	return views
}

var sceneryPoses = map[string]cfg.StateID{
	factory.Torii:         cfg.Torii,
	factory.EatingSamurai: cfg.EatingSamurai,
	factory.Campfire:      cfg.Campfire,
}
