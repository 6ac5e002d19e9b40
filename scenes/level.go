package scenes

import (
	"fmt"
	"log"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/shared/leveldata"
	"github.com/automoto/bamboo/shared/terrain"
	"github.com/automoto/bamboo/systems"
	"github.com/automoto/bamboo/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Level is one playable level: its terrain, the entities in it and the
// order the systems run in each tick.
type Level struct {
	Name string

	ecs    *ecs.ECS
	width  float64
	height float64
	ground terrain.HeightField
	spawns []leveldata.Spawn

	playerKind string
	slot       *donburi.Entry
	listeners  []func(components.CharacterDiedEvent)
}

// NewLevel builds a level from imported level data.
func NewLevel(data *leveldata.LevelData) (*Level, error) {
	ground, err := terrain.NewSurface(data.Ground)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", data.Name, err)
	}
	l, err := NewLevelWithGround(data.Width, data.Height, ground, data.Spawns)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", data.Name, err)
	}
	l.Name = data.Name
	return l, nil
}

// NewLevelWithGround builds a level from terrain and spawn declarations.
// Every spawn name is checked before anything is built.
func NewLevelWithGround(width, height float64, ground terrain.HeightField, spawns []leveldata.Spawn) (*Level, error) {
	for _, s := range spawns {
		if err := factory.CheckSpawn(s.Name); err != nil {
			return nil, err
		}
	}
	l := &Level{
		width:  width,
		height: height,
		ground: ground,
		spawns: spawns,
	}
	if err := l.Restart(); err != nil {
		return nil, err
	}
	return l, nil
}

// Restart throws away everything in the level and spawns it afresh. A
// player added with SpawnPlayer gets a new set of lives.
func (l *Level) Restart() error {
	w := donburi.NewWorld()
	l.ecs = ecs.NewECS(w)
	l.slot = nil

	l.ecs.AddSystem(systems.UpdatePlayers)
	l.ecs.AddSystem(systems.UpdateAI)
	l.ecs.AddSystem(systems.UpdateCharacters)
	l.ecs.AddSystem(systems.UpdateClimbables)
	l.ecs.AddSystem(systems.UpdatePhysics)
	l.ecs.AddSystem(systems.UpdateCorpses)
	// Everything has moved; collisions from here on.
	l.ecs.AddSystem(systems.UpdateProjectiles)
	l.ecs.AddSystem(systems.UpdateCombat)
	l.ecs.AddSystem(systems.UpdateSmoke)
	l.ecs.AddSystem(systems.UpdateScenery)
	l.ecs.AddSystem(systems.UpdateRemovals)
	l.ecs.AddSystem(processEvents)
	l.ecs.AddSystem(systems.UpdateStates)
	l.ecs.AddSystem(systems.UpdateLives)
	l.ecs.AddSystem(systems.UpdateCamera)

	factory.CreateLevel(l.ecs, l.width, l.height, l.ground)
	factory.CreateSpace(l.ecs, l.width, l.height, cfg.Level.CellSize)
	factory.CreateCamera(l.ecs)

	components.CharacterDied.Subscribe(w, systems.OnCharacterDied)
	components.CharacterDied.Subscribe(w, systems.ShakeOnPlayerDeath)
	components.CharacterDied.Subscribe(w, l.notify)

	var trees, characters, other int
	for _, s := range l.spawns {
		e, err := l.spawn(s)
		if err != nil {
			return fmt.Errorf("spawn %s at %.0f: %w", s.Name, s.X, err)
		}
		switch {
		case e.HasComponent(components.Climbable):
			trees++
		case e.HasComponent(components.Character):
			characters++
		default:
			other++
		}
	}
	log.Printf("Level loaded: %d trees, %d characters, %d other", trees, characters, other)

	if l.playerKind != "" {
		return l.SpawnPlayer(l.playerKind)
	}
	return nil
}

func (l *Level) spawn(s leveldata.Spawn) (*donburi.Entry, error) {
	opts := factory.SpawnOptions{Height: s.Height}
	if s.OnGround {
		return factory.SpawnOnGround(l.ecs, s.Name, s.X, opts)
	}
	return factory.Spawn(l.ecs, s.Name, s.X, s.Y, opts)
}

func processEvents(ecs *ecs.ECS) {
	components.CharacterDied.ProcessEvents(ecs.World)
}

func (l *Level) notify(_ donburi.World, event components.CharacterDiedEvent) {
	for _, fn := range l.listeners {
		fn(event)
	}
}

// Update advances the level by one tick.
func (l *Level) Update() {
	l.ecs.Update()
	if level, ok := components.Level.First(l.ecs.World); ok {
		components.Level.Get(level).Tick++
	}
}

// Draw renders the level as outlines with the HUD on top.
func (l *Level) Draw(screen *ebiten.Image) {
	systems.DrawDebug(l.ecs, screen)
	systems.DrawHUD(l.ecs, screen)
}

// ECS exposes the entity system for input adapters and tests.
func (l *Level) ECS() *ecs.ECS {
	return l.ecs
}

func (l *Level) World() donburi.World {
	return l.ecs.World
}

// Ground is the level's terrain.
func (l *Level) Ground() terrain.HeightField {
	return l.ground
}

// Spawn creates a named entity at (x, y). A NaN y puts it on the ground.
func (l *Level) Spawn(name string, x, y float64) (*donburi.Entry, error) {
	return factory.Spawn(l.ecs, name, x, y, factory.SpawnOptions{})
}

// SpawnPlayer gives a player of the given kind their lives and their first
// character.
func (l *Level) SpawnPlayer(kind string) error {
	if _, ok := cfg.Characters[kind]; !ok {
		return &factory.ConfigError{Field: "player kind", Value: kind}
	}
	l.playerKind = kind
	l.slot = factory.CreatePlayerSlot(l.ecs, kind, cfg.Level.StartingLives)
	_, err := factory.CreatePlayerCharacter(l.ecs, l.slot, cfg.Level.PlayerSpawnX)
	return err
}

// Player returns the live player character, or nil.
func (l *Level) Player() *donburi.Entry {
	if l.slot == nil {
		return nil
	}
	lives := components.Lives.Get(l.slot)
	if !systems.IsAlive(l.ecs.World, lives.Character) {
		return nil
	}
	return l.ecs.World.Entry(lives.Character)
}

// Control returns the command latch of the player character, or nil while
// there is none.
func (l *Level) Control() *components.ControlData {
	p := l.Player()
	if p == nil {
		return nil
	}
	return components.Control.Get(p)
}

// Kill removes e from play at the end of the tick.
func (l *Level) Kill(e *donburi.Entry) {
	systems.Kill(l.ecs.World, e)
}

func (l *Level) CharactersColliding(r gamemath.Rect) []*donburi.Entry {
	return systems.CharactersColliding(l.ecs.World, r)
}

func (l *Level) NearestClimbable(p gamemath.Vec2) (*donburi.Entry, float64) {
	return systems.NearestClimbable(l.ecs.World, p)
}

func (l *Level) Climbables() []*donburi.Entry {
	return systems.Climbables(l.ecs.World)
}

func (l *Level) Characters() []*donburi.Entry {
	return systems.Characters(l.ecs.World)
}

func (l *Level) PlayerCharacters() []*donburi.Entry {
	return systems.PlayerCharacters(l.ecs.World)
}

// OnDeath registers fn to hear about every character that dies. It is
// called at the end of the tick the death happened in.
func (l *Level) OnDeath(fn func(components.CharacterDiedEvent)) {
	l.listeners = append(l.listeners, fn)
}

// Completed reports whether the player has walked off the end of the
// level.
func (l *Level) Completed() bool {
	if level, ok := components.Level.First(l.ecs.World); ok {
		return components.Level.Get(level).Completed
	}
	return false
}

func (l *Level) GameOver() bool {
	return systems.GameOver(l.ecs.World)
}

// Tick is the number of updates since the level was last started.
func (l *Level) Tick() int {
	if level, ok := components.Level.First(l.ecs.World); ok {
		return components.Level.Get(level).Tick
	}
	return 0
}

// Lives returns the player's remaining lives.
func (l *Level) Lives() int {
	if l.slot == nil {
		return 0
	}
	return components.Lives.Get(l.slot).Lives
}
