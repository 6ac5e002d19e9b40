package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type tuningFile struct {
	Physics    *PhysicsConfig       `yaml:"physics"`
	Combat     *CombatConfig        `yaml:"combat"`
	Body       *BodyConfig          `yaml:"body"`
	Climb      *ClimbConfig         `yaml:"climb"`
	Tree       *TreeConfig          `yaml:"tree"`
	AI         *AIConfig            `yaml:"ai"`
	Projectile *ProjectileConfig    `yaml:"projectile"`
	Effects    *EffectsConfig       `yaml:"effects"`
	Level      *LevelConfig         `yaml:"level"`
	Camera     *CameraConfig        `yaml:"camera"`
	Characters map[string]yaml.Node `yaml:"characters"`
}

// tuning is a full copy of the gameplay configuration.
type tuning struct {
	physics    PhysicsConfig
	combat     CombatConfig
	body       BodyConfig
	climb      ClimbConfig
	tree       TreeConfig
	ai         AIConfig
	projectile ProjectileConfig
	effects    EffectsConfig
	level      LevelConfig
	camera     CameraConfig
	characters map[string]CharacterTypeConfig
}

func currentTuning() *tuning {
	t := &tuning{
		physics:    Physics,
		combat:     Combat,
		body:       Body,
		climb:      Climb,
		tree:       Tree,
		ai:         AI,
		projectile: Projectile,
		effects:    Effects,
		level:      Level,
		camera:     Camera,
		characters: make(map[string]CharacterTypeConfig, len(Characters)),
	}
	for name, c := range Characters {
		t.characters[name] = c
	}
	return t
}

func (t *tuning) apply() {
	Physics, Combat, Body, Climb, Tree = t.physics, t.combat, t.body, t.climb, t.tree
	AI, Projectile, Effects, Level, Camera = t.ai, t.projectile, t.effects, t.level, t.camera
	Characters = t.characters
}

// LoadTuning overlays the gameplay configuration with values from a YAML
// document. Keys are section names (physics, combat, body, climb, tree, ai,
// projectile, effects, level, camera, characters) holding lowercased field names;
// fields that are not mentioned keep their current values. Unknown keys and
// values the simulation cannot run with are an error, and nothing is changed.
func LoadTuning(r io.Reader) error {
	t := currentTuning()
	doc := tuningFile{
		Physics:    &t.physics,
		Combat:     &t.combat,
		Body:       &t.body,
		Climb:      &t.climb,
		Tree:       &t.tree,
		AI:         &t.ai,
		Projectile: &t.projectile,
		Effects:    &t.effects,
		Level:      &t.level,
		Camera:     &t.camera,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode tuning: %w", err)
	}

	for name, node := range doc.Characters {
		c, ok := t.characters[name]
		if !ok {
			return fmt.Errorf("decode tuning: unknown character type %q", name)
		}
		if err := decodeStrict(&node, &c); err != nil {
			return fmt.Errorf("decode tuning for %s: %w", name, err)
		}
		t.characters[name] = c
	}

	if err := t.validate(); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	t.apply()
	return nil
}

// decodeStrict decodes a node rejecting unknown fields. yaml.Node.Decode
// has no KnownFields switch, so the node goes through a fresh decoder.
func decodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}

type bound struct {
	field string
	value float64
}

func (t *tuning) validate() error {
	positive := []bound{
		{"physics.defaultmass", t.physics.DefaultMass},
		{"tree.pieceheight", t.tree.PieceHeight},
		{"tree.defaultheight", float64(t.tree.DefaultHeight)},
		{"body.crouchsmokechance", float64(t.body.CrouchSmokeChance)},
		{"ai.rerollinterval", float64(t.ai.RerollInterval)},
		{"ai.snipechance", float64(t.ai.SnipeChance)},
		{"ai.treepickinterval", float64(t.ai.TreePickInterval)},
		{"ai.approachrecheck", float64(t.ai.ApproachRecheck)},
		{"projectile.mass", t.projectile.Mass},
		{"effects.bloodmass", t.effects.BloodMass},
		{"effects.corpsemass", t.effects.CorpseMass},
		{"level.cellsize", float64(t.level.CellSize)},
		{"level.tickrate", float64(t.level.TickRate)},
		{"level.startinglives", float64(t.level.StartingLives)},
	}
	nonNegative := []bound{
		{"physics.defaultfriction", t.physics.DefaultFriction},
		{"projectile.friction", t.projectile.Friction},
		{"tree.topmargin", t.tree.TopMargin},
		{"effects.smokelifespread", float64(t.effects.SmokeLifeSpread)},
	}
	for name, c := range t.characters {
		positive = append(positive,
			bound{"characters." + name + ".mass", c.Mass},
			bound{"characters." + name + ".maxhealth", c.MaxHealth})
		nonNegative = append(nonNegative, bound{"characters." + name + ".friction", c.Friction})
	}

	// NaN fails both checks
	for _, b := range positive {
		if !(b.value > 0) {
			return fmt.Errorf("%s must be positive, got %v", b.field, b.value)
		}
	}
	for _, b := range nonNegative {
		if !(b.value >= 0) {
			return fmt.Errorf("%s must not be negative, got %v", b.field, b.value)
		}
	}
	return nil
}
