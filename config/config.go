package config

import (
	"image/color"
	"math"

	"github.com/automoto/bamboo/shared/gamemath"
)

// Vector is a tunable 2D constant.
type Vector struct {
	X, Y float64
}

func (v Vector) Vec() gamemath.Vec2 {
	return gamemath.V(v.X, v.Y)
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

type Config struct {
	Width  int
	Height int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity Vector

	// Bodies this close above the ground count as standing on it
	GroundEpsilon float64

	// Defaults for bodies that don't set their own
	DefaultMass     float64
	DefaultFriction float64
}

// CharacterTypeConfig contains configuration for a kind of fighter
type CharacterTypeConfig struct {
	Name          string
	MaxHealth     float64
	Mass          float64
	Friction      float64
	LinearDamping float64

	// Movement
	AirAccel        Vector
	GroundAccel     float64
	MaxRunSpeed     float64
	JumpImpulse     Vector
	TreeJumpImpulse Vector // rightwards, x is negated for leftwards

	// Grounded characters slower than this show the standing pose
	StandingSpeed float64

	// Appears in a puff of smoke
	SpawnSmoke bool
}

// CombatConfig contains melee configuration values
type CombatConfig struct {
	AttackRate   int // min ticks between attacks
	AttackWindup int // extra ticks the attack pose is held

	Damage    float64 // total damage, split between everyone hit
	Knockback float64 // total horizontal knockback, split likewise

	// Hitbox: a Reach-wide strip from ReachBelow under to ReachAbove over
	// the strike point
	Reach      float64
	ReachBelow float64
	ReachAbove float64

	// Strike point height above the feet per pose
	StandingStrike  float64
	CrouchingStrike float64
	ClimbingStrike  float64

	// Horizontal strike offset while on a tree; scaled when looking away
	ClimbingStrikeOffset float64
	LookingAwayScale     float64

	BloodSprays int
	BloodJitter Vector // full width of the random spread added to knockback
}

// BodyConfig contains pose dimensions used for hit tests
type BodyConfig struct {
	Running      Size
	ClimbingNear Size // looking across the trunk
	ClimbingAway Size // looking out from the trunk
	Airborne     Size
	Standing     Size

	ClimbingAwayOffset float64

	RunningSpeed float64 // speed above which a grounded character is running
	FallingSpeed float64 // vertical speed at or below which the falling pose shows

	CrouchSmokeSpeed  float64
	CrouchSmokeChance int // one in N ticks
}

// ClimbConfig contains tree-climbing configuration values
type ClimbConfig struct {
	UpRate       float64
	DownRate     float64
	LookForce    float64
	GrabDistance float64
}

// TreeConfig contains bamboo tree configuration values
type TreeConfig struct {
	PieceHeight   float64
	Radius        float64
	Thinning      float64 // radius ratio per segment
	DefaultHeight int

	// Climbers stay at least this many segments below the top
	TopMargin float64

	WindPhasePerX     float64
	SwayPrimary       float64
	SwaySecondary     float64
	SwaySecondaryFreq float64

	// Horizontal margin added to the spatial index bounds to cover sway
	IndexMargin float64
}

// AIConfig contains opponent behaviour configuration values
type AIConfig struct {
	SleepDistance  float64 // don't engage targets further away than this
	AttackRate     int     // min ticks between attacks
	RerollInterval int
	SnipeChance    int // one in N rerolls picks treesnipe

	TreePickInterval    int
	TreePickMaxDistance float64
	TreeSideBias        float64
	MountDistance       float64

	TreeFightClimbUp     float64
	TreeFightClimbDown   float64
	TreeFightAttackRange float64

	ApproachFar     float64
	ApproachNear    float64
	ApproachRecheck int

	AwaitRange float64

	SnipeAltitude  float64
	SnipeAimHeight float64

	TargetClimbingHeight float64
}

// ProjectileConfig contains shuriken configuration values
type ProjectileConfig struct {
	Mass         float64
	Friction     float64
	Speed        float64
	LaunchHeight float64
	Spin         float64
	Damage       float64
	RestTimeout  int
	HitSize      float64
}

// EffectsConfig contains blood, corpse and smoke configuration values
type EffectsConfig struct {
	BloodMass float64

	CorpseMass         float64
	CorpsePhysicsTicks int
	CorpseRotateTicks  int
	CorpseRemoveTick   int
	CorpseSinkRate     float64
	CorpseMaxRotation  float64

	SmokeGravity     Vector
	SmokeDrag        float64
	SmokeMinLifetime int
	SmokeLifeSpread  int
	SmokeSpin        float64
	SmokeMinScale    float64
	SmokeScaleSpread float64
	SmokeGrowth      float64
	PuffCount        int
	PuffSpeed        float64

	CampfireChance      int // one in N ticks
	CampfireSmokeScale  float64
	CampfireSmokeHeight float64
}

// LevelConfig contains level-wide configuration values
type LevelConfig struct {
	Width        float64
	Height       float64
	GroundHeight float64
	CellSize     int

	PlayerKind    string
	PlayerSpawnX  float64
	StartingLives int
	RespawnDelay  int // ticks

	TickRate int
}

// CameraConfig contains camera follow configuration values
type CameraConfig struct {
	FollowSmoothing     float64
	LookAheadDistance   float64
	LookAheadSmoothing  float64
	LookAheadThreshold  float64 // min speed before the look-ahead moves
	DeathShakeIntensity float64
	DeathShakeDuration  int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawBounds bool
	DrawTrees  bool
}

var C *Config
var Physics PhysicsConfig
var Characters map[string]CharacterTypeConfig
var Combat CombatConfig
var Body BodyConfig
var Climb ClimbConfig
var Tree TreeConfig
var AI AIConfig
var Projectile ProjectileConfig
var Effects EffectsConfig
var Level LevelConfig
var Camera CameraConfig
var Debug DebugConfig

// Character type names
const (
	Ninja   = "Ninja"
	Samurai = "Samurai"
)

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Brown      = color.RGBA{R: 120, G: 90, B: 50, A: 255}
	Grey       = color.RGBA{R: 160, G: 160, B: 160, A: 160}
	LightRed   = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Sky        = color.RGBA{R: 200, G: 220, B: 235, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 576,
	}

	Physics = PhysicsConfig{
		Gravity:         Vector{X: 0, Y: -2.3},
		GroundEpsilon:   0.5,
		DefaultMass:     15,
		DefaultFriction: 0.6,
	}

	Characters = map[string]CharacterTypeConfig{
		Ninja: {
			Name:            Ninja,
			MaxHealth:       10,
			Mass:            10,
			Friction:        0.6,
			AirAccel:        Vector{X: 5, Y: 0},
			GroundAccel:     15,
			MaxRunSpeed:     20,
			JumpImpulse:     Vector{X: 0, Y: 30},
			TreeJumpImpulse: Vector{X: 10, Y: 15},
			StandingSpeed:   0.01,
		},
		Samurai: {
			Name:            Samurai,
			MaxHealth:       30,
			Mass:            10,
			Friction:        0.6,
			AirAccel:        Vector{X: 5, Y: 0},
			GroundAccel:     15,
			MaxRunSpeed:     20,
			JumpImpulse:     Vector{X: 0, Y: 30},
			TreeJumpImpulse: Vector{X: 10, Y: 15},
			StandingSpeed:   1,
			SpawnSmoke:      true,
		},
	}

	Combat = CombatConfig{
		AttackRate:   20,
		AttackWindup: 6,

		Damage:    10,
		Knockback: 50,

		Reach:      180,
		ReachBelow: 15,
		ReachAbove: 25,

		StandingStrike:  100,
		CrouchingStrike: 72,
		ClimbingStrike:  60,

		ClimbingStrikeOffset: 30,
		LookingAwayScale:     1.2,

		BloodSprays: 4,
		BloodJitter: Vector{X: 20, Y: 10},
	}

	Body = BodyConfig{
		Running:      Size{W: 76, H: 130},
		ClimbingNear: Size{W: 50, H: 130},
		ClimbingAway: Size{W: 80, H: 130},
		Airborne:     Size{W: 80, H: 130},
		Standing:     Size{W: 60, H: 150},

		ClimbingAwayOffset: 40,

		RunningSpeed: 1,
		FallingSpeed: -20,

		CrouchSmokeSpeed:  2,
		CrouchSmokeChance: 4,
	}

	Climb = ClimbConfig{
		UpRate:       10,
		DownRate:     20,
		LookForce:    10,
		GrabDistance: 30,
	}

	Tree = TreeConfig{
		PieceHeight:   96,
		Radius:        12.5,
		Thinning:      math.Pow(0.96, 1.5),
		DefaultHeight: 9,

		TopMargin: 2,

		WindPhasePerX:     0.1,
		SwayPrimary:       0.4,
		SwaySecondary:     0.2,
		SwaySecondaryFreq: 0.21,

		IndexMargin: 300,
	}

	AI = AIConfig{
		SleepDistance:  700,
		AttackRate:     50,
		RerollInterval: 30,
		SnipeChance:    6,

		TreePickInterval:    10,
		TreePickMaxDistance: 300,
		TreeSideBias:        100,
		MountDistance:       20,

		TreeFightClimbUp:     50,
		TreeFightClimbDown:   20,
		TreeFightAttackRange: 200,

		ApproachFar:     300,
		ApproachNear:    150,
		ApproachRecheck: 60,

		AwaitRange: 400,

		SnipeAltitude:  400,
		SnipeAimHeight: 80,

		TargetClimbingHeight: 2,
	}

	Projectile = ProjectileConfig{
		Mass:         0.1,
		Friction:     0.6,
		Speed:        30,
		LaunchHeight: 80,
		Spin:         30,
		Damage:       10,
		RestTimeout:  100,
		HitSize:      10,
	}

	Effects = EffectsConfig{
		BloodMass: 0.2,

		CorpseMass:         15,
		CorpsePhysicsTicks: 200,
		CorpseRotateTicks:  15,
		CorpseRemoveTick:   350,
		CorpseSinkRate:     0.5,
		CorpseMaxRotation:  50,

		SmokeGravity:     Vector{X: 0, Y: 0.5},
		SmokeDrag:        0.9,
		SmokeMinLifetime: 30,
		SmokeLifeSpread:  30,
		SmokeSpin:        30,
		SmokeMinScale:    0.3,
		SmokeScaleSpread: 0.4,
		SmokeGrowth:      0.02,
		PuffCount:        10,
		PuffSpeed:        0.05,

		CampfireChance:      11,
		CampfireSmokeScale:  0.1,
		CampfireSmokeHeight: 40,
	}

	Level = LevelConfig{
		Width:        3200,
		Height:       768,
		GroundHeight: 60,
		CellSize:     64,

		PlayerKind:    Samurai,
		PlayerSpawnX:  60,
		StartingLives: 4,
		RespawnDelay:  180,

		TickRate: 60,
	}

	Camera = CameraConfig{
		FollowSmoothing:     0.1,
		LookAheadDistance:   150,
		LookAheadSmoothing:  0.05,
		LookAheadThreshold:  1,
		DeathShakeIntensity: 6,
		DeathShakeDuration:  20,
	}

	Debug = DebugConfig{
		DrawBounds: true,
		DrawTrees:  true,
	}
}
