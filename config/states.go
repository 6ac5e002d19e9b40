package config

// StateID identifies an entity's pose for presentation.
type StateID int

const (
	StateNone StateID = iota - 1

	Standing
	Running
	Jumping
	Falling
	Airborne
	Crouching
	Attacking
	CrouchingAttacking
	Clinging
	ClingingLookingOut
	ClingingLookingAcross
	Climbing
	SlidingDown
	LookingOutAttacking
	LookingAcrossAttacking
	Dying
	Dead

	Spray
	Smoke
	Shuriken
	BambooTree
	Torii
	EatingSamurai
	Campfire
)

var stateNames = map[StateID]string{
	StateNone:              "none",
	Standing:               "standing",
	Running:                "running",
	Jumping:                "jumping",
	Falling:                "falling",
	Airborne:               "airborne",
	Crouching:              "crouching",
	Attacking:              "attacking",
	CrouchingAttacking:     "crouching-attacking",
	Clinging:               "clinging",
	ClingingLookingOut:     "clinging-lookingout",
	ClingingLookingAcross:  "clinging-lookingacross",
	Climbing:               "climbing",
	SlidingDown:            "clinging-slidingdown",
	LookingOutAttacking:    "clinging-lookingout-attacking",
	LookingAcrossAttacking: "clinging-lookingacross-attacking",
	Dying:                  "dying",
	Dead:                   "dead",
	Spray:                  "spray",
	Smoke:                  "smoke",
	Shuriken:               "shuriken",
	BambooTree:             "bamboo",
	Torii:                  "torii",
	EatingSamurai:          "eating",
	Campfire:               "campfire",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Direction is a horizontal facing.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Sign is -1 for left, +1 for right and 0 for none.
func (d Direction) Sign() float64 {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	}
	return 0
}

// Opposite returns the reverse facing.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "l"
	case DirRight:
		return "r"
	}
	return "-"
}

// StrategyID is an opponent's current plan.
type StrategyID int

const (
	StrategyNone StrategyID = iota
	StrategyApproach
	StrategyClimbTree
	StrategyTreeFight
	StrategyAwait
	StrategyTreeSnipe
	StrategyTreeSniping
)

func (s StrategyID) String() string {
	switch s {
	case StrategyApproach:
		return "approach"
	case StrategyClimbTree:
		return "climbtree"
	case StrategyTreeFight:
		return "treefight"
	case StrategyAwait:
		return "await"
	case StrategyTreeSnipe:
		return "treesnipe"
	case StrategyTreeSniping:
		return "treesniping"
	}
	return "none"
}
