package tags

import "github.com/yohamta/donburi"

var (
	Character  = donburi.NewTag().SetName("Character")
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Tree       = donburi.NewTag().SetName("Tree")
	Debris     = donburi.NewTag().SetName("Debris")
	Corpse     = donburi.NewTag().SetName("Corpse")
	Smoke      = donburi.NewTag().SetName("Smoke")
	Shuriken   = donburi.NewTag().SetName("Shuriken")
	Scenery    = donburi.NewTag().SetName("Scenery")
	PlayerSlot = donburi.NewTag().SetName("PlayerSlot")
)

// Resolv tags for hit tests
const (
	ResolvCharacter = "character"
	ResolvShuriken  = "shuriken"
	ResolvProbe     = "probe"
)
