package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its bounds in the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpacePad offsets collision space coordinates so that entities slightly
// outside the level still land in a cell.
const SpacePad = 1024

var Space = donburi.NewComponentType[resolv.Space]()
