package components

import (
	cfg "github.com/automoto/bamboo/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions, as polled from the keyboard and gamepads.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()

// ControlData latches the commands a player issued for the coming tick.
// The player controller consumes and clears them.
type ControlData struct {
	Commands [cfg.ActionCount]bool
}

func (c *ControlData) Press(actions ...cfg.ActionID) {
	for _, a := range actions {
		c.Commands[a] = true
	}
}

func (c *ControlData) Clear() {
	c.Commands = [cfg.ActionCount]bool{}
}

var Control = donburi.NewComponentType[ControlData]()
