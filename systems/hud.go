package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/bamboo/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	livesMargin  = 5
	lifeSize     = 10
)

// DrawHUD renders the player's health bar and lives counter in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	slots := PlayerSlots(ecs.World)
	if len(slots) == 0 {
		return
	}
	slot := slots[0]
	lives := components.Lives.Get(slot)

	// Background (dark gray)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	if e := playerCharacterFor(ecs.World, slot); e != nil {
		ratio := float32(components.Health.Get(e).Fraction())
		vector.FillRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth)*ratio, float32(hudBarHeight),
			color.RGBA{40, 220, 40, 255}, false)
	}

	livesY := float32(hudMargin + hudBarHeight + livesMargin)
	for i := 0; i < lives.Lives; i++ {
		x := float32(hudMargin + i*(lifeSize+livesMargin))
		vector.FillRect(screen, x, livesY, lifeSize, lifeSize, color.RGBA{220, 40, 40, 255}, false)
	}

	switch {
	case lives.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", hudMargin, hudMargin*2+hudBarHeight+lifeSize+livesMargin)
	case lives.RespawnTimer > 0:
		msg := fmt.Sprintf("respawn in %d", lives.RespawnTimer)
		ebitenutil.DebugPrintAt(screen, msg, hudMargin, hudMargin*2+hudBarHeight+lifeSize+livesMargin)
	}
}
