package systems

import (
	"image/color"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug draws the simulation as outlines: ground, trees, character
// bounds, projectiles and particles as seen by the camera.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := CameraOffset(ecs.World, width, height)
	toScreen := func(x, y float64) (float32, float32) {
		return float32(x - camX), float32(float64(height) - (y - camY))
	}

	screen.Fill(cfg.Sky)

	// Ground
	field := groundOf(ecs.World)
	const step = 16
	for sx := 0; sx < width; sx += step {
		x0, x1 := camX+float64(sx), camX+float64(sx+step)
		ax, ay := toScreen(x0, field.HeightAt(x0))
		bx, by := toScreen(x1, field.HeightAt(x1))
		vector.StrokeLine(screen, ax, ay, bx, by, 2, cfg.Brown, false)
	}

	if cfg.Debug.DrawTrees {
		for _, e := range Climbables(ecs.World) {
			tree := components.Climbable.Get(e)
			for i := 0; i < tree.Height; i++ {
				ax, ay := toScreen(tree.Point(i).XY())
				bx, by := toScreen(tree.Point(i + 1).XY())
				vector.StrokeLine(screen, ax, ay, bx, by, float32(2*tree.Radius(i).Mag()), cfg.Green, false)
			}
			for _, f := range tree.Foliage {
				x, y := toScreen(f.Pos.XY())
				vector.FillRect(screen, x-4, y-4, 8, 8, cfg.LightGreen, false)
			}
		}
	}

	if cfg.Debug.DrawBounds {
		for _, e := range Characters(ecs.World) {
			b := Bounds(ecs.World, e)
			x, y := toScreen(b.L, b.T())
			c := cfg.White
			if components.Character.Get(e).Player {
				c = cfg.Orange
			}
			strokeRect(screen, x, y, float32(b.W), float32(b.H), c)

			health := components.Health.Get(e).Fraction()
			vector.FillRect(screen, x, y-6, float32(b.W*health), 3, cfg.Red, false)
		}
	}

	drawPoints(ecs.World, screen, tags.Debris, toScreen, cfg.Red, 3)
	drawPoints(ecs.World, screen, tags.Shuriken, toScreen, cfg.White, 4)
	drawPoints(ecs.World, screen, tags.Smoke, toScreen, cfg.Grey, 6)
	drawPoints(ecs.World, screen, tags.Corpse, toScreen, cfg.LightRed, 10)
	drawPoints(ecs.World, screen, tags.Scenery, toScreen, cfg.Brown, 12)
}

func drawPoints(w donburi.World, screen *ebiten.Image, tag eacher, toScreen func(x, y float64) (float32, float32), c color.Color, size float32) {
	tag.Each(w, func(e *donburi.Entry) {
		x, y := toScreen(components.Body.Get(e).Pos.XY())
		vector.FillRect(screen, x-size/2, y-size, size, size, c, false)
	})
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
