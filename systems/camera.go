package systems

import (
	"math"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the first player character along the level, looking
// ahead in the direction they run.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	players := PlayerCharacters(e.World)
	if len(players) > 0 {
		body := components.Body.Get(players[0])
		dir := components.Character.Get(players[0]).Dir

		// Only update look-ahead when player is moving - freeze offset when idle
		if math.Abs(body.Vel.X()) > cfg.Camera.LookAheadThreshold {
			target := dir.Sign() * cfg.Camera.LookAheadDistance
			camera.LookAheadX += (target - camera.LookAheadX) * cfg.Camera.LookAheadSmoothing
		}

		targetX := body.Pos.X() + camera.LookAheadX
		minX := float64(cfg.C.Width) / 2
		maxX := minX
		if level := levelOf(e.World); level != nil {
			maxX = math.Max(minX, level.Width-minX)
		}
		targetX = math.Max(minX, math.Min(maxX, targetX))
		camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	}
	camera.Position.Y = float64(cfg.C.Height) / 2

	updateScreenShake(cameraEntry, camera)
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := math.Max(0, float64(shake.Duration-shake.Elapsed)/float64(shake.Duration))
	intensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * intensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake, unless a stronger one is
// already running.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			*shake = components.ScreenShakeData{Intensity: intensity, Duration: duration}
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// ShakeOnPlayerDeath shakes the screen when a player character dies.
func ShakeOnPlayerDeath(w donburi.World, event components.CharacterDiedEvent) {
	if event.Player {
		TriggerScreenShake(w, cfg.Camera.DeathShakeIntensity, cfg.Camera.DeathShakeDuration)
	}
}

// CameraOffset is the world point at the bottom left of a screen of the
// given size.
func CameraOffset(w donburi.World, width, height int) (float64, float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0
	}
	pos := components.Camera.Get(cameraEntry).Position
	return pos.X - float64(width)/2, pos.Y - float64(height)/2
}
