package systems

import (
	"log"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnCharacterDied books a player's death against their slot: a respawn if
// lives remain, game over otherwise.
func OnCharacterDied(w donburi.World, event components.CharacterDiedEvent) {
	if !event.Player || !w.Valid(event.Slot) {
		return
	}
	slot := w.Entry(event.Slot)
	lives := components.Lives.Get(slot)
	if lives.Character == event.Entity {
		lives.Character = donburi.Null
	}

	if lives.Lives > 0 {
		lives.RespawnTimer = cfg.Level.RespawnDelay
		log.Printf("Player died, %d lives left", lives.Lives)
		return
	}
	lives.GameOver = true
	log.Println("Game over")
}

// UpdateLives counts down to respawns and notices when a player has
// reached the end of the level.
func UpdateLives(ecs *ecs.ECS) {
	level := levelOf(ecs.World)

	for _, slot := range PlayerSlots(ecs.World) {
		lives := components.Lives.Get(slot)

		if e := playerCharacterFor(ecs.World, slot); e != nil && level != nil {
			if components.Body.Get(e).Pos.X() > level.Width && !level.Completed {
				level.Completed = true
				log.Println("Level completed")
			}
		}

		if lives.RespawnTimer <= 0 {
			continue
		}
		lives.RespawnTimer--
		if lives.RespawnTimer > 0 {
			continue
		}
		if _, err := factory.CreatePlayerCharacter(ecs, slot, cfg.Level.PlayerSpawnX); err != nil {
			log.Printf("Respawn failed: %v", err)
			continue
		}
		log.Printf("Player respawned, %d lives left", lives.Lives)
	}
}

// GameOver reports whether every player has run out of lives.
func GameOver(w donburi.World) bool {
	slots := PlayerSlots(w)
	if len(slots) == 0 {
		return false
	}
	for _, slot := range slots {
		if !components.Lives.Get(slot).GameOver {
			return false
		}
	}
	return true
}
