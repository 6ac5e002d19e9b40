package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/bamboo/assets"
	"github.com/automoto/bamboo/components"
	"github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/scenes"
	"github.com/automoto/bamboo/sim"
	"github.com/automoto/bamboo/systems"
)

func main() {
	levelName := flag.String("level", "forest", "Level to run")
	levelDir := flag.String("levels", "", "Directory of .tmx levels (default: bundled levels)")
	ticks := flag.Int("ticks", 3600, "Ticks to simulate (0 = until interrupted)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	tuning := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	player := flag.String("player", config.Level.PlayerKind, "Player character kind")
	seed := flag.Int64("seed", 42, "Random seed")
	flag.Parse()

	if *tuning != "" {
		f, err := os.Open(*tuning)
		if err != nil {
			log.Fatalf("Failed to open tuning: %v", err)
		}
		err = config.LoadTuning(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		log.Printf("Applied tuning from %s", *tuning)
	}
	systems.SetRandSource(rand.NewSource(*seed))

	loader := assets.NewLevelLoader()
	if *levelDir != "" {
		loader = assets.NewLevelLoaderFS(os.DirFS(*levelDir), ".")
	}
	data, err := loader.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	level, err := scenes.NewLevel(data)
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}
	if err := level.SpawnPlayer(*player); err != nil {
		log.Fatalf("Failed to spawn player: %v", err)
	}

	deaths := map[string]int{}
	level.OnDeath(func(ev components.CharacterDiedEvent) {
		deaths[ev.Kind]++
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := sim.NewGameLoop(&autopilot{level: level}, *tickRate)
	loop.StopAfter(*ticks)
	loop.OnTick(func(tick int) {
		if tick%(config.Level.TickRate*10) == 0 {
			log.Printf("Tick %d: %d characters, %d lives left", tick, len(level.Characters()), level.Lives())
		}
		if level.GameOver() || level.Completed() {
			stop()
		}
	})

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Game loop error: %v", err)
	}

	log.Printf("Simulated %d ticks: completed=%v game over=%v deaths=%v",
		loop.Ticks(), level.Completed(), level.GameOver(), deaths)
}

// autopilot plays the level by running right and swinging at anything
// close.
type autopilot struct {
	level *scenes.Level
}

func (a *autopilot) Update() {
	if control := a.level.Control(); control != nil {
		control.Press(config.ActionRight)
		if a.level.Tick()%15 == 0 {
			control.Press(config.ActionAttack)
		}
		if a.level.Tick()%90 == 0 {
			control.Press(config.ActionJump)
		}
	}
	a.level.Update()
}
