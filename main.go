package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/bamboo/assets"
	"github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/scenes"
	"github.com/automoto/bamboo/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	level  *scenes.Level
}

func NewGame(level *scenes.Level) *Game {
	return &Game{
		bounds: image.Rectangle{},
		level:  level,
	}
}

func (g *Game) Update() error {
	input := systems.GetOrCreateInput(g.level.ECS())
	systems.UpdateInput(g.level.ECS())

	if input.JustPressed(config.ActionRestart) || g.level.GameOver() {
		held := *input
		if err := g.level.Restart(); err != nil {
			return err
		}
		*systems.GetOrCreateInput(g.level.ECS()) = held
		return nil
	}
	g.level.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.level.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "forest", "Level to play")
	tuning := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	player := flag.String("player", config.Level.PlayerKind, "Player character kind")
	flag.BoolVar(&config.Debug.DrawBounds, "bounds", config.Debug.DrawBounds, "Draw character bounds")
	flag.BoolVar(&config.Debug.DrawTrees, "trees", config.Debug.DrawTrees, "Draw trees")
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

	data, err := assets.NewLevelLoader().LoadLevel(*levelName)
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

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Bamboo")
	ebiten.SetTPS(config.Level.TickRate)

	if err := ebiten.RunGame(NewGame(level)); err != nil {
		log.Fatal(err)
	}
}
