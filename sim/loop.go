// Package sim runs a level without a window.
package sim

import (
	"context"
	"log"
	"time"
)

// Ticker is anything advanced one fixed step at a time.
type Ticker interface {
	Update()
}

type GameLoop struct {
	ticker   Ticker
	tickRate int
	maxTicks int
	ticks    int
	onTick   func(tick int)
}

// NewGameLoop returns a loop updating t tickRate times a second. A zero
// tickRate runs as fast as possible.
func NewGameLoop(t Ticker, tickRate int) *GameLoop {
	return &GameLoop{
		ticker:   t,
		tickRate: tickRate,
	}
}

// StopAfter ends the loop after n ticks; zero means never.
func (g *GameLoop) StopAfter(n int) {
	g.maxTicks = n
}

// OnTick registers fn to run after every tick.
func (g *GameLoop) OnTick(fn func(tick int)) {
	g.onTick = fn
}

func (g *GameLoop) Ticks() int {
	return g.ticks
}

// Run ticks until ctx is done or the tick limit is reached.
func (g *GameLoop) Run(ctx context.Context) error {
	log.Printf("Game loop started at %d ticks/second", g.tickRate)
	defer log.Println("Game loop stopped")

	if g.tickRate <= 0 {
		for !g.done() {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.tick()
		}
		return nil
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	for !g.done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			g.tick()
		}
	}
	return nil
}

func (g *GameLoop) done() bool {
	return g.maxTicks > 0 && g.ticks >= g.maxTicks
}

func (g *GameLoop) tick() {
	g.ticker.Update()
	g.ticks++
	if g.onTick != nil {
		g.onTick(g.ticks)
	}
}
