// Package game provides the ebiten host that drives scenes through the
// fixed-timestep loop and handles Scene transitions.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/snowtux/internal/application/loop"
	"github.com/younwookim/snowtux/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	loop  *loop.Loop
	meter *loop.Meter
	err   error
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// SetLoop makes every Update run the ticks due on lp instead of exactly one.
// Pair it with ebiten.SetTPS(ebiten.SyncWithFPS).
func (g *Game) SetLoop(lp *loop.Loop, meter *loop.Meter) {
	g.loop = lp
	g.meter = meter
	g.dt = lp.Tick().Seconds()
}

// Update advances the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.loop == nil {
		g.step()
		return g.takeErr()
	}

	res := g.loop.Frame(g.step, nil)
	if g.meter != nil {
		if s, ok := g.meter.Observe(res); ok {
			log.Printf("frames: %d, ticks: %d, dropped: %d", s.Frames, s.Ticks, s.Dropped)
		}
	}
	return g.takeErr()
}

func (g *Game) step() {
	if g.err != nil {
		return
	}
	next, err := g.current.Update(g.dt)
	if err != nil {
		g.err = err
		return
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
}

func (g *Game) takeErr() error {
	err := g.err
	g.err = nil
	return err
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
