// Package playing provides the main gameplay scene.
package playing

import (
	"log"

	"github.com/younwookim/snowtux/internal/application/hud"
	"github.com/younwookim/snowtux/internal/application/scene"
	"github.com/younwookim/snowtux/internal/application/state"
	"github.com/younwookim/snowtux/internal/application/system"
)

// Playing is the main gameplay scene
type Playing struct {
	session *system.Session
	input   Input
	state   state.GameState
	banner  hud.Banner
	reloads <-chan string

	screenW int
	screenH int
}

// New creates a new Playing scene around a session that already has a level
// loaded. A nil input reads the keyboard.
func New(session *system.Session, input Input, screenW, screenH int) *Playing {
	if input == nil {
		input = &Keyboard{}
	}
	p := &Playing{
		session: session,
		input:   input,
		state:   state.StatePlaying,
		screenW: screenW,
		screenH: screenH,
	}
	p.banner.Push(session.Events())
	return p
}

// WatchReloads reloads the current level whenever its id arrives on ch
func (p *Playing) WatchReloads(ch <-chan string) {
	p.reloads = ch
}

// Update runs one simulation tick (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	c := p.input.Poll()
	p.applyReloads()

	switch p.state {
	case state.StatePaused:
		if c.Pause {
			p.state = state.StatePlaying
		}
		return nil, nil
	default:
		if c.Pause {
			p.state = state.StatePaused
			return nil, nil
		}
	}

	if err := p.session.Tick(c.InputState); err != nil {
		return nil, err
	}
	p.banner.Tick()
	p.banner.Push(p.session.Events())

	if p.session.Status().Finished {
		p.state = state.StateFinished
	} else {
		p.state = state.StatePlaying
	}
	return nil, nil // nil = stay on this scene
}

func (p *Playing) applyReloads() {
	for p.reloads != nil {
		select {
		case id, ok := <-p.reloads:
			if !ok {
				p.reloads = nil
				return
			}
			if id != p.session.Status().LevelID {
				continue
			}
			if err := p.session.Reload(); err != nil {
				log.Printf("Reload of %s failed, keeping the running level: %v", id, err)
				continue
			}
			log.Printf("Level reloaded: %s", id)
		default:
			return
		}
	}
}

// State returns whether the scene is playing, paused or finished
func (p *Playing) State() state.GameState {
	return p.state
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
