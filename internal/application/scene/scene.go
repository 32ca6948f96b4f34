// Package scene defines the Scene interface for game screens.
//
// The ebiten host runs Update once per fixed simulation tick and Draw once per
// rendered frame, so a scene never draws from inside Update.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen (playing, level hot reload wrapper, etc.)
//
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for releasing watchers and other resources.
	OnExit()
}
