package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateFinished, "Finished"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestPlayerState_String(t *testing.T) {
	tests := []struct {
		state    PlayerState
		expected string
	}{
		{Alive, "Alive"},
		{Dead, "Dead"},
		{Ascended, "Ascended"},
		{PlayerState(-1), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestStateConstants(t *testing.T) {
	// Alive must be the zero value so a fresh simulation starts alive
	assert.Equal(t, PlayerState(0), Alive)
	assert.Equal(t, GameState(0), StatePlaying)
}
