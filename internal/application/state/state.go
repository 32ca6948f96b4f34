package state

// GameState represents the current state of the front-end
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateFinished
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// PlayerState is the fate of the player within the current level
type PlayerState int

const (
	Alive PlayerState = iota
	Dead
	Ascended
)

// String returns the string representation of the player state
func (s PlayerState) String() string {
	switch s {
	case Alive:
		return "Alive"
	case Dead:
		return "Dead"
	case Ascended:
		return "Ascended"
	default:
		return "Unknown"
	}
}
