package system

// InputState is the per-tick input snapshot handed to the simulation
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
	// Carry is the modifier held to pick up and carry a stunned ice block
	Carry bool
	// Skip advances to the next level; Confirm restarts after the last one.
	// Hosts set both only on the tick the key goes down.
	Skip    bool
	Confirm bool
}

// Horizontal returns -1, 0 or 1. Opposite keys cancel each other.
func (in InputState) Horizontal() int {
	switch {
	case in.Right && !in.Left:
		return 1
	case in.Left && !in.Right:
		return -1
	}
	return 0
}
