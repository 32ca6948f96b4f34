package ecs

// Gravity holds the integrator constants in pixels/tick
type Gravity struct {
	Accel   float64
	MaxFall float64
}

// ApplyGravity runs one gravity step for h. A blocked entity gets SpeedY reset
// to 1 so it keeps probing the ground; a moving one accelerates and moves.
// It returns true when h is resting on something.
func (w *World) ApplyGravity(h Handle, g Gravity, r Rules) bool {
	e := w.Get(h)
	if e == nil || !e.Gravity || e.Kind.Terminal() {
		return false
	}

	falling := e.SpeedY >= 0
	dy := w.CanMove(h, Vertical, r)
	if dy == 0 {
		e.SpeedY = 1
		return falling
	}

	e.SpeedY += g.Accel
	if g.MaxFall > 0 && e.SpeedY > g.MaxFall {
		e.SpeedY = g.MaxFall
	}
	w.MoveBy(h, 0, dy)
	return false
}
