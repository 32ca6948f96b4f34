package ecs

import (
	"math"

	"github.com/younwookim/snowtux/internal/domain/entity"
)

// Rules adjusts the resolver for one mover
type Rules struct {
	// Player stops at x=0, and at the right screen edge when RightLocked is set
	Player      bool
	RightLocked bool
	// Ignore is never treated as blocking (a carried ice block)
	Ignore Handle
}

// CanMove returns how many pixels h can travel along axis at its current
// speed, signed by direction. It steps one pixel at a time and stops when a
// blocking neighbour would become exactly adjacent to the leading edge.
// Upward motion into a blocker reverses SpeedY. The entity is left where it was.
func (w *World) CanMove(h Handle, axis Axis, r Rules) int {
	e := w.Get(h)
	if e == nil {
		return 0
	}

	speed := e.SpeedX
	if axis == Vertical {
		speed = e.SpeedY
	}
	steps := int(math.Abs(speed))
	dir := 1
	if speed < 0 {
		dir = -1
	}

	origX, origY := e.X, e.Y
	moved := 0
	for i := 0; i < steps; i++ {
		if axis == Vertical {
			e.Y = origY + dir*i
			if w.blockedY(h, e, dir, r) {
				break
			}
		} else {
			e.X = origX + dir*i
			if w.blockedX(h, e, dir, r) {
				break
			}
		}
		moved += dir
	}
	e.X, e.Y = origX, origY
	return moved
}

func (w *World) blockedX(h Handle, e *entity.Entity, dir int, r Rules) bool {
	if r.Player {
		if dir < 0 && e.Left()-1 < 0 {
			return true
		}
		if dir > 0 && r.RightLocked && e.Right()+1 >= w.ViewWidth {
			return true
		}
	}
	for _, nh := range w.Query(h, Horizontal) {
		if nh == r.Ignore {
			continue
		}
		n := w.Get(nh)
		if n.Kind.PassableX() {
			continue
		}
		if dir > 0 && e.Right()+1 == n.Left() {
			return true
		}
		if dir < 0 && e.Left()-1 == n.Right() {
			return true
		}
	}
	return false
}

func (w *World) blockedY(h Handle, e *entity.Entity, dir int, r Rules) bool {
	if dir > 0 && e.Bottom()+1 >= w.ViewHeight {
		return true
	}
	up := dir < 0
	for _, nh := range w.Query(h, Vertical) {
		if nh == r.Ignore {
			continue
		}
		n := w.Get(nh)
		if n.Kind.PassableY(up) {
			continue
		}
		if !up && e.Bottom()+1 == n.Top() {
			return true
		}
		if up && e.Top()-1 == n.Bottom() {
			e.SpeedY = -e.SpeedY // bonk
			return true
		}
	}
	return false
}

// FloorUnder reports whether a blocking entity sits directly below box
func (w *World) FloorUnder(box entity.Box, exclude Handle) bool {
	for _, nh := range w.QueryBox(Expand(box, Vertical), exclude) {
		n := w.Get(nh)
		if !n.Kind.PassableY(false) && box.Bottom()+1 == n.Top() {
			return true
		}
	}
	return false
}

// Supported reports whether h rests on something or on the screen floor
func (w *World) Supported(h Handle) bool {
	e := w.Get(h)
	if e == nil {
		return false
	}
	if e.Bottom()+1 >= w.ViewHeight {
		return true
	}
	return w.FloorUnder(e.Box, h)
}

// AtFloor reports whether h has reached the bottom of the screen
func (w *World) AtFloor(h Handle) bool {
	e := w.Get(h)
	return e != nil && e.Bottom()+1 >= w.ViewHeight
}

// Sign returns -1, 0 or 1
func Sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Abs returns |x|
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
