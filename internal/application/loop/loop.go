// Package loop runs a fixed-timestep simulation against a wall clock.
//
// Each Frame call runs as many ticks as the clock demands, capped so that a
// stalled host does not spiral: the backlog beyond the cap is dropped and the
// deadline snaps forward. Rendering happens exactly once per call.
package loop

import "time"

// DefaultMaxCatchUp is the tick cap per frame
const DefaultMaxCatchUp = 5

// Clock abstracts time.Now for tests
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now implements Clock
func (SystemClock) Now() time.Time { return time.Now() }

// Result reports what one Frame call did
type Result struct {
	Ticks   int
	Dropped int
}

// Loop tracks the next tick deadline
type Loop struct {
	clock      Clock
	tick       time.Duration
	maxCatchUp int

	deadline time.Time
	started  bool
}

// New creates a loop ticking every tick. maxCatchUp <= 0 uses DefaultMaxCatchUp.
func New(clock Clock, tick time.Duration, maxCatchUp int) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	if maxCatchUp <= 0 {
		maxCatchUp = DefaultMaxCatchUp
	}
	return &Loop{
		clock:      clock,
		tick:       tick,
		maxCatchUp: maxCatchUp,
	}
}

// Tick returns the fixed step duration
func (l *Loop) Tick() time.Duration { return l.tick }

// Frame runs the due ticks through step, then calls render once. The first
// call only arms the deadline.
func (l *Loop) Frame(step func(), render func()) Result {
	now := l.clock.Now()
	var res Result

	if !l.started {
		l.started = true
		l.deadline = now.Add(l.tick)
	} else {
		for !now.Before(l.deadline) && res.Ticks < l.maxCatchUp {
			step()
			res.Ticks++
			l.deadline = l.deadline.Add(l.tick)
		}
		if !now.Before(l.deadline) {
			res.Dropped = int(now.Sub(l.deadline)/l.tick) + 1
			l.deadline = now.Add(l.tick)
		}
	}

	if render != nil {
		render()
	}
	return res
}
