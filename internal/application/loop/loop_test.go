package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

const tick = 10 * time.Millisecond

func newTestLoop() (*Loop, *fakeClock) {
	c := &fakeClock{now: time.Unix(1000, 0)}
	return New(c, tick, 5), c
}

type counter struct {
	steps, renders int
}

func (c *counter) frame(l *Loop) Result {
	return l.Frame(func() { c.steps++ }, func() { c.renders++ })
}

func TestFrame_FirstCallOnlyArms(t *testing.T) {
	l, _ := newTestLoop()
	var c counter

	res := c.frame(l)

	assert.Equal(t, Result{}, res)
	assert.Equal(t, 0, c.steps)
	assert.Equal(t, 1, c.renders)
}

func TestFrame_RunsDueTicks(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    Result
	}{
		{"not yet due", tick - time.Millisecond, Result{}},
		{"exactly one", tick, Result{Ticks: 1}},
		{"three and a half", 3*tick + tick/2, Result{Ticks: 3}},
		{"at the cap", 5 * tick, Result{Ticks: 5}},
		{"ten behind", 10 * tick, Result{Ticks: 5, Dropped: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, clock := newTestLoop()
			var c counter
			c.frame(l)

			clock.Advance(tt.elapsed)
			res := c.frame(l)

			assert.Equal(t, tt.want, res)
			assert.Equal(t, tt.want.Ticks, c.steps)
			assert.Equal(t, 2, c.renders, "one render per call")
		})
	}
}

func TestFrame_SnapsForwardAfterOverrun(t *testing.T) {
	l, clock := newTestLoop()
	var c counter
	c.frame(l)

	clock.Advance(10 * tick)
	c.frame(l)

	// the dropped backlog is not retried
	clock.Advance(tick / 2)
	assert.Equal(t, Result{}, c.frame(l))

	clock.Advance(tick / 2)
	assert.Equal(t, Result{Ticks: 1}, c.frame(l))
	assert.Equal(t, 6, c.steps)
}

func TestFrame_SteadyRate(t *testing.T) {
	l, clock := newTestLoop()
	var c counter
	c.frame(l)

	for range 100 {
		clock.Advance(tick)
		assert.Equal(t, Result{Ticks: 1}, c.frame(l))
	}
	assert.Equal(t, 100, c.steps)
}

func TestNew_Defaults(t *testing.T) {
	l := New(nil, tick, 0)
	assert.Equal(t, DefaultMaxCatchUp, l.maxCatchUp)
	assert.Equal(t, SystemClock{}, l.clock)
	assert.Equal(t, tick, l.Tick())
}
