package loop

import "time"

// Sample is one second worth of loop activity
type Sample struct {
	Frames  int
	Ticks   int
	Dropped int
}

// Meter aggregates frame results into per-second samples
type Meter struct {
	clock Clock
	start time.Time
	cur   Sample
}

// NewMeter creates a meter reading clock (SystemClock when nil)
func NewMeter(clock Clock) *Meter {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Meter{clock: clock, start: clock.Now()}
}

// Observe records one frame. It returns the finished sample once a second has
// elapsed since the previous one.
func (m *Meter) Observe(r Result) (Sample, bool) {
	m.cur.Frames++
	m.cur.Ticks += r.Ticks
	m.cur.Dropped += r.Dropped

	now := m.clock.Now()
	if now.Sub(m.start) < time.Second {
		return Sample{}, false
	}
	out := m.cur
	m.cur = Sample{}
	m.start = now
	return out, true
}
