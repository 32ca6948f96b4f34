package playing

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/snowtux/configs"
	"github.com/younwookim/snowtux/internal/application/scene"
	"github.com/younwookim/snowtux/internal/application/state"
	"github.com/younwookim/snowtux/internal/application/system"
	"github.com/younwookim/snowtux/internal/infrastructure/config"
)

// scriptedInput replays a fixed list of controls, then idles
type scriptedInput struct {
	script []Controls
}

func (s *scriptedInput) Poll() Controls {
	if len(s.script) == 0 {
		return Controls{}
	}
	c := s.script[0]
	s.script = s.script[1:]
	return c
}

func newTestPlaying(t *testing.T, in Input) *Playing {
	t.Helper()
	loader := config.NewFSLoader(configs.FS, ".")
	physics, err := loader.LoadPhysics()
	require.NoError(t, err)

	sim := system.NewSimulation(system.TuningFromConfig(physics), nil)
	session := system.NewSession(sim, system.ConfigSource{Loader: loader}, physics.Levels)
	require.NoError(t, session.Load(physics.Levels[0]))

	return New(session, in, physics.Display.ScreenWidth, physics.Display.ScreenHeight)
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := newTestPlaying(t, &scriptedInput{})

	assert.NotNil(t, p)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, "Welcome to Antarctica", p.banner.Text(), "level name banner")
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := newTestPlaying(t, &scriptedInput{})

	// Normal update should return nil (stay on same scene)
	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, uint64(1), p.session.Simulation().Ticks())
}

func TestPlaying_PauseStopsSimulation(t *testing.T) {
	in := &scriptedInput{script: []Controls{
		{Pause: true},
		{InputState: system.InputState{Right: true}},
		{Pause: true},
		{InputState: system.InputState{Right: true}},
	}}
	p := newTestPlaying(t, in)
	sim := p.session.Simulation()

	_, _ = p.Update(0)
	assert.Equal(t, state.StatePaused, p.State())
	_, _ = p.Update(0)
	assert.Equal(t, uint64(0), sim.Ticks())

	_, _ = p.Update(0)
	assert.Equal(t, state.StatePlaying, p.State())
	_, _ = p.Update(0)
	assert.Equal(t, uint64(1), sim.Ticks())
}

func TestPlaying_SkipThroughAllLevels(t *testing.T) {
	in := &scriptedInput{script: []Controls{
		{InputState: system.InputState{Skip: true}},
		{InputState: system.InputState{Skip: true}},
		{},
		{InputState: system.InputState{Confirm: true}},
	}}
	p := newTestPlaying(t, in)

	_, err := p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, "level2", p.session.Status().LevelID)

	_, err = p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, state.StateFinished, p.State())
	assert.Contains(t, p.banner.Text(), "finished")

	_, _ = p.Update(0)
	assert.Equal(t, state.StateFinished, p.State())

	_, _ = p.Update(0)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, "level1", p.session.Status().LevelID)
}

func TestPlaying_ReloadsWatchedLevel(t *testing.T) {
	p := newTestPlaying(t, &scriptedInput{})
	ch := make(chan string, 2)
	p.WatchReloads(ch)

	_, _ = p.Update(0)
	live := p.session.Simulation().Level()
	live.Interactive.Set(0, 0, 0)

	ch <- "level2" // not the running level
	_, err := p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), p.session.Simulation().Level().Interactive.At(0, 0))

	ch <- "level1"
	_, err = p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(10), p.session.Simulation().Level().Interactive.At(0, 0), "reseeded from the file")
	assert.Equal(t, "level1", p.session.Status().LevelID)

	close(ch)
	_, _ = p.Update(0)
	assert.Nil(t, p.reloads)
}

func TestKeyMapper(t *testing.T) {
	var m keyMapper

	c := m.Map([]ebiten.Key{ebiten.KeyA, ebiten.KeySpace, ebiten.KeyShiftLeft, ebiten.KeyN})
	assert.True(t, c.Left)
	assert.False(t, c.Right)
	assert.True(t, c.Jump)
	assert.True(t, c.Carry)
	assert.True(t, c.Skip)
	assert.Equal(t, -1, c.Horizontal())

	// held N does not skip again
	c = m.Map([]ebiten.Key{ebiten.KeyN, ebiten.KeyArrowRight})
	assert.False(t, c.Skip)
	assert.Equal(t, 1, c.Horizontal())

	c = m.Map(nil)
	assert.Equal(t, Controls{}, c)

	c = m.Map([]ebiten.Key{ebiten.KeyN, ebiten.KeyEscape, ebiten.KeyEnter})
	assert.True(t, c.Skip)
	assert.True(t, c.Pause)
	assert.True(t, c.Confirm)
}

func TestPlaying_OnEnterOnExit(t *testing.T) {
	p := newTestPlaying(t, &scriptedInput{})

	assert.NotPanics(t, func() {
		p.OnEnter()
		p.OnExit()
	})
	w, h := p.Layout(1920, 1080)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}
