package system

import (
	"fmt"
	"log"

	"github.com/younwookim/snowtux/internal/application/state"
)

// Status is the snapshot a HUD shows
type Status struct {
	Player    state.PlayerState
	Deaths    int
	Coins     int
	Lives     int
	Index     int
	LevelID   string
	LevelName string
	Finished  bool
}

// Session drives a Simulation through a sequence of levels: it reloads after
// deaths, advances on completion and waits for confirmation after the last level.
type Session struct {
	sim    *Simulation
	source LevelSource
	order  []string

	index    int
	deaths   int
	finished bool
	levelID  string
}

// NewSession creates a session that plays order in sequence. No level is
// loaded until Load is called.
func NewSession(sim *Simulation, source LevelSource, order []string) *Session {
	return &Session{
		sim:    sim,
		source: source,
		order:  order,
	}
}

// Load fetches id from the source and seeds the simulation with it. On error
// the simulation is left unloaded.
func (s *Session) Load(id string) error {
	l, err := s.source.Level(id)
	if err != nil {
		s.unload()
		return fmt.Errorf("session load %s: %w", id, err)
	}
	if err := s.sim.Load(l); err != nil {
		s.unload()
		return err
	}
	s.loaded(id)
	return nil
}

func (s *Session) loaded(id string) {
	s.levelID = id
	s.deaths = 0
	s.finished = false
	for i, o := range s.order {
		if o == id {
			s.index = i
			break
		}
	}
}

// Reload re-reads the current level from its source, e.g. after the file
// changed. A level that fails to fetch or validate leaves the running one in
// place.
func (s *Session) Reload() error {
	if s.levelID == "" {
		return fmt.Errorf("session reload: %w: nothing loaded", ErrUnknownLevel)
	}
	l, err := s.source.Level(s.levelID)
	if err != nil {
		return fmt.Errorf("session reload %s: %w", s.levelID, err)
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("session reload %s: %w", s.levelID, err)
	}
	if err := s.sim.Load(l); err != nil {
		return err
	}
	s.loaded(s.levelID)
	return nil
}

func (s *Session) unload() {
	s.sim.Unload()
	s.levelID = ""
	s.deaths = 0
}

// Next loads the level after the current one. After the last level the
// session is finished until the player confirms.
func (s *Session) Next() error {
	if s.index+1 >= len(s.order) {
		s.finished = true
		s.sim.emit(GameFinished{})
		log.Printf("All %d levels completed", len(s.order))
		return nil
	}
	return s.Load(s.order[s.index+1])
}

// Tick advances the simulation and handles the player's fate
func (s *Session) Tick(in InputState) error {
	if s.finished {
		if in.Confirm && len(s.order) > 0 {
			return s.Load(s.order[0])
		}
		return nil
	}
	if in.Skip {
		return s.Next()
	}

	s.sim.Tick(in)

	switch s.sim.State() {
	case state.Dead:
		s.deaths++
		log.Printf("Player died in %s (deaths: %d)", s.levelID, s.deaths)
		s.sim.Respawn()
	case state.Ascended:
		s.sim.emit(LevelCompleted{ID: s.levelID})
		log.Printf("Level completed: %s", s.levelID)
		return s.Next()
	}
	return nil
}

// Status returns what the HUD shows
func (s *Session) Status() Status {
	st := s.sim.Stats()
	out := Status{
		Player:   s.sim.State(),
		Deaths:   s.deaths,
		Coins:    st.Coins,
		Lives:    st.Lives,
		Index:    s.index,
		LevelID:  s.levelID,
		Finished: s.finished,
	}
	if l := s.sim.Level(); l != nil {
		out.LevelName = l.Meta.Name
	}
	return out
}

// Events drains the simulation's pending events
func (s *Session) Events() []Event {
	return s.sim.DrainEvents()
}

// Simulation returns the simulation for renderers
func (s *Session) Simulation() *Simulation {
	return s.sim
}
