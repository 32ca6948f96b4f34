package system

import (
	"fmt"
	"iter"
	"log"

	"github.com/younwookim/snowtux/internal/application/state"
	"github.com/younwookim/snowtux/internal/domain/entity"
	"github.com/younwookim/snowtux/internal/ecs"
)

// Stats are the counters shown by the HUD
type Stats struct {
	Coins int
	Lives int
}

// Simulation owns the entity arena, the live level and the viewport for one
// level lifetime. It is single-threaded: call Tick from one goroutine.
type Simulation struct {
	tuning   Tuning
	textures entity.TextureBook

	pristine *entity.Level
	level    *entity.Level
	world    *ecs.World
	scroll   int
	player   ecs.Handle
	state    state.PlayerState

	checkpoint    entity.Checkpoint
	hasCheckpoint bool

	stats  Stats
	events []Event
	ticks  uint64
}

// NewSimulation creates an empty simulation. textures may be nil.
func NewSimulation(t Tuning, textures entity.TextureBook) *Simulation {
	if textures == nil {
		textures = entity.KindTextures{}
	}
	return &Simulation{
		tuning:   t,
		textures: textures,
		stats:    Stats{Lives: t.Lives},
	}
}

// Load validates l and seeds the world at the level start. The simulation keeps
// a pristine copy to reseed from on respawn. A level that fails validation
// leaves the simulation unloaded.
func (s *Simulation) Load(l *entity.Level) error {
	if err := l.Validate(); err != nil {
		s.Unload()
		return fmt.Errorf("load level %s: %w", l.ID, err)
	}
	s.pristine = l.Clone()
	s.hasCheckpoint = false
	s.checkpoint = entity.Checkpoint{}
	s.seed(l.Start)
	log.Printf("Level loaded: %s (%q, %dx%d tiles, %d entities)", l.ID, l.Meta.Name, l.Width, l.Height, s.world.Len())
	s.emit(LevelLoaded{ID: l.ID, Name: l.Meta.Name})
	return nil
}

// Unload drops the current level. Tick is a no-op until the next Load.
func (s *Simulation) Unload() {
	s.pristine, s.level, s.world = nil, nil, nil
	s.scroll = 0
	s.player = ecs.Handle{}
	s.state = state.Alive
	s.hasCheckpoint = false
	s.checkpoint = entity.Checkpoint{}
}

// Respawn reseeds the level at the last reached checkpoint. Running out of
// lives restarts the level from its start with a fresh stock.
func (s *Simulation) Respawn() {
	if s.pristine == nil {
		return
	}
	s.stats.Lives--
	if s.stats.Lives <= 0 {
		s.stats.Lives = s.tuning.Lives
		s.hasCheckpoint = false
	}
	cp := s.pristine.Start
	if s.hasCheckpoint {
		cp = s.checkpoint
	}
	s.seed(cp)
}

// seed rebuilds the world from the pristine level with the viewport scrolled so
// that cp sits one third into the screen.
func (s *Simulation) seed(cp entity.Checkpoint) {
	t := s.tuning
	s.level = s.pristine.Clone()
	levelW := s.level.PixelWidth(t.TileSize)

	maxScroll := max(0, levelW-t.ViewWidth)
	s.scroll = min(max(cp.X-t.ViewWidth/3, 0), maxScroll)
	s.world = ecs.NewWorld(t.BucketWidth, levelW, t.ViewWidth, t.ViewHeight)
	s.state = state.Alive

	unknown := map[uint8]bool{}
	for ty, row := range s.level.Interactive {
		for tx, code := range row {
			if entity.ClassifyTile(code) == entity.TileClassUnknown && !unknown[code] {
				unknown[code] = true
				log.Printf("Level %s: unknown interactive tile %d at %d,%d ignored", s.level.ID, code, tx, ty)
			}
			s.spawnTile(tx, ty, code)
		}
	}
	for _, sp := range s.level.Spawns {
		s.spawnObject(sp.Kind, sp.TileX*t.TileSize-s.scroll, sp.TileY*t.TileSize)
	}
	s.player = s.spawnPlayer(cp.X-s.scroll, cp.Y)
}

// Tick advances the world by one fixed step
func (s *Simulation) Tick(in InputState) {
	if s.world == nil || s.state != state.Alive {
		return
	}
	s.ticks++

	s.dispatch(in)
	s.applyGravity()
	s.maybeScroll()
	s.cleanupParked()
	s.trackCheckpoint()
	s.reap()

	if s.tuning.Debug {
		if err := s.world.CheckInvariants(); err != nil {
			panic(err)
		}
	}
}

func (s *Simulation) emit(e Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns and clears the pending events
func (s *Simulation) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}

// World exposes the arena for renderers and tests
func (s *Simulation) World() *ecs.World { return s.world }

// Player returns the player handle
func (s *Simulation) Player() ecs.Handle { return s.player }

// Level returns the live level, with consumed tiles zeroed
func (s *Simulation) Level() *entity.Level { return s.level }

// Scroll returns the viewport offset in level pixels
func (s *Simulation) Scroll() int { return s.scroll }

// State returns the player's fate in the current level
func (s *Simulation) State() state.PlayerState { return s.state }

// Stats returns the HUD counters
func (s *Simulation) Stats() Stats { return s.stats }

// Ticks returns the number of ticks simulated since creation
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Tuning returns the constants the simulation runs with
func (s *Simulation) Tuning() Tuning { return s.tuning }

// Checkpoint returns the last checkpoint reached in this level
func (s *Simulation) Checkpoint() (entity.Checkpoint, bool) {
	return s.checkpoint, s.hasCheckpoint
}

// Sprite is a read-only view of one drawable entity
type Sprite struct {
	Kind entity.Kind
	entity.Box
	Texture    entity.TextureID
	TextureAlt entity.TextureID
}

// Visible yields the textured entities intersecting the screen, in bucket order
func (s *Simulation) Visible() iter.Seq[Sprite] {
	return func(yield func(Sprite) bool) {
		if s.world == nil {
			return
		}
		view := entity.Box{W: s.tuning.ViewWidth, H: s.tuning.ViewHeight}
		for _, h := range s.world.Handles() {
			e := s.world.Get(h)
			if e.Texture == 0 || e.Kind.Terminal() || !ecs.Overlaps(view, e.Box) {
				continue
			}
			if !yield(Sprite{Kind: e.Kind, Box: e.Box, Texture: e.Texture, TextureAlt: e.TextureAlt}) {
				return
			}
		}
	}
}

// TileView is what a renderer needs to draw the tile layers
type TileView struct {
	Background  entity.TileMatrix
	Interactive entity.TileMatrix
	Foreground  entity.TileMatrix
	Scroll      int
	TileSize    int
}

// Tiles returns the three tile layers and the viewport offset
func (s *Simulation) Tiles() TileView {
	if s.level == nil {
		return TileView{TileSize: s.tuning.TileSize}
	}
	return TileView{
		Background:  s.level.Background,
		Interactive: s.level.Interactive,
		Foreground:  s.level.Foreground,
		Scroll:      s.scroll,
		TileSize:    s.tuning.TileSize,
	}
}
