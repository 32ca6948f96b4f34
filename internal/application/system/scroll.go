package system

import "github.com/younwookim/snowtux/internal/domain/entity"

// maybeScroll keeps the player at most a third into the screen by shifting
// every entity left. Entities pushed past the park floor are pinned there
// until cleanupParked removes them.
func (s *Simulation) maybeScroll() {
	p := s.world.Get(s.player)
	if p == nil {
		return
	}
	third := s.tuning.ViewWidth / 3
	limit := s.level.PixelWidth(s.tuning.TileSize) - s.tuning.ViewWidth
	if p.X <= third || s.scroll >= limit {
		return
	}

	diff := min(p.X-third, limit-s.scroll)
	s.scroll += diff
	for _, h := range s.world.Handles() {
		e := s.world.Get(h)
		x := e.X - diff
		if h != s.player {
			x = max(x, s.tuning.ParkFloor)
		}
		if fs, ok := e.Scratch.(*entity.FlameState); ok {
			fs.CenterX -= diff
		}
		s.world.SetPosition(h, x, e.Y)
	}
}

// cleanupParked destroys every non-player entity resting on the park floor
func (s *Simulation) cleanupParked() {
	for h, e := range s.world.All() {
		if h != s.player && e.X <= s.tuning.ParkFloor {
			s.world.Destroy(h)
		}
	}
}

// scrollExhausted reports whether the right edge of the level is on screen
func (s *Simulation) scrollExhausted() bool {
	return s.scroll+s.tuning.ViewWidth >= s.level.PixelWidth(s.tuning.TileSize)
}
