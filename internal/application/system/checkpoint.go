package system

import (
	"sort"

	"github.com/younwookim/snowtux/internal/domain/entity"
)

// SelectCheckpoint returns the furthest checkpoint at or behind progress.
// cps must be sorted by X.
func SelectCheckpoint(cps []entity.Checkpoint, progress int) (entity.Checkpoint, bool) {
	i := sort.Search(len(cps), func(i int) bool { return cps[i].X > progress })
	if i == 0 {
		return entity.Checkpoint{}, false
	}
	return cps[i-1], true
}

// trackCheckpoint records the furthest checkpoint the viewport has passed.
// Progress is measured at the scroll trigger line, a third into the screen.
func (s *Simulation) trackCheckpoint() {
	progress := s.scroll + s.tuning.ViewWidth/3
	cp, ok := SelectCheckpoint(s.level.Checkpoints, progress)
	if !ok {
		return
	}
	if !s.hasCheckpoint || cp.X > s.checkpoint.X {
		s.checkpoint = cp
		s.hasCheckpoint = true
	}
}
