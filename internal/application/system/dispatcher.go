package system

import (
	"github.com/younwookim/snowtux/internal/application/state"
	"github.com/younwookim/snowtux/internal/domain/entity"
	"github.com/younwookim/snowtux/internal/ecs"
)

// dispatch runs the player first, then every other live entity once in bucket
// order. The snapshot is taken after the player moved, so anything spawned by a
// badguy waits for the next tick.
func (s *Simulation) dispatch(in InputState) {
	s.updatePlayer(in)

	carried := s.carried()
	for _, h := range s.world.Handles() {
		if h == s.player || h == carried {
			continue
		}
		e := s.world.Get(h)
		if e == nil || e.Kind.Terminal() {
			continue
		}
		s.behave(h, e)
	}
}

func (s *Simulation) behave(h ecs.Handle, e *entity.Entity) {
	switch e.Kind {
	case entity.KindSnowball, entity.KindIceBlock, entity.KindSpiky, entity.KindOneUp:
		s.botMove(h, e)
	case entity.KindBomb:
		if s.world.AtFloor(h) {
			s.detonate(h, e)
			return
		}
		s.botMove(h, e)
	case entity.KindBombTicking:
		s.tickBomb(h, e)
	case entity.KindBombExploding:
		s.explode(h, e)
	case entity.KindIceBlockStunned:
		if s.world.AtFloor(h) {
			e.Kind = entity.KindDead
		}
	case entity.KindIceBlockKicked:
		s.slide(h, e)
	case entity.KindBouncingSnowball, entity.KindStar:
		s.bounce(h, e)
	case entity.KindFlyingSnowball:
		s.fly(h, e)
	case entity.KindStalactite:
		s.stalactite(h, e)
	case entity.KindJumpy:
		s.jumpy(h, e)
	case entity.KindFlame:
		s.orbit(h, e)
	case entity.KindBlock, entity.KindBrick, entity.KindBonus, entity.KindCoin,
		entity.KindWin, entity.KindInvisible, entity.KindPlayer:
		// static
	}
}

// applyGravity integrates every gravity-enabled entity except the player,
// which already fell during its own update.
func (s *Simulation) applyGravity() {
	for _, h := range s.world.Handles() {
		if h == s.player {
			continue
		}
		s.world.ApplyGravity(h, s.tuning.Gravity, ecs.Rules{})
	}
}

// reap frees Dead entities. Destroyed bricks zero their tile cell first.
func (s *Simulation) reap() {
	for h, e := range s.world.All() {
		switch e.Kind {
		case entity.KindBrickDestroyed:
			if e.Cell.Valid {
				s.level.Interactive.Set(e.Cell.X, e.Cell.Y, entity.TileEmpty)
			}
			s.world.Destroy(h)
		case entity.KindDead:
			s.world.Destroy(h)
		}
	}
}

func (s *Simulation) killPlayer(cause entity.Kind) {
	if s.state != state.Alive {
		return
	}
	s.state = state.Dead
	s.emit(PlayerDied{Cause: cause})
}

func (s *Simulation) playerState() *entity.PlayerState {
	p := s.world.Get(s.player)
	if p == nil {
		return nil
	}
	ps, _ := p.Scratch.(*entity.PlayerState)
	return ps
}

func (s *Simulation) carried() ecs.Handle {
	if ps := s.playerState(); ps != nil {
		return ps.Carrying
	}
	return ecs.Handle{}
}

func (s *Simulation) invincible() bool {
	ps := s.playerState()
	return ps != nil && ps.Invincible > 0
}
