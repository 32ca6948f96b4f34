package system

import (
	"math"

	"github.com/younwookim/snowtux/internal/domain/entity"
	"github.com/younwookim/snowtux/internal/ecs"
)

// updatePlayer applies input, runs the player's gravity step, keeps a carried
// block pinned and resolves contacts with everything touching the player.
func (s *Simulation) updatePlayer(in InputState) {
	h := s.player
	p := s.world.Get(h)
	if p == nil {
		return
	}
	ps := p.Scratch.(*entity.PlayerState)
	if ps.Invincible > 0 {
		ps.Invincible--
	}

	if dir := in.Horizontal(); dir != 0 {
		if (dir > 0) != p.FacingRight() {
			p.SwapTextures()
		}
		p.SpeedX = float64(dir) * math.Abs(s.tuning.WalkSpeed)
		dx := s.world.CanMove(h, ecs.Horizontal, s.playerRules(ps))
		s.world.MoveBy(h, dx, 0)
	}

	if in.Jump && ps.Grounded {
		p.SpeedY = -s.tuning.JumpSpeed
	}
	ps.Grounded = s.world.ApplyGravity(h, s.tuning.Gravity, s.playerRules(ps))

	s.updateCarry(in, p, ps)
	s.interact(in, p, ps)

	if s.world.AtFloor(h) {
		s.killPlayer(entity.KindDead)
	}
}

func (s *Simulation) playerRules(ps *entity.PlayerState) ecs.Rules {
	return ecs.Rules{
		Player:      true,
		RightLocked: s.scrollExhausted(),
		Ignore:      ps.Carrying,
	}
}

// updateCarry keeps a carried ice block beside the player and throws it when
// the carry key is released.
func (s *Simulation) updateCarry(in InputState, p *entity.Entity, ps *entity.PlayerState) {
	if ps.Carrying.IsZero() {
		return
	}
	b := s.world.Get(ps.Carrying)
	if b == nil || b.Kind != entity.KindIceBlockStunned {
		ps.Carrying = ecs.Handle{}
		return
	}

	x := p.X + p.W
	if !p.FacingRight() {
		x = p.X - b.W
	}
	s.world.SetPosition(ps.Carrying, x, p.Y+p.H-b.H)

	if !in.Carry {
		h := ps.Carrying
		ps.Carrying = ecs.Handle{}
		b.Gravity = true
		s.kick(h, b, p.FacingRight())
	}
}

// grab starts carrying a stunned ice block
func (s *Simulation) grab(ps *entity.PlayerState, h ecs.Handle, b *entity.Entity) {
	ps.Carrying = h
	b.Gravity = false
	b.SpeedX, b.SpeedY = 0, 0
}
