package system

import (
	"math"

	"github.com/younwookim/snowtux/internal/domain/entity"
	"github.com/younwookim/snowtux/internal/ecs"
)

// botMove walks an entity along the ground. Patrolling entities turn around
// before walking off a ledge; every walker turns around when blocked and dies
// on reaching the bottom of the screen.
func (s *Simulation) botMove(h ecs.Handle, e *entity.Entity) {
	if s.world.AtFloor(h) {
		e.Kind = entity.KindDead
		return
	}
	if e.SpeedX == 0 {
		return
	}
	if e.Patrol {
		s.maybeTurnAround(h, e)
	}
	dx := s.world.CanMove(h, ecs.Horizontal, ecs.Rules{})
	if dx == 0 {
		turnAround(e)
		return
	}
	s.world.MoveBy(h, dx, 0)
}

// maybeTurnAround looks one body width ahead for ground to stand on
func (s *Simulation) maybeTurnAround(h ecs.Handle, e *entity.Entity) {
	if !s.world.Supported(h) || s.world.AtFloor(h) {
		return
	}
	step := e.W
	if e.SpeedX < 0 {
		step = -e.W
	}
	if !s.world.FloorUnder(e.Box.Offset(step, 0), h) {
		turnAround(e)
	}
}

// stun flattens a walking ice block
func (s *Simulation) stun(e *entity.Entity) {
	e.Kind = entity.KindIceBlockStunned
	e.Patrol = false
	right := e.FacingRight()
	e.SpeedX = 0
	s.retextureFacing(e, right)
}

// kick sends a stunned ice block sliding
func (s *Simulation) kick(h ecs.Handle, e *entity.Entity, right bool) {
	e.Kind = entity.KindIceBlockKicked
	e.Patrol = false
	e.SpeedX = s.tuning.KickSpeed
	if !right {
		e.SpeedX = -s.tuning.KickSpeed
	}
	s.retexture(e)
}

// slide moves a kicked ice block one pixel at a time, re-evaluating the
// neighbour ahead after every pixel: bricks break, badguys die, another kicked
// block takes both out, anything else solid bounces it back.
func (s *Simulation) slide(h ecs.Handle, e *entity.Entity) {
	steps := int(math.Abs(e.SpeedX))
	dir := 1
	if e.SpeedX < 0 {
		dir = -1
	}

	for i := 0; i < steps; i++ {
		if s.world.AtFloor(h) {
			e.Kind = entity.KindDead
			return
		}
		blocked := false
		for _, nh := range s.world.Query(h, ecs.Horizontal) {
			n := s.world.Get(nh)
			if n.Kind.PassableX() || n.Kind.Terminal() {
				continue
			}
			ahead := (dir > 0 && e.Right()+1 == n.Left()) || (dir < 0 && e.Left()-1 == n.Right())
			if !ahead {
				continue
			}
			switch {
			case n.Kind == entity.KindBrick:
				s.breakBrick(n)
			case n.Kind == entity.KindIceBlockKicked:
				n.Kind = entity.KindDead
				e.Kind = entity.KindDead
				return
			case n.Kind.Badguy():
				n.Kind = entity.KindDead
			case n.Kind == entity.KindPlayer:
				if !s.invincible() {
					s.killPlayer(entity.KindIceBlockKicked)
				} else {
					e.Kind = entity.KindDead
					return
				}
				blocked = true
			default:
				blocked = true
			}
		}
		if blocked {
			turnAround(e)
			return
		}
		s.world.MoveBy(h, dir, 0)
	}

	if e.Right() < 0 || e.Left() >= s.tuning.ViewWidth {
		e.Kind = entity.KindDead
	}
}

func (s *Simulation) breakBrick(n *entity.Entity) {
	n.Kind = entity.KindBrickDestroyed
	s.emit(BrickBroken{TileX: n.Cell.X, TileY: n.Cell.Y})
}

func bombState(e *entity.Entity) *entity.BombState {
	bs, ok := e.Scratch.(*entity.BombState)
	if !ok {
		bs = &entity.BombState{}
		e.Scratch = bs
	}
	return bs
}

// ignite lights the fuse of a patrolling bomb
func (s *Simulation) ignite(e *entity.Entity) {
	e.Kind = entity.KindBombTicking
	e.Patrol = false
	bombState(e).Countdown = s.tuning.BombFuse
	s.retexture(e)
}

// tickBomb burns the fuse and creeps towards the player
func (s *Simulation) tickBomb(h ecs.Handle, e *entity.Entity) {
	bs := bombState(e)
	bs.Countdown--
	if bs.Countdown <= 0 || s.world.AtFloor(h) {
		s.detonate(h, e)
		return
	}

	if p := s.world.Get(s.player); p != nil {
		dir := ecs.Sign(p.CenterX() - e.CenterX())
		if dir != 0 {
			if (dir > 0) != e.FacingRight() {
				e.SwapTextures()
			}
			e.SpeedX = float64(dir) * s.tuning.BombChaseSpeed
		}
	}
	if dx := s.world.CanMove(h, ecs.Horizontal, ecs.Rules{}); dx != 0 {
		s.world.MoveBy(h, dx, 0)
	}
}

// detonate grows the bomb to three times its size around its centre
func (s *Simulation) detonate(h ecs.Handle, e *entity.Entity) {
	e.Kind = entity.KindBombExploding
	e.Gravity = false
	e.SpeedX, e.SpeedY = 0, 0
	bombState(e).Countdown = s.tuning.ExplodeTicks
	s.retexture(e)
	s.world.Resize(h, entity.Box{X: e.X - e.W, Y: e.Y - e.H, W: 3 * e.W, H: 3 * e.H})
}

// explode applies the blast to everything inside it for its whole duration
func (s *Simulation) explode(h ecs.Handle, e *entity.Entity) {
	bs := bombState(e)
	bs.Countdown--
	if s.tuning.ExplodeFlash > 0 && bs.Countdown%s.tuning.ExplodeFlash == 0 {
		e.SwapTextures()
	}

	for _, nh := range s.world.QueryBox(e.Box, h) {
		n := s.world.Get(nh)
		switch {
		case n.Kind == entity.KindPlayer:
			if !s.invincible() {
				s.killPlayer(entity.KindBombExploding)
			}
		case n.Kind == entity.KindBomb:
			s.ignite(n)
		case n.Kind == entity.KindBrick:
			s.breakBrick(n)
		case n.Kind == entity.KindBombTicking:
			// already lit
		case n.Kind.Badguy():
			n.Kind = entity.KindDead
		}
	}

	if bs.Countdown <= 0 {
		e.Kind = entity.KindDead
	}
}

// bounce walks and hops with a fixed impulse whenever it lands
func (s *Simulation) bounce(h ecs.Handle, e *entity.Entity) {
	if s.world.AtFloor(h) {
		e.Kind = entity.KindDead
		return
	}
	if e.SpeedY >= 0 && s.world.Supported(h) {
		e.SpeedY = -s.tuning.BounceImpulse
	}
	if e.SpeedX == 0 {
		return
	}
	dx := s.world.CanMove(h, ecs.Horizontal, ecs.Rules{})
	if dx == 0 {
		turnAround(e)
		return
	}
	s.world.MoveBy(h, dx, 0)
}

// fly oscillates vertically within the configured range
func (s *Simulation) fly(h ecs.Handle, e *entity.Entity) {
	fs, ok := e.Scratch.(*entity.FlyState)
	if !ok {
		fs = &entity.FlyState{}
		e.Scratch = fs
	}
	if e.SpeedY == 0 {
		e.SpeedY = s.tuning.FlySpeed
	}

	before := e.SpeedY
	dy := s.world.CanMove(h, ecs.Vertical, ecs.Rules{})
	s.world.MoveBy(h, 0, dy)
	fs.Travelled += ecs.Abs(dy)

	bonked := (before < 0) != (e.SpeedY < 0)
	blocked := ecs.Abs(dy) < int(math.Abs(before))
	switch {
	case bonked:
		fs.Travelled = 0
	case blocked || fs.Travelled >= s.tuning.FlyRange:
		e.SpeedY = -e.SpeedY
		fs.Travelled = 0
	}
}

// stalactite waits for the player to pass below, shakes, then falls and
// shatters on landing
func (s *Simulation) stalactite(h ecs.Handle, e *entity.Entity) {
	ss, ok := e.Scratch.(*entity.StalactiteState)
	if !ok {
		ss = &entity.StalactiteState{}
		e.Scratch = ss
	}

	switch ss.Phase {
	case entity.StalactiteHanging:
		p := s.world.Get(s.player)
		if p != nil && ecs.Abs(p.CenterX()-e.CenterX()) < s.tuning.StalactiteRange && p.Top() > e.Bottom() {
			ss.Phase = entity.StalactiteShaking
			ss.Wait = s.tuning.StalactiteWait
		}
	case entity.StalactiteShaking:
		ss.Wait--
		if ss.Wait%2 == 0 {
			e.SwapTextures()
		}
		if ss.Wait <= 0 {
			ss.Phase = entity.StalactiteFalling
			e.Gravity = true
			e.SpeedY = 1
		}
	case entity.StalactiteFalling:
		if s.world.Supported(h) {
			e.Kind = entity.KindDead
		}
	}
}

// jumpy hops whenever something stands on it, throwing its riders first so
// they do not block its own jump
func (s *Simulation) jumpy(h ecs.Handle, e *entity.Entity) {
	if s.world.AtFloor(h) {
		e.Kind = entity.KindDead
		return
	}
	if e.SpeedY < 0 || !s.world.Supported(h) {
		return
	}
	riders := s.riders(h, e)
	if len(riders) == 0 {
		return
	}
	e.SpeedY = -s.tuning.JumpyImpulse
	for _, rh := range riders {
		s.launch(rh, s.tuning.JumpyImpulse)
	}
}

// riders returns the falling entities resting exactly on top of e
func (s *Simulation) riders(h ecs.Handle, e *entity.Entity) []ecs.Handle {
	var out []ecs.Handle
	for _, nh := range s.world.Query(h, ecs.Vertical) {
		n := s.world.Get(nh)
		if !n.Gravity || n.Kind.PassableY(false) || n.Kind.Static() {
			continue
		}
		if n.Bottom()+1 == e.Top() {
			out = append(out, nh)
		}
	}
	return out
}

// launch gives a rider an upward impulse and moves it by one step of it
// right away
func (s *Simulation) launch(rh ecs.Handle, impulse float64) {
	r := s.world.Get(rh)
	var rules ecs.Rules
	if rh == s.player {
		ps := s.playerState()
		ps.Grounded = false
		rules = s.playerRules(ps)
	}
	r.SpeedY = min(r.SpeedY, -impulse)
	dy := s.world.CanMove(rh, ecs.Vertical, rules)
	s.world.MoveBy(rh, 0, dy)
}

// orbit moves a flame along its circle
func (s *Simulation) orbit(h ecs.Handle, e *entity.Entity) {
	fs, ok := e.Scratch.(*entity.FlameState)
	if !ok {
		return
	}
	fs.Angle += s.tuning.FlameSpeed
	for fs.Angle >= 2*math.Pi {
		fs.Angle -= 2 * math.Pi
	}
	r := float64(fs.Radius)
	x := fs.CenterX + int(math.Round(r*math.Cos(fs.Angle))) - e.W/2
	y := fs.CenterY + int(math.Round(r*math.Sin(fs.Angle))) - e.H/2
	s.world.SetPosition(h, x, y)
}
