package system

import (
	"github.com/younwookim/snowtux/internal/application/state"
	"github.com/younwookim/snowtux/internal/domain/entity"
	"github.com/younwookim/snowtux/internal/ecs"
)

// Contact is the side of the player that touches another entity
type Contact uint8

const (
	// ContactCorner is a diagonal touch; only pickups react to it
	ContactCorner Contact = iota
	// ContactTop means the player is on top of the other entity
	ContactTop
	// ContactBottom means the player hit the other entity from below
	ContactBottom
	// ContactSide is a horizontal touch
	ContactSide
)

func (c Contact) String() string {
	switch c {
	case ContactTop:
		return "top"
	case ContactBottom:
		return "bottom"
	case ContactSide:
		return "side"
	}
	return "corner"
}

// ContactOf classifies how p touches n. Both boxes are assumed to be within
// one pixel of each other. When they overlap on both axes the axis with the
// smaller penetration decides, ties going to the vertical axis.
func ContactOf(p, n entity.Box) Contact {
	hOverlap := p.Left() <= n.Right() && n.Left() <= p.Right()
	vOverlap := p.Top() <= n.Bottom() && n.Top() <= p.Bottom()

	switch {
	case hOverlap && vOverlap:
		down := p.Bottom() - n.Top() + 1
		up := n.Bottom() - p.Top() + 1
		left := p.Right() - n.Left() + 1
		right := n.Right() - p.Left() + 1
		if min(down, up) <= min(left, right) {
			if down <= up {
				return ContactTop
			}
			return ContactBottom
		}
		return ContactSide
	case hOverlap:
		if n.Top() > p.Bottom() {
			return ContactTop
		}
		return ContactBottom
	case vOverlap:
		return ContactSide
	}
	return ContactCorner
}

// PlayerEffect is what a contact does to the player
type PlayerEffect uint8

const (
	PlayerNone PlayerEffect = iota
	PlayerBounce
	PlayerDie
	// PlayerDieIfApproached kills only when the other entity moves towards
	// the player
	PlayerDieIfApproached
)

// OtherEffect is what a contact does to the entity the player touched
type OtherEffect uint8

const (
	OtherNone OtherEffect = iota
	OtherKill
	OtherStun
	OtherKick
	// OtherCarryOrKick picks the block up while the carry key is held
	OtherCarryOrKick
	OtherIgnite
	OtherBreak
	OtherOpen
	OtherReveal
)

// Outcome pairs the effects of one contact
type Outcome struct {
	Player PlayerEffect
	Other  OtherEffect
}

var (
	stomp  = [3]Outcome{{PlayerBounce, OtherKill}, {PlayerDie, OtherNone}, {PlayerDie, OtherNone}}
	deadly = [3]Outcome{{PlayerDie, OtherNone}, {PlayerDie, OtherNone}, {PlayerDie, OtherNone}}
)

// outcomes is indexed by kind, then by Top, Bottom, Side
var outcomes = map[entity.Kind][3]Outcome{
	entity.KindSnowball:         stomp,
	entity.KindBouncingSnowball: stomp,
	entity.KindFlyingSnowball:   stomp,
	entity.KindStalactite:       stomp,
	entity.KindIceBlock: {
		{PlayerBounce, OtherStun}, {PlayerDie, OtherNone}, {PlayerDie, OtherNone},
	},
	entity.KindIceBlockStunned: {
		{PlayerBounce, OtherKick}, {PlayerNone, OtherKick}, {PlayerNone, OtherCarryOrKick},
	},
	entity.KindIceBlockKicked: {
		{PlayerBounce, OtherStun}, {PlayerDie, OtherNone}, {PlayerDieIfApproached, OtherNone},
	},
	entity.KindBomb: {
		{PlayerBounce, OtherIgnite}, {PlayerDie, OtherNone}, {PlayerDie, OtherNone},
	},
	entity.KindBombTicking: {
		{PlayerBounce, OtherNone}, {}, {},
	},
	entity.KindBombExploding: deadly,
	entity.KindSpiky:         deadly,
	entity.KindFlame:         deadly,
	entity.KindJumpy: {
		{PlayerBounce, OtherNone}, {PlayerDie, OtherNone}, {PlayerDie, OtherNone},
	},
	entity.KindBrick:     {{}, {PlayerNone, OtherBreak}, {}},
	entity.KindBonus:     {{}, {PlayerNone, OtherOpen}, {}},
	entity.KindInvisible: {{}, {PlayerNone, OtherReveal}, {}},
}

// OutcomeOf looks up the interaction matrix. Corner contacts and kinds
// without an entry have no effect.
func OutcomeOf(k entity.Kind, c Contact) Outcome {
	row, ok := outcomes[k]
	if !ok || c == ContactCorner {
		return Outcome{}
	}
	return row[c-ContactTop]
}

// interact resolves the player's contacts with every entity touching it
func (s *Simulation) interact(in InputState, p *entity.Entity, ps *entity.PlayerState) {
	for _, nh := range s.world.Query(s.player, ecs.Both) {
		if s.state != state.Alive {
			return
		}
		if nh == ps.Carrying {
			continue
		}
		n := s.world.Get(nh)
		if n.Kind.Terminal() {
			continue
		}
		if s.collect(n, ps) {
			continue
		}

		o := OutcomeOf(n.Kind, ContactOf(p.Box, n.Box))
		if ps.Invincible > 0 && (o.Player == PlayerDie || o.Player == PlayerDieIfApproached) {
			o = Outcome{}
			if n.Kind.Badguy() {
				o.Other = OtherKill
			}
		}
		s.apply(in, p, ps, nh, n, o)
	}
}

// collect handles pickups and the win tile, which react to any contact
func (s *Simulation) collect(n *entity.Entity, ps *entity.PlayerState) bool {
	switch n.Kind {
	case entity.KindCoin:
		n.Kind = entity.KindDead
		if n.Cell.Valid {
			s.level.Interactive.Set(n.Cell.X, n.Cell.Y, entity.TileEmpty)
		}
		s.awardCoin()
	case entity.KindWin:
		s.state = state.Ascended
	case entity.KindStar:
		n.Kind = entity.KindDead
		ps.Invincible = s.tuning.InvincibleTicks
		s.emit(PowerUp{Kind: entity.KindStar})
	case entity.KindOneUp:
		n.Kind = entity.KindDead
		s.stats.Lives++
		s.emit(PowerUp{Kind: entity.KindOneUp})
	default:
		return false
	}
	return true
}

func (s *Simulation) awardCoin() {
	s.stats.Coins++
	s.emit(CoinCollected{Total: s.stats.Coins})
}

func (s *Simulation) apply(in InputState, p *entity.Entity, ps *entity.PlayerState, nh ecs.Handle, n *entity.Entity, o Outcome) {
	awayRight := n.CenterX() >= p.CenterX()

	switch o.Player {
	case PlayerBounce:
		p.SpeedY = -s.tuning.StompBounce
		ps.Grounded = false
	case PlayerDie:
		s.killPlayer(n.Kind)
	case PlayerDieIfApproached:
		if (n.SpeedX > 0 && !awayRight) || (n.SpeedX < 0 && awayRight) {
			s.killPlayer(n.Kind)
		}
	}

	switch o.Other {
	case OtherKill:
		n.Kind = entity.KindDead
	case OtherStun:
		s.stun(n)
	case OtherKick:
		s.kick(nh, n, awayRight)
	case OtherCarryOrKick:
		if in.Carry && ps.Carrying.IsZero() {
			s.grab(ps, nh, n)
		} else {
			s.kick(nh, n, awayRight)
		}
	case OtherIgnite:
		s.ignite(n)
	case OtherBreak:
		s.breakBrick(n)
	case OtherOpen:
		s.openBonus(n)
	case OtherReveal:
		n.Kind = entity.KindBlock
		if n.Cell.Valid {
			s.level.Interactive.Set(n.Cell.X, n.Cell.Y, entity.TileSpentBonus)
		}
	}
}

// openBonus spends an active bonus block and releases its content above it
func (s *Simulation) openBonus(n *entity.Entity) {
	bs, ok := n.Scratch.(*entity.BonusState)
	if !ok || !bs.Active {
		return
	}
	bs.Active = false
	cell := n.Cell
	s.level.Interactive.Set(cell.X, cell.Y, entity.TileSpentBonus)
	s.emit(BonusOpened{Content: bs.Content, TileX: cell.X, TileY: cell.Y})

	switch bs.Content {
	case entity.ContentCoin:
		above := cell.Y - 1
		if above < 0 || s.level.Interactive.At(cell.X, above) != entity.TileEmpty {
			s.awardCoin()
			return
		}
		s.level.Interactive.Set(cell.X, above, entity.TileCoin)
		s.spawnTile(cell.X, above, entity.TileCoin)
	case entity.ContentSnowball:
		s.spawnObject(entity.KindSnowball, n.X, n.Y-s.tuning.TileSize)
	case entity.ContentStar:
		s.spawnObject(entity.KindStar, n.X, n.Y-s.tuning.TileSize)
	case entity.ContentOneUp:
		s.spawnObject(entity.KindOneUp, n.X, n.Y-s.tuning.TileSize)
	}
}
