package system

import (
	"github.com/younwookim/snowtux/internal/domain/entity"
	"github.com/younwookim/snowtux/internal/ecs"
)

// spawnTile turns one interactive tile into a static entity. Tiles already
// scrolled past the park floor are left out.
func (s *Simulation) spawnTile(tx, ty int, code uint8) {
	ts := s.tuning.TileSize
	x := tx*ts - s.scroll
	if x <= s.tuning.ParkFloor {
		return
	}

	e := entity.Entity{
		Box:  entity.Box{X: x, Y: ty * ts, W: ts, H: ts},
		Cell: entity.Cell{X: tx, Y: ty, Valid: true},
	}
	switch entity.ClassifyTile(code) {
	case entity.TileClassBlock:
		e.Kind = entity.KindBlock
	case entity.TileClassBrick:
		e.Kind = entity.KindBrick
	case entity.TileClassBonus:
		e.Kind = entity.KindBonus
		e.Scratch = &entity.BonusState{Active: true, Content: entity.BonusContentOf(code)}
	case entity.TileClassCoin:
		e.Kind = entity.KindCoin
	case entity.TileClassWin:
		e.Kind = entity.KindWin
	case entity.TileClassInvisible:
		e.Kind = entity.KindInvisible
	default:
		return
	}
	s.world.Spawn(e)
}

// spawnObject creates a moving object with its kind's defaults at screen x, y
func (s *Simulation) spawnObject(kind entity.Kind, x, y int) ecs.Handle {
	t := s.tuning
	if x <= t.ParkFloor {
		return ecs.Handle{}
	}

	size := t.BadguySize
	e := entity.Entity{
		Kind:   kind,
		Box:    entity.Box{X: x, Y: y, W: size, H: size},
		SpeedY: 1,
	}
	switch kind {
	case entity.KindSnowball, entity.KindIceBlock, entity.KindSpiky:
		e.SpeedX = -t.BadguySpeed
		e.Gravity, e.Patrol = true, true
	case entity.KindBomb:
		e.SpeedX = -t.BadguySpeed
		e.Gravity, e.Patrol = true, true
		e.Scratch = &entity.BombState{}
	case entity.KindBouncingSnowball:
		e.SpeedX = -t.BadguySpeed
		e.Gravity = true
	case entity.KindFlyingSnowball:
		e.SpeedY = t.FlySpeed
		e.Scratch = &entity.FlyState{}
	case entity.KindStalactite:
		e.SpeedY = 0
		e.Scratch = &entity.StalactiteState{}
	case entity.KindJumpy:
		e.Gravity = true
	case entity.KindFlame:
		half := size / 2
		fs := &entity.FlameState{CenterX: x + size/2, CenterY: y + size/2, Radius: t.FlameRadius}
		e.Box = entity.Box{X: fs.CenterX + fs.Radius - half/2, Y: fs.CenterY - half/2, W: half, H: half}
		e.SpeedY = 0
		e.Scratch = fs
	case entity.KindStar, entity.KindOneUp:
		e.SpeedX = t.PickupSpeed
		e.Gravity = true
	case entity.KindCoin:
		e.SpeedY = 0
	}

	left, right := s.textures.Pair(kind)
	e.Texture, e.TextureAlt = left, right
	if e.SpeedX > 0 {
		e.Texture, e.TextureAlt = right, left
	}
	return s.world.Spawn(e)
}

func (s *Simulation) spawnPlayer(x, y int) ecs.Handle {
	t := s.tuning
	left, right := s.textures.Pair(entity.KindPlayer)
	return s.world.Spawn(entity.Entity{
		Kind:       entity.KindPlayer,
		Box:        entity.Box{X: x, Y: y, W: t.PlayerWidth, H: t.PlayerHeight},
		SpeedX:     t.WalkSpeed,
		SpeedY:     1,
		Gravity:    true,
		Texture:    right,
		TextureAlt: left,
		Scratch:    &entity.PlayerState{},
	})
}

// retexture gives e the texture pair of its current kind, keeping its facing
func (s *Simulation) retexture(e *entity.Entity) {
	s.retextureFacing(e, e.FacingRight())
}

func (s *Simulation) retextureFacing(e *entity.Entity, facingRight bool) {
	left, right := s.textures.Pair(e.Kind)
	if facingRight {
		e.Texture, e.TextureAlt = right, left
	} else {
		e.Texture, e.TextureAlt = left, right
	}
}

// turnAround reverses horizontal travel and swaps the texture pair
func turnAround(e *entity.Entity) {
	e.SpeedX = -e.SpeedX
	e.SwapTextures()
}
