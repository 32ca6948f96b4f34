package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/snowtux/internal/domain/entity"
)

func mover(w *World, x, y int, sx, sy float64) Handle {
	e := box(entity.KindSnowball, x, y)
	e.SpeedX, e.SpeedY = sx, sy
	return w.Spawn(e)
}

func TestCanMove_FreeSpace(t *testing.T) {
	w := newTestWorld()
	h := mover(w, 100, 100, 4, -3)

	assert.Equal(t, 4, w.CanMove(h, Horizontal, Rules{}))
	assert.Equal(t, -3, w.CanMove(h, Vertical, Rules{}))
	assert.Equal(t, 100, w.Get(h).X, "CanMove must not move the entity")
}

func TestCanMove_StopsAdjacent(t *testing.T) {
	tests := []struct {
		name   string
		blockX int
		speed  float64
		want   int
	}{
		{"already touching", 132, 4, 0},
		{"one pixel away", 133, 4, 1},
		{"three pixels away", 135, 4, 3},
		{"out of reach", 200, 4, 4},
		{"left touching", 68, -4, 0},
		{"left two away", 66, -4, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			h := mover(w, 100, 100, tt.speed, 0)
			w.Spawn(box(entity.KindBlock, tt.blockX, 100))

			got := w.CanMove(h, Horizontal, Rules{})
			assert.Equal(t, tt.want, got)

			// applying the result never overlaps the blocker
			w.MoveBy(h, got, 0)
			for _, n := range w.Query(h, Horizontal) {
				assert.False(t, Overlaps(w.Get(h).Box, w.Get(n).Box))
			}
		})
	}
}

func TestCanMove_FractionalSpeedFloors(t *testing.T) {
	w := newTestWorld()
	h := mover(w, 100, 100, 2.9, 0.5)

	assert.Equal(t, 2, w.CanMove(h, Horizontal, Rules{}))
	assert.Equal(t, 0, w.CanMove(h, Vertical, Rules{}))
}

func TestCanMove_PassableKindsIgnored(t *testing.T) {
	for _, k := range []entity.Kind{entity.KindCoin, entity.KindFlame, entity.KindDead, entity.KindBrickDestroyed} {
		w := newTestWorld()
		h := mover(w, 100, 100, 4, 4)
		w.Spawn(box(k, 132, 100))
		w.Spawn(box(k, 100, 132))

		assert.Equal(t, 4, w.CanMove(h, Horizontal, Rules{}), k.String())
		assert.Equal(t, 4, w.CanMove(h, Vertical, Rules{}), k.String())
	}
}

func TestCanMove_IgnoreHandle(t *testing.T) {
	w := newTestWorld()
	h := mover(w, 100, 100, 4, 0)
	carried := w.Spawn(box(entity.KindIceBlockStunned, 132, 100))

	assert.Equal(t, 0, w.CanMove(h, Horizontal, Rules{}))
	assert.Equal(t, 4, w.CanMove(h, Horizontal, Rules{Ignore: carried}))
}

func TestCanMove_StandingOnBlock(t *testing.T) {
	w := newTestWorld()
	p := box(entity.KindPlayer, 100, 200)
	p.SpeedX, p.SpeedY = 4, 1
	h := w.Spawn(p)
	w.Spawn(box(entity.KindBlock, 100, 232))

	assert.Equal(t, 0, w.CanMove(h, Vertical, Rules{}))
	assert.True(t, w.Supported(h))
}

func TestCanMove_BonkReversesSpeed(t *testing.T) {
	w := newTestWorld()
	h := mover(w, 100, 100, 0, -10)
	w.Spawn(box(entity.KindBrick, 100, 64)) // bottom row 95

	got := w.CanMove(h, Vertical, Rules{})
	assert.Equal(t, -4, got)
	assert.Equal(t, 10.0, w.Get(h).SpeedY)
}

func TestCanMove_InvisibleBlocksOnlyFromBelow(t *testing.T) {
	w := newTestWorld()
	up := mover(w, 100, 100, 0, -4)
	w.Spawn(box(entity.KindInvisible, 100, 67)) // bottom row 98

	assert.Equal(t, -1, w.CanMove(up, Vertical, Rules{}))

	w2 := newTestWorld()
	down := mover(w2, 100, 100, 0, 4)
	w2.Spawn(box(entity.KindInvisible, 100, 133))
	assert.Equal(t, 4, w2.CanMove(down, Vertical, Rules{}))
}

func TestCanMove_ScreenFloor(t *testing.T) {
	w := newTestWorld()
	h := mover(w, 100, testViewH-34, 0, 8) // bottom row 477

	assert.Equal(t, 2, w.CanMove(h, Vertical, Rules{}))
	w.MoveBy(h, 0, 2)
	assert.True(t, w.AtFloor(h))
}

func TestCanMove_PlayerEdges(t *testing.T) {
	w := newTestWorld()
	left := mover(w, 2, 100, -8, 0)
	assert.Equal(t, -2, w.CanMove(left, Horizontal, Rules{Player: true}))
	assert.Equal(t, -8, w.CanMove(left, Horizontal, Rules{}), "only the player is held at x=0")

	right := mover(w, testViewW-36, 300, 8, 0) // right column 635
	assert.Equal(t, 8, w.CanMove(right, Horizontal, Rules{Player: true}))
	assert.Equal(t, 4, w.CanMove(right, Horizontal, Rules{Player: true, RightLocked: true}))
}

func TestSupportedAndFloorUnder(t *testing.T) {
	w := newTestWorld()
	h := mover(w, 100, 100, 0, 0)
	require.False(t, w.Supported(h))

	w.Spawn(box(entity.KindBlock, 90, 132))
	assert.True(t, w.Supported(h))

	// no floor one body-width to the right
	e := w.Get(h)
	assert.False(t, w.FloorUnder(e.Box.Offset(e.W, 0), h))
}

func TestSignAbs(t *testing.T) {
	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1, Sign(3))
	assert.Equal(t, 7, Abs(-7))
	assert.Equal(t, 3, Abs(3))
}
