package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/snowtux/internal/domain/entity"
)

func TestBucketOf(t *testing.T) {
	ix := NewIndex(128, 1000)

	tests := []struct {
		x    int
		want int
	}{
		{0, 0},
		{127, 0},
		{128, 1},
		{999, 7},
		{-1, -1},
		{-100, -1},
		{-128, -1},
		{-129, -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ix.BucketOf(tt.x), "x=%d", tt.x)
	}
}

func TestNewIndexBucketCount(t *testing.T) {
	assert.Equal(t, 8, NewIndex(128, 1000).Len())
	assert.Equal(t, 1, NewIndex(128, 0).Len())
	assert.Panics(t, func() { NewIndex(0, 100) })
}

func TestIndexGrowsBothWays(t *testing.T) {
	w := NewWorld(128, 256, 640, 480)

	left := w.Spawn(box(entity.KindSnowball, -100, 0))
	right := w.Spawn(box(entity.KindSnowball, 900, 0))

	assert.Equal(t, -1, w.index.origin)
	assert.Contains(t, w.index.bucket(-1), left)
	assert.Contains(t, w.index.bucket(7), right)
	require.NoError(t, w.CheckInvariants())
}

func TestIndexRemoveSwapsLast(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(box(entity.KindBlock, 0, 0))
	b := w.Spawn(box(entity.KindBlock, 32, 0))
	c := w.Spawn(box(entity.KindBlock, 64, 0))

	w.Destroy(a)
	assert.ElementsMatch(t, []Handle{b, c}, w.index.bucket(0))
	require.NoError(t, w.CheckInvariants())
}

func TestBucketConsistencyUnderRandomishMoves(t *testing.T) {
	w := newTestWorld()
	var hs []Handle
	for i := 0; i < 40; i++ {
		hs = append(hs, w.Spawn(box(entity.KindSnowball, i*29, 0)))
	}

	for step := 0; step < 200; step++ {
		h := hs[(step*7)%len(hs)]
		dx := (step%13 - 6) * 11
		w.MoveBy(h, dx, 0)
		if step%17 == 0 {
			w.Destroy(hs[(step*3)%len(hs)])
		}
		require.NoError(t, w.CheckInvariants(), "step %d", step)
	}
}
