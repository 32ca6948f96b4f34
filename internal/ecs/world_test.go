package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/snowtux/internal/domain/entity"
)

const (
	testBucket = 128
	testViewW  = 640
	testViewH  = 480
)

func newTestWorld() *World {
	return NewWorld(testBucket, 1280, testViewW, testViewH)
}

func box(kind entity.Kind, x, y int) entity.Entity {
	return entity.Entity{Kind: kind, Box: entity.Box{X: x, Y: y, W: 32, H: 32}}
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld()

	assert.NotNil(t, w)
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, testBucket, w.BucketWidth())
	assert.Equal(t, 10, w.index.Len())
}

func TestSpawnAndGet(t *testing.T) {
	w := newTestWorld()

	h := w.Spawn(box(entity.KindSnowball, 100, 50))
	require.False(t, h.IsZero())

	e := w.Get(h)
	require.NotNil(t, e)
	assert.Equal(t, entity.KindSnowball, e.Kind)
	assert.Equal(t, 100, e.X)
	assert.Equal(t, 1, w.Len())
}

func TestHandleGoesStaleAfterDestroy(t *testing.T) {
	w := newTestWorld()

	h1 := w.Spawn(box(entity.KindSnowball, 10, 10))
	require.True(t, w.Destroy(h1))
	assert.False(t, w.Alive(h1))
	assert.Nil(t, w.Get(h1))

	// the slot is reused with a new generation
	h2 := w.Spawn(box(entity.KindBlock, 20, 20))
	assert.Equal(t, h1.Index, h2.Index)
	assert.NotEqual(t, h1.Gen, h2.Gen)
	assert.Nil(t, w.Get(h1), "stale handle must not resolve to the new entity")
	assert.False(t, w.Destroy(h1))
	assert.Equal(t, 1, w.Len())
}

func TestZeroHandleResolvesToNothing(t *testing.T) {
	w := newTestWorld()
	w.Spawn(box(entity.KindBlock, 0, 0))

	assert.Nil(t, w.Get(Handle{}))
	assert.Nil(t, w.Get(Handle{Index: 99, Gen: 1}))
}

func TestSpawnTooWidePanics(t *testing.T) {
	w := newTestWorld()
	e := box(entity.KindBlock, 0, 0)
	e.W = testBucket

	assert.Panics(t, func() { w.Spawn(e) })
}

func TestSetPositionMigratesBucket(t *testing.T) {
	w := newTestWorld()
	h := w.Spawn(box(entity.KindSnowball, 120, 0))

	assert.Contains(t, w.index.bucket(0), h)

	w.MoveBy(h, 10, 0)
	assert.Equal(t, 130, w.Get(h).X)
	assert.NotContains(t, w.index.bucket(0), h)
	assert.Contains(t, w.index.bucket(1), h)
	require.NoError(t, w.CheckInvariants())
}

func TestResize(t *testing.T) {
	w := newTestWorld()
	h := w.Spawn(box(entity.KindBomb, 200, 100))

	w.Resize(h, entity.Box{X: 168, Y: 68, W: 96, H: 96})
	e := w.Get(h)
	assert.Equal(t, 96, e.W)
	assert.Equal(t, 168, e.X)
	require.NoError(t, w.CheckInvariants())

	assert.Panics(t, func() { w.Resize(h, entity.Box{W: testBucket, H: 1}) })
}

func TestHandlesInBucketOrder(t *testing.T) {
	w := newTestWorld()
	far := w.Spawn(box(entity.KindBlock, 600, 0))
	near := w.Spawn(box(entity.KindBlock, 10, 0))
	mid := w.Spawn(box(entity.KindBlock, 300, 0))

	assert.Equal(t, []Handle{near, mid, far}, w.Handles())
}

func TestAllSkipsFreedSlots(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(box(entity.KindBlock, 0, 0))
	b := w.Spawn(box(entity.KindBlock, 40, 0))
	w.Destroy(a)

	var got []Handle
	for h := range w.All() {
		got = append(got, h)
	}
	assert.Equal(t, []Handle{b}, got)
}

func TestCheckInvariantsDetectsDirectWrite(t *testing.T) {
	w := newTestWorld()
	h := w.Spawn(box(entity.KindSnowball, 10, 0))

	w.Get(h).X = 500 // bypasses the index
	err := w.CheckInvariants()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBucketMismatch)
}
