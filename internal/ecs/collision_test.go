package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/snowtux/internal/domain/entity"
)

func TestOverlaps(t *testing.T) {
	a := entity.Box{X: 0, Y: 0, W: 32, H: 32}

	tests := []struct {
		name string
		b    entity.Box
		want bool
	}{
		{"same box", a, true},
		{"inside", entity.Box{X: 8, Y: 8, W: 4, H: 4}, true},
		{"sharing last column", entity.Box{X: 31, Y: 0, W: 32, H: 32}, true},
		{"touching right", entity.Box{X: 32, Y: 0, W: 32, H: 32}, false},
		{"touching below", entity.Box{X: 0, Y: 32, W: 32, H: 32}, false},
		{"diagonal corner", entity.Box{X: 31, Y: 31, W: 32, H: 32}, true},
		{"far away", entity.Box{X: 200, Y: 200, W: 32, H: 32}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, a), "overlap must be symmetric")
		})
	}
}

func TestExpand(t *testing.T) {
	b := entity.Box{X: 10, Y: 20, W: 32, H: 32}

	assert.Equal(t, entity.Box{X: 9, Y: 20, W: 34, H: 32}, Expand(b, Horizontal))
	assert.Equal(t, entity.Box{X: 10, Y: 19, W: 32, H: 34}, Expand(b, Vertical))
	assert.Equal(t, entity.Box{X: 9, Y: 19, W: 34, H: 34}, Expand(b, Both))
}

func TestQueryTouchingVersusGap(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(box(entity.KindPlayer, 100, 100))

	// right(a)+1 == left(b): touching
	touching := w.Spawn(box(entity.KindBlock, 132, 100))
	// columns 98 and 99 free between the boxes
	gap := w.Spawn(box(entity.KindBlock, 66, 100))

	got := w.Query(a, Horizontal)
	assert.Contains(t, got, touching)
	assert.NotContains(t, got, gap)
}

func TestQueryAxis(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(box(entity.KindPlayer, 100, 100))
	below := w.Spawn(box(entity.KindBlock, 100, 132))
	beside := w.Spawn(box(entity.KindBlock, 132, 100))
	corner := w.Spawn(box(entity.KindBlock, 132, 132))

	assert.ElementsMatch(t, []Handle{beside}, w.Query(a, Horizontal))
	assert.ElementsMatch(t, []Handle{below}, w.Query(a, Vertical))
	assert.ElementsMatch(t, []Handle{below, beside, corner}, w.Query(a, Both))
}

func TestQueryAcrossBucketBoundary(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(box(entity.KindSnowball, 96, 0)) // bucket 0, right edge 127
	b := w.Spawn(box(entity.KindBlock, 128, 0))   // bucket 1

	assert.Equal(t, []Handle{b}, w.Query(a, Horizontal))
	assert.Equal(t, []Handle{a}, w.Query(b, Horizontal))
}

func TestQueryBoxExcludesAndSkipsStale(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(box(entity.KindBlock, 0, 0))
	b := w.Spawn(box(entity.KindBlock, 10, 0))
	w.Destroy(b)

	assert.Empty(t, w.QueryBox(entity.Box{X: 0, Y: 0, W: 64, H: 64}, a))
}
