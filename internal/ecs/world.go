package ecs

import (
	"fmt"
	"iter"

	"github.com/younwookim/snowtux/internal/domain/entity"
)

// Handle is a generational entity reference. A handle to a freed slot goes stale
// and resolves to nothing, even after the slot is reused.
type Handle = entity.Handle

type slot struct {
	gen    uint32
	bucket int
	e      *entity.Entity
}

// World is the entity arena plus the spatial index over it
type World struct {
	slots []slot
	free  []uint32
	live  int
	index *Index

	// ViewWidth and ViewHeight bound the screen; the resolver stops
	// downward motion at ViewHeight and the player at the screen edges.
	ViewWidth  int
	ViewHeight int
}

// NewWorld creates an empty world whose index covers levelPixelWidth
func NewWorld(bucketWidth, levelPixelWidth, viewW, viewH int) *World {
	return &World{
		index:      NewIndex(bucketWidth, levelPixelWidth),
		ViewWidth:  viewW,
		ViewHeight: viewH,
	}
}

// BucketWidth returns the spatial bucket width in pixels
func (w *World) BucketWidth() int {
	return w.index.width
}

// Spawn stores e and returns its handle. It panics when the entity is as wide
// as a bucket, since neighbourhood queries would then miss overlaps.
func (w *World) Spawn(e entity.Entity) Handle {
	if e.W >= w.index.width {
		panic(fmt.Sprintf("ecs: %s is %dpx wide, bucket width is %d", e.Kind, e.W, w.index.width))
	}

	var h Handle
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		s := &w.slots[idx]
		s.gen++
		if s.gen == 0 { // zero means "no entity"
			s.gen = 1
		}
		h = Handle{Index: idx, Gen: s.gen}
	} else {
		w.slots = append(w.slots, slot{gen: 1})
		h = Handle{Index: uint32(len(w.slots) - 1), Gen: 1}
	}

	stored := e
	s := &w.slots[h.Index]
	s.e = &stored
	s.bucket = w.index.insert(h, stored.X)
	w.live++
	return h
}

// Get returns the entity behind h, or nil when h is stale
func (w *World) Get(h Handle) *entity.Entity {
	if h.Gen == 0 || int(h.Index) >= len(w.slots) {
		return nil
	}
	s := &w.slots[h.Index]
	if s.gen != h.Gen || s.e == nil {
		return nil
	}
	return s.e
}

// Alive reports whether h still refers to a stored entity
func (w *World) Alive(h Handle) bool {
	return w.Get(h) != nil
}

// Destroy frees the slot behind h. Stale handles are ignored.
func (w *World) Destroy(h Handle) bool {
	if w.Get(h) == nil {
		return false
	}
	s := &w.slots[h.Index]
	w.index.remove(h, s.bucket)
	s.e = nil
	w.free = append(w.free, h.Index)
	w.live--
	return true
}

// Len returns the number of live entities
func (w *World) Len() int {
	return w.live
}

// SetPosition moves the entity and migrates it between buckets when needed
func (w *World) SetPosition(h Handle, x, y int) {
	e := w.Get(h)
	if e == nil {
		return
	}
	e.X, e.Y = x, y
	s := &w.slots[h.Index]
	if b := w.index.BucketOf(x); b != s.bucket {
		w.index.remove(h, s.bucket)
		s.bucket = w.index.insert(h, x)
	}
}

// MoveBy offsets the entity by dx, dy
func (w *World) MoveBy(h Handle, dx, dy int) {
	if e := w.Get(h); e != nil {
		w.SetPosition(h, e.X+dx, e.Y+dy)
	}
}

// Resize changes the box in place, keeping bucket membership in sync
func (w *World) Resize(h Handle, box entity.Box) {
	e := w.Get(h)
	if e == nil {
		return
	}
	if box.W >= w.index.width {
		panic(fmt.Sprintf("ecs: resize of %s to %dpx exceeds bucket width %d", e.Kind, box.W, w.index.width))
	}
	e.W, e.H = box.W, box.H
	w.SetPosition(h, box.X, box.Y)
}

// All iterates live entities in slot order
func (w *World) All() iter.Seq2[Handle, *entity.Entity] {
	return func(yield func(Handle, *entity.Entity) bool) {
		for i := range w.slots {
			s := &w.slots[i]
			if s.e == nil {
				continue
			}
			if !yield(Handle{Index: uint32(i), Gen: s.gen}, s.e) {
				return
			}
		}
	}
}

// Handles returns a snapshot of every live handle in bucket order, left to right
func (w *World) Handles() []Handle {
	out := make([]Handle, 0, w.live)
	for _, b := range w.index.buckets {
		out = append(out, b...)
	}
	return out
}

// CheckInvariants verifies that every entity sits in the bucket of its x and is
// narrower than a bucket.
func (w *World) CheckInvariants() error {
	seen := 0
	for bi, b := range w.index.buckets {
		for _, h := range b {
			e := w.Get(h)
			if e == nil {
				return fmt.Errorf("%w: stale handle %v in bucket %d", ErrBucketMismatch, h, bi+w.index.origin)
			}
			if want := w.index.BucketOf(e.X); want != bi+w.index.origin || w.slots[h.Index].bucket != want {
				return fmt.Errorf("%w: %s at x=%d is in bucket %d, want %d", ErrBucketMismatch, e.Kind, e.X, bi+w.index.origin, want)
			}
			if e.W >= w.index.width {
				return fmt.Errorf("%w: %s is %dpx wide", ErrBoxTooWide, e.Kind, e.W)
			}
			seen++
		}
	}
	if seen != w.live {
		return fmt.Errorf("%w: index holds %d entities, arena holds %d", ErrBucketMismatch, seen, w.live)
	}
	return nil
}
