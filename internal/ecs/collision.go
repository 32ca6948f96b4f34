package ecs

import "github.com/younwookim/snowtux/internal/domain/entity"

// Axis selects which dimension a query box expands
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
	Both
)

// Overlaps reports whether two boxes share at least one pixel
func Overlaps(a, b entity.Box) bool {
	return a.Left() <= b.Right() && b.Left() <= a.Right() &&
		a.Top() <= b.Bottom() && b.Top() <= a.Bottom()
}

// Expand grows the box by one pixel on each side of the axis, so that
// touching neighbours count as colliding
func Expand(b entity.Box, axis Axis) entity.Box {
	if axis == Horizontal || axis == Both {
		b.X--
		b.W += 2
	}
	if axis == Vertical || axis == Both {
		b.Y--
		b.H += 2
	}
	return b
}

// Query returns every other live entity colliding with h's box expanded on axis
func (w *World) Query(h Handle, axis Axis) []Handle {
	e := w.Get(h)
	if e == nil {
		return nil
	}
	return w.QueryBox(Expand(e.Box, axis), h)
}

// QueryBox returns every live entity overlapping box, except exclude.
// Only the buckets that can hold an overlapping entity are scanned.
func (w *World) QueryBox(box entity.Box, exclude Handle) []Handle {
	var out []Handle
	first := w.index.BucketOf(box.Left()) - 1
	last := w.index.BucketOf(box.Right())
	for b := first; b <= last; b++ {
		for _, h := range w.index.bucket(b) {
			if h == exclude {
				continue
			}
			if other := w.Get(h); other != nil && Overlaps(box, other.Box) {
				out = append(out, h)
			}
		}
	}
	return out
}
