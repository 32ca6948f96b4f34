package ecs

import "errors"

var (
	// ErrBucketMismatch reports an entity stored outside the bucket of its x
	ErrBucketMismatch = errors.New("spatial index out of sync")
	// ErrBoxTooWide reports an entity at least as wide as a bucket
	ErrBoxTooWide = errors.New("entity wider than a bucket")
)

// Index partitions entities into fixed-width vertical strips by x. Bucket
// numbers may be negative for entities scrolled off the left edge; buckets[0]
// holds bucket number origin and the slice grows in both directions on demand.
type Index struct {
	width   int
	origin  int
	buckets [][]Handle
}

// NewIndex creates ceil(pixelWidth / bucketWidth) buckets starting at x=0
func NewIndex(bucketWidth, pixelWidth int) *Index {
	if bucketWidth <= 0 {
		panic("ecs: bucket width must be positive")
	}
	n := (pixelWidth + bucketWidth - 1) / bucketWidth
	if n < 1 {
		n = 1
	}
	return &Index{
		width:   bucketWidth,
		buckets: make([][]Handle, n),
	}
}

// BucketOf returns floor(x / width)
func (ix *Index) BucketOf(x int) int {
	b := x / ix.width
	if x < 0 && x%ix.width != 0 {
		b--
	}
	return b
}

// Len returns the number of buckets currently allocated
func (ix *Index) Len() int {
	return len(ix.buckets)
}

func (ix *Index) grow(b int) {
	if b < ix.origin {
		extra := ix.origin - b
		grown := make([][]Handle, extra+len(ix.buckets))
		copy(grown[extra:], ix.buckets)
		ix.buckets = grown
		ix.origin = b
	}
	if last := ix.origin + len(ix.buckets) - 1; b > last {
		ix.buckets = append(ix.buckets, make([][]Handle, b-last)...)
	}
}

func (ix *Index) insert(h Handle, x int) int {
	b := ix.BucketOf(x)
	ix.grow(b)
	i := b - ix.origin
	ix.buckets[i] = append(ix.buckets[i], h)
	return b
}

func (ix *Index) remove(h Handle, b int) {
	i := b - ix.origin
	if i < 0 || i >= len(ix.buckets) {
		return
	}
	cell := ix.buckets[i]
	for j, other := range cell {
		if other == h {
			last := len(cell) - 1
			cell[j] = cell[last]
			cell[last] = Handle{}
			ix.buckets[i] = cell[:last]
			return
		}
	}
}

// bucket returns the handles of bucket number b, nil outside the allocated range
func (ix *Index) bucket(b int) []Handle {
	i := b - ix.origin
	if i < 0 || i >= len(ix.buckets) {
		return nil
	}
	return ix.buckets[i]
}
