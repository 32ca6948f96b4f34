package entity

import (
	"errors"
	"fmt"
)

// ErrMalformedLevel is returned when level data violates its shape constraints
var ErrMalformedLevel = errors.New("malformed level")

// TileMatrix holds tile codes indexed [row][column]
type TileMatrix [][]uint8

// NewTileMatrix allocates a zeroed width x height matrix
func NewTileMatrix(width, height int) TileMatrix {
	m := make(TileMatrix, height)
	for y := range m {
		m[y] = make([]uint8, width)
	}
	return m
}

// At returns the code at tile coordinates, 0 outside the matrix
func (m TileMatrix) At(tx, ty int) uint8 {
	if ty < 0 || ty >= len(m) || tx < 0 || tx >= len(m[ty]) {
		return TileEmpty
	}
	return m[ty][tx]
}

// Set writes a code; writes outside the matrix are dropped
func (m TileMatrix) Set(tx, ty int, code uint8) {
	if ty < 0 || ty >= len(m) || tx < 0 || tx >= len(m[ty]) {
		return
	}
	m[ty][tx] = code
}

// Clone returns a deep copy
func (m TileMatrix) Clone() TileMatrix {
	out := make(TileMatrix, len(m))
	for y, row := range m {
		out[y] = append([]uint8(nil), row...)
	}
	return out
}

// Spawn is one non-tile object placed by the level, in tile coordinates
type Spawn struct {
	Kind  Kind
	TileX int
	TileY int
}

// Checkpoint is a respawn point in level pixels
type Checkpoint struct {
	X, Y int
}

// Metadata is carried through from the level file untouched
type Metadata struct {
	Version        int
	Name           string
	Author         string
	Background     string
	Music          string
	ParticleSystem string
	Theme          string
	Time           int
	Gravity        int
}

// Level is a loaded level. The interactive matrix is the source of truth for
// tiles consumed during play (coins, bricks, opened bonus blocks).
type Level struct {
	ID     string
	Width  int // tiles
	Height int // tiles
	Meta   Metadata

	Background  TileMatrix
	Interactive TileMatrix
	Foreground  TileMatrix

	Start       Checkpoint
	Spawns      []Spawn
	Checkpoints []Checkpoint // ascending by X
}

// PixelWidth returns the level width in pixels
func (l *Level) PixelWidth(tileSize int) int {
	return l.Width * tileSize
}

// Validate checks matrix dimensions, spawn bounds and checkpoint order
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrMalformedLevel, l.Width, l.Height)
	}
	layers := []struct {
		name string
		m    TileMatrix
	}{
		{"background", l.Background},
		{"interactive", l.Interactive},
		{"foreground", l.Foreground},
	}
	for _, layer := range layers {
		name, m := layer.name, layer.m
		if len(m) != l.Height {
			return fmt.Errorf("%w: %s has %d rows, want %d", ErrMalformedLevel, name, len(m), l.Height)
		}
		for y, row := range m {
			if len(row) != l.Width {
				return fmt.Errorf("%w: %s row %d has %d columns, want %d", ErrMalformedLevel, name, y, len(row), l.Width)
			}
		}
	}
	for i, s := range l.Spawns {
		if s.TileX < 0 || s.TileX >= l.Width || s.TileY < 0 || s.TileY >= l.Height {
			return fmt.Errorf("%w: spawn %d (%s) at %d,%d is outside the level", ErrMalformedLevel, i, s.Kind, s.TileX, s.TileY)
		}
	}
	for i := 1; i < len(l.Checkpoints); i++ {
		if l.Checkpoints[i].X < l.Checkpoints[i-1].X {
			return fmt.Errorf("%w: checkpoints not sorted by x at index %d", ErrMalformedLevel, i)
		}
	}
	return nil
}

// Clone returns a deep copy so a level can be reseeded after tiles were consumed
func (l *Level) Clone() *Level {
	out := *l
	out.Background = l.Background.Clone()
	out.Interactive = l.Interactive.Clone()
	out.Foreground = l.Foreground.Clone()
	out.Spawns = append([]Spawn(nil), l.Spawns...)
	out.Checkpoints = append([]Checkpoint(nil), l.Checkpoints...)
	return &out
}
