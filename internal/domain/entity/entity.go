package entity

// Box is an axis-aligned rectangle in screen pixels, y pointing down.
// Edges are inclusive: a 32px wide box at x=0 spans columns 0..31.
type Box struct {
	X, Y int
	W, H int
}

// Left returns the leftmost pixel column
func (b Box) Left() int { return b.X }

// Right returns the rightmost pixel column
func (b Box) Right() int { return b.X + b.W - 1 }

// Top returns the topmost pixel row
func (b Box) Top() int { return b.Y }

// Bottom returns the bottommost pixel row
func (b Box) Bottom() int { return b.Y + b.H - 1 }

// CenterX returns the horizontal centre
func (b Box) CenterX() int { return b.X + b.W/2 }

// Offset returns a copy of b moved by dx, dy
func (b Box) Offset(dx, dy int) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Cell addresses one cell of the interactive tile matrix.
type Cell struct {
	X, Y  int
	Valid bool
}

// Entity is one simulated object. Position changes must go through the
// owning world so that spatial bucket membership stays in sync.
type Entity struct {
	Kind Kind
	Box

	SpeedX float64
	SpeedY float64

	Gravity bool
	Patrol  bool

	// Opaque texture handles owned by the renderer. The simulation only swaps them.
	Texture    TextureID
	TextureAlt TextureID

	// Cell is set for entities created from the interactive tile matrix.
	Cell Cell

	Scratch Scratch
}

// SwapTextures exchanges the two texture handles (turning around, flashing).
func (e *Entity) SwapTextures() {
	e.Texture, e.TextureAlt = e.TextureAlt, e.Texture
}

// FacingRight reports the horizontal direction of travel.
func (e *Entity) FacingRight() bool {
	return e.SpeedX >= 0
}

// Scratch is the per-kind state payload. The set of implementations is closed.
type Scratch interface {
	isScratch()
}

// PlayerState is the scratch payload of the player
type PlayerState struct {
	Carrying   Handle
	Grounded   bool
	Invincible int // ticks left
}

func (*PlayerState) isScratch() {}

// BombState counts down the fuse while ticking and the blast while exploding
type BombState struct {
	Countdown int
}

func (*BombState) isScratch() {}

// FlyState tracks the vertical travel of a flying snowball
type FlyState struct {
	Travelled int
}

func (*FlyState) isScratch() {}

// StalactitePhase is the state of a stalactite
type StalactitePhase uint8

const (
	StalactiteHanging StalactitePhase = iota
	StalactiteShaking
	StalactiteFalling
)

// StalactiteState holds the phase and the shake countdown
type StalactiteState struct {
	Phase StalactitePhase
	Wait  int
}

func (*StalactiteState) isScratch() {}

// FlameState describes the orbit of a flame
type FlameState struct {
	CenterX, CenterY int
	Radius           int
	Angle            float64 // radians, [0, 2π)
}

func (*FlameState) isScratch() {}

// BonusContent is what an opened bonus block releases
type BonusContent uint8

const (
	ContentCoin BonusContent = iota
	ContentSnowball
	ContentStar
	ContentOneUp
)

// BonusState is the scratch payload of a bonus block
type BonusState struct {
	Active  bool
	Content BonusContent
}

func (*BonusState) isScratch() {}

// Handle is a generational reference into the entity arena. The zero value
// refers to nothing.
type Handle struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether h refers to nothing
func (h Handle) IsZero() bool {
	return h.Gen == 0
}
