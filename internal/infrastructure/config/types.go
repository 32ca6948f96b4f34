package config

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display DisplayConfig   `yaml:"display"`
	World   WorldConfig     `yaml:"world"`
	Physics PhysicsSettings `yaml:"physics"`
	Player  PlayerConfig    `yaml:"player"`
	Badguys BadguyConfig    `yaml:"badguys"`
	// Levels lists level ids in play order
	Levels []string `yaml:"levels"`
	Debug  bool     `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type WorldConfig struct {
	TileSize    int `yaml:"tileSize"`
	BucketWidth int `yaml:"bucketWidth"`
	ParkFloor   int `yaml:"parkFloor"` // x below which scrolled-out entities are freed
	MaxCatchUp  int `yaml:"maxCatchUp"`
}

type PhysicsSettings struct {
	Gravity      float64 `yaml:"gravity"`      // pixels/tick²
	MaxFallSpeed float64 `yaml:"maxFallSpeed"` // pixels/tick
}

type PlayerConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	WalkSpeed       float64 `yaml:"walkSpeed"`
	JumpSpeed       float64 `yaml:"jumpSpeed"`
	StompBounce     float64 `yaml:"stompBounce"`
	InvincibleTicks int     `yaml:"invincibleTicks"`
	Lives           int     `yaml:"lives"`
}

type BadguyConfig struct {
	Size          int              `yaml:"size"`
	WalkSpeed     float64          `yaml:"walkSpeed"`
	PickupSpeed   float64          `yaml:"pickupSpeed"`
	KickSpeed     float64          `yaml:"kickSpeed"`
	BounceImpulse float64          `yaml:"bounceImpulse"`
	JumpyImpulse  float64          `yaml:"jumpyImpulse"`
	Bomb          BombConfig       `yaml:"bomb"`
	Flying        FlyingConfig     `yaml:"flying"`
	Stalactite    StalactiteConfig `yaml:"stalactite"`
	Flame         FlameConfig      `yaml:"flame"`
}

type BombConfig struct {
	Fuse         int     `yaml:"fuse"`         // ticks
	ChaseSpeed   float64 `yaml:"chaseSpeed"`   // pixels/tick
	ExplodeTicks int     `yaml:"explodeTicks"` // blast duration
	FlashPeriod  int     `yaml:"flashPeriod"`  // ticks between texture swaps
}

type FlyingConfig struct {
	Speed float64 `yaml:"speed"`
	Range int     `yaml:"range"` // pixels of vertical travel before turning
}

type StalactiteConfig struct {
	Trigger int `yaml:"trigger"` // horizontal distance to the player in pixels
	Wait    int `yaml:"wait"`    // ticks of shaking before the fall
}

type FlameConfig struct {
	Radius int     `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // radians/tick
}
