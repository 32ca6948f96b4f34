package system

import (
	"github.com/younwookim/snowtux/internal/ecs"
	"github.com/younwookim/snowtux/internal/infrastructure/config"
)

// Tuning holds every simulation constant in pixels and ticks
type Tuning struct {
	ViewWidth   int
	ViewHeight  int
	TileSize    int
	BucketWidth int
	ParkFloor   int

	Gravity ecs.Gravity

	PlayerWidth     int
	PlayerHeight    int
	WalkSpeed       float64
	JumpSpeed       float64
	StompBounce     float64
	InvincibleTicks int
	Lives           int

	BadguySize    int
	BadguySpeed   float64
	PickupSpeed   float64
	KickSpeed     float64
	BounceImpulse float64
	JumpyImpulse  float64

	BombFuse        int
	BombChaseSpeed  float64
	ExplodeTicks    int
	ExplodeFlash    int
	FlySpeed        float64
	FlyRange        int
	StalactiteRange int
	StalactiteWait  int
	FlameRadius     int
	FlameSpeed      float64

	// Debug panics on spatial index inconsistencies after every tick
	Debug bool
}

// DefaultTuning returns the stock values also shipped in physics.yaml
func DefaultTuning() Tuning {
	return Tuning{
		ViewWidth:   640,
		ViewHeight:  480,
		TileSize:    32,
		BucketWidth: 128,
		ParkFloor:   -100,

		Gravity: ecs.Gravity{Accel: 1, MaxFall: 16},

		PlayerWidth:     32,
		PlayerHeight:    32,
		WalkSpeed:       4,
		JumpSpeed:       12,
		StompBounce:     8,
		InvincibleTicks: 600,
		Lives:           3,

		BadguySize:    32,
		BadguySpeed:   2,
		PickupSpeed:   2,
		KickSpeed:     8,
		BounceImpulse: 9,
		JumpyImpulse:  10,

		BombFuse:        90,
		BombChaseSpeed:  1,
		ExplodeTicks:    30,
		ExplodeFlash:    4,
		FlySpeed:        1,
		FlyRange:        64,
		StalactiteRange: 96,
		StalactiteWait:  40,
		FlameRadius:     64,
		FlameSpeed:      0.05,
	}
}

// TuningFromConfig converts the physics document into simulation tuning
func TuningFromConfig(cfg *config.PhysicsConfig) Tuning {
	return Tuning{
		ViewWidth:   cfg.Display.ScreenWidth,
		ViewHeight:  cfg.Display.ScreenHeight,
		TileSize:    cfg.World.TileSize,
		BucketWidth: cfg.World.BucketWidth,
		ParkFloor:   cfg.World.ParkFloor,

		Gravity: ecs.Gravity{Accel: cfg.Physics.Gravity, MaxFall: cfg.Physics.MaxFallSpeed},

		PlayerWidth:     cfg.Player.Width,
		PlayerHeight:    cfg.Player.Height,
		WalkSpeed:       cfg.Player.WalkSpeed,
		JumpSpeed:       cfg.Player.JumpSpeed,
		StompBounce:     cfg.Player.StompBounce,
		InvincibleTicks: cfg.Player.InvincibleTicks,
		Lives:           cfg.Player.Lives,

		BadguySize:    cfg.Badguys.Size,
		BadguySpeed:   cfg.Badguys.WalkSpeed,
		PickupSpeed:   cfg.Badguys.PickupSpeed,
		KickSpeed:     cfg.Badguys.KickSpeed,
		BounceImpulse: cfg.Badguys.BounceImpulse,
		JumpyImpulse:  cfg.Badguys.JumpyImpulse,

		BombFuse:        cfg.Badguys.Bomb.Fuse,
		BombChaseSpeed:  cfg.Badguys.Bomb.ChaseSpeed,
		ExplodeTicks:    cfg.Badguys.Bomb.ExplodeTicks,
		ExplodeFlash:    cfg.Badguys.Bomb.FlashPeriod,
		FlySpeed:        cfg.Badguys.Flying.Speed,
		FlyRange:        cfg.Badguys.Flying.Range,
		StalactiteRange: cfg.Badguys.Stalactite.Trigger,
		StalactiteWait:  cfg.Badguys.Stalactite.Wait,
		FlameRadius:     cfg.Badguys.Flame.Radius,
		FlameSpeed:      cfg.Badguys.Flame.Speed,

		Debug: cfg.Debug,
	}
}
