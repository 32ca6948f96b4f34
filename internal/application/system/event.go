package system

import "github.com/younwookim/snowtux/internal/domain/entity"

// Event is something a UI collaborator may want to announce
type Event interface {
	isEvent()
}

// LevelLoaded is emitted after a level was (re)seeded
type LevelLoaded struct {
	ID   string
	Name string
}

func (LevelLoaded) isEvent() {}

// PlayerDied reports what killed the player (KindDead for the window floor)
type PlayerDied struct {
	Cause entity.Kind
}

func (PlayerDied) isEvent() {}

// LevelCompleted is emitted when the player touches a win tile
type LevelCompleted struct {
	ID string
}

func (LevelCompleted) isEvent() {}

// GameFinished is emitted when the last level of the sequence was completed
type GameFinished struct{}

func (GameFinished) isEvent() {}

// CoinCollected carries the new coin total
type CoinCollected struct {
	Total int
}

func (CoinCollected) isEvent() {}

// BonusOpened is emitted when a bonus block is hit from below
type BonusOpened struct {
	Content      entity.BonusContent
	TileX, TileY int
}

func (BonusOpened) isEvent() {}

// BrickBroken is emitted when a brick is flagged for destruction
type BrickBroken struct {
	TileX, TileY int
}

func (BrickBroken) isEvent() {}

// PowerUp is emitted when the player collects a star or an extra life
type PowerUp struct {
	Kind entity.Kind
}

func (PowerUp) isEvent() {}
