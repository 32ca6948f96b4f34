package entity

// Kind is the closed set of entity variants the simulation knows about.
// Variants that carry a state machine (ice block, bomb, brick) are split into
// one Kind per state so a single switch covers every case.
type Kind uint8

const (
	KindDead Kind = iota
	KindPlayer
	KindSnowball
	KindIceBlock
	KindIceBlockStunned
	KindIceBlockKicked
	KindBomb
	KindBombTicking
	KindBombExploding
	KindBouncingSnowball
	KindFlyingSnowball
	KindStalactite
	KindSpiky
	KindJumpy
	KindFlame
	KindBlock
	KindBrick
	KindBrickDestroyed
	KindBonus
	KindCoin
	KindWin
	KindInvisible
	KindStar
	KindOneUp

	kindCount
)

var kindNames = [kindCount]string{
	KindDead:             "Dead",
	KindPlayer:           "Player",
	KindSnowball:         "Snowball",
	KindIceBlock:         "IceBlock",
	KindIceBlockStunned:  "IceBlockStunned",
	KindIceBlockKicked:   "IceBlockKicked",
	KindBomb:             "Bomb",
	KindBombTicking:      "BombTicking",
	KindBombExploding:    "BombExploding",
	KindBouncingSnowball: "BouncingSnowball",
	KindFlyingSnowball:   "FlyingSnowball",
	KindStalactite:       "Stalactite",
	KindSpiky:            "Spiky",
	KindJumpy:            "Jumpy",
	KindFlame:            "Flame",
	KindBlock:            "Block",
	KindBrick:            "Brick",
	KindBrickDestroyed:   "BrickDestroyed",
	KindBonus:            "Bonus",
	KindCoin:             "Coin",
	KindWin:              "Win",
	KindInvisible:        "Invisible",
	KindStar:             "Star",
	KindOneUp:            "OneUp",
}

// String returns the string representation of the kind
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseKind maps a spawn name from a level file to a Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "snowball":
		return KindSnowball, true
	case "mriceblock", "iceblock":
		return KindIceBlock, true
	case "mrbomb", "bomb":
		return KindBomb, true
	case "bouncingsnowball":
		return KindBouncingSnowball, true
	case "flyingsnowball":
		return KindFlyingSnowball, true
	case "stalactite":
		return KindStalactite, true
	case "spiky":
		return KindSpiky, true
	case "jumpy":
		return KindJumpy, true
	case "flame":
		return KindFlame, true
	case "money", "coin":
		return KindCoin, true
	case "star":
		return KindStar, true
	case "oneup", "1up":
		return KindOneUp, true
	}
	return KindDead, false
}

// Terminal reports kinds that only wait to be reaped.
func (k Kind) Terminal() bool {
	return k == KindDead || k == KindBrickDestroyed
}

// Badguy reports kinds that hurt the player and die to kicked ice blocks and explosions.
func (k Kind) Badguy() bool {
	switch k {
	case KindSnowball, KindIceBlock, KindIceBlockStunned, KindIceBlockKicked,
		KindBomb, KindBombTicking, KindBouncingSnowball, KindFlyingSnowball,
		KindStalactite, KindSpiky, KindJumpy:
		return true
	}
	return false
}

// Static reports kinds built from interactive tiles. They never move.
func (k Kind) Static() bool {
	switch k {
	case KindBlock, KindBrick, KindBrickDestroyed, KindBonus, KindWin, KindInvisible:
		return true
	}
	return false
}

// Pickup reports kinds collected on any contact.
func (k Kind) Pickup() bool {
	return k == KindCoin || k == KindStar || k == KindOneUp
}

// PassableX reports kinds that never block horizontal movement.
func (k Kind) PassableX() bool {
	switch k {
	case KindCoin, KindDead, KindFlame, KindBrickDestroyed, KindBombExploding,
		KindInvisible, KindStar, KindOneUp:
		return true
	}
	return false
}

// PassableY reports kinds that never block vertical movement in the given
// direction. Invisible blocks only stop things coming from below.
func (k Kind) PassableY(up bool) bool {
	switch k {
	case KindCoin, KindDead, KindFlame, KindBrickDestroyed, KindBombExploding,
		KindStar, KindOneUp:
		return true
	case KindInvisible:
		return !up
	}
	return false
}
