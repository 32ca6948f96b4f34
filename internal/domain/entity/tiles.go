package entity

// Interactive tile codes
const (
	TileEmpty      uint8 = 0
	TileCoin       uint8 = 44
	TileBrick      uint8 = 77
	TileSpentBonus uint8 = 84
	TileWin        uint8 = 132
	TileInvisible  uint8 = 135

	TileBonusCoin     uint8 = 26
	TileBonusCoinAlt  uint8 = 83
	TileBonusSnowball uint8 = 104
	TileBonusStar     uint8 = 105
	TileBonusOneUp    uint8 = 106
)

// TileClass is what an interactive tile turns into when a level is seeded
type TileClass uint8

const (
	TileClassNone TileClass = iota
	TileClassUnknown
	TileClassBlock
	TileClassBrick
	TileClassBonus
	TileClassCoin
	TileClassWin
	TileClassInvisible
)

var tileClasses [256]TileClass

func init() {
	for c := 10; c <= 23; c++ {
		tileClasses[c] = TileClassBlock
	}
	for _, c := range []uint8{25, 27, 28, 29, 48, 84, 102, 113, 114, 128} {
		tileClasses[c] = TileClassBlock
	}
	for _, c := range []uint8{TileBonusCoin, TileBonusCoinAlt, TileBonusSnowball, TileBonusStar, TileBonusOneUp} {
		tileClasses[c] = TileClassBonus
	}
	tileClasses[TileBrick] = TileClassBrick
	tileClasses[TileCoin] = TileClassCoin
	tileClasses[TileWin] = TileClassWin
	tileClasses[TileInvisible] = TileClassInvisible

	for c := 1; c < 256; c++ {
		if tileClasses[c] == TileClassNone && !decorative(uint8(c)) {
			tileClasses[c] = TileClassUnknown
		}
	}
}

func decorative(c uint8) bool {
	switch {
	case c == 7, c == 8, c == 9, c == 126, c == 133:
		return true
	case c >= 85 && c <= 92:
		return true
	}
	return false
}

// ClassifyTile returns the class of an interactive tile code
func ClassifyTile(code uint8) TileClass {
	return tileClasses[code]
}

// BonusContentOf returns what a bonus tile releases
func BonusContentOf(code uint8) BonusContent {
	switch code {
	case TileBonusSnowball:
		return ContentSnowball
	case TileBonusStar:
		return ContentStar
	case TileBonusOneUp:
		return ContentOneUp
	default:
		return ContentCoin
	}
}
