package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/younwookim/snowtux/internal/application/system"
	"github.com/younwookim/snowtux/internal/domain/entity"
)

// Cell size in simulation pixels. One tile is two columns wide and one row high.
const (
	CellWidth  = 16
	CellHeight = 32
)

// hudRows are the lines above the playfield
const hudRows = 2

var tileGlyphs = map[entity.TileClass]rune{
	entity.TileClassBlock: '#',
	entity.TileClassBrick: '%',
	entity.TileClassBonus: '?',
	entity.TileClassCoin:  '$',
	entity.TileClassWin:   'W',
}

var kindGlyphs = map[entity.Kind]rune{
	entity.KindPlayer:           '@',
	entity.KindSnowball:         'o',
	entity.KindIceBlock:         'I',
	entity.KindIceBlockStunned:  'i',
	entity.KindIceBlockKicked:   '=',
	entity.KindBomb:             'b',
	entity.KindBombTicking:      'B',
	entity.KindBombExploding:    '*',
	entity.KindBouncingSnowball: 'O',
	entity.KindFlyingSnowball:   'v',
	entity.KindStalactite:       'V',
	entity.KindSpiky:            'x',
	entity.KindJumpy:            'j',
	entity.KindFlame:            '~',
	entity.KindCoin:             '$',
	entity.KindStar:             '+',
	entity.KindOneUp:            '1',
}

var (
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTile   = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleDecor  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateBlue)
	styleBadguy = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePickup = tcell.StyleDefault.Foreground(tcell.ColorGold)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
)

// Renderer draws a simulation as characters
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer draws onto screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame: HUD, banner, tiles and sprites
func (r *Renderer) Draw(sim *system.Simulation, status, banner string) {
	r.screen.Clear()
	w, _ := r.screen.Size()

	r.putLine(0, status, styleHUD, w)
	r.putLine(1, banner, styleBanner, w)

	tv := sim.Tiles()
	r.drawLayer(tv, tv.Background, func(uint8) (rune, tcell.Style, bool) { return '.', styleDecor, true })
	r.drawLayer(tv, tv.Interactive, func(code uint8) (rune, tcell.Style, bool) {
		g, ok := tileGlyphs[entity.ClassifyTile(code)]
		return g, styleTile, ok
	})

	for sp := range sim.Visible() {
		kind := sp.Kind
		g, ok := kindGlyphs[kind]
		if !ok {
			continue
		}
		st := styleBadguy
		switch {
		case kind == entity.KindPlayer:
			st = stylePlayer
		case kind.Pickup():
			st = stylePickup
		}
		x0, y0 := cellOf(sp.X, sp.Y)
		x1, y1 := cellOf(sp.Right(), sp.Bottom())
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.put(x, y, g, st)
			}
		}
	}
	r.screen.Show()
}

func (r *Renderer) drawLayer(tv system.TileView, m entity.TileMatrix, glyph func(uint8) (rune, tcell.Style, bool)) {
	if tv.TileSize <= 0 {
		return
	}
	cols := tv.TileSize / CellWidth
	for ty, row := range m {
		for tx, code := range row {
			if code == entity.TileEmpty {
				continue
			}
			g, st, ok := glyph(code)
			if !ok {
				continue
			}
			x0, y := cellOf(tx*tv.TileSize-tv.Scroll, ty*tv.TileSize)
			for c := range cols {
				r.put(x0+c, y, g, st)
			}
		}
	}
}

// cellOf maps screen pixels to a terminal cell, rounding towards negative
// infinity so partly scrolled out tiles land left of column 0.
func cellOf(px, py int) (int, int) {
	x := px / CellWidth
	if px < 0 && px%CellWidth != 0 {
		x--
	}
	return x, py/CellHeight + hudRows
}

func (r *Renderer) put(x, y int, g rune, st tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < hudRows || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, g, nil, st)
}

// putLine writes s on row y, truncated and padded to the screen width
func (r *Renderer) putLine(y int, s string, st tcell.Style, w int) {
	s = runewidth.FillRight(runewidth.Truncate(s, w, "..."), w)
	x := 0
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x += max(runewidth.RuneWidth(ch), 1)
	}
}
