package playing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/snowtux/internal/application/hud"
	"github.com/younwookim/snowtux/internal/application/state"
	"github.com/younwookim/snowtux/internal/application/system"
	"github.com/younwookim/snowtux/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorBackground = color.RGBA{40, 44, 70, 255}
	colorForeground = color.RGBA{70, 90, 110, 160}
	colorEye        = color.RGBA{20, 20, 20, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 128}
)

var tileColors = map[entity.TileClass]color.RGBA{
	entity.TileClassBlock: colornames.Slategray,
	entity.TileClassBrick: colornames.Sienna,
	entity.TileClassBonus: colornames.Goldenrod,
	entity.TileClassCoin:  colornames.Gold,
	entity.TileClassWin:   colornames.Mediumseagreen,
}

var kindColors = map[entity.Kind]color.RGBA{
	entity.KindPlayer:           colornames.Dodgerblue,
	entity.KindSnowball:         colornames.Whitesmoke,
	entity.KindIceBlock:         colornames.Lightblue,
	entity.KindIceBlockStunned:  colornames.Paleturquoise,
	entity.KindIceBlockKicked:   colornames.Deepskyblue,
	entity.KindBomb:             colornames.Dimgray,
	entity.KindBombTicking:      colornames.Orangered,
	entity.KindBombExploding:    colornames.Orange,
	entity.KindBouncingSnowball: colornames.Lavender,
	entity.KindFlyingSnowball:   colornames.Plum,
	entity.KindStalactite:       colornames.Lightsteelblue,
	entity.KindSpiky:            colornames.Firebrick,
	entity.KindJumpy:            colornames.Limegreen,
	entity.KindFlame:            colornames.Yellow,
	entity.KindCoin:             colornames.Gold,
	entity.KindStar:             colornames.Khaki,
	entity.KindOneUp:            colornames.Lightgreen,
}

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

const controlsHelp = "A/D: Move | W/Space: Jump | Shift: Carry | N: Skip | ESC: Pause"

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	sim := p.session.Simulation()
	tv := sim.Tiles()
	p.drawLayer(screen, tv, tv.Background, func(uint8) (color.Color, bool) { return colorBackground, true })
	p.drawLayer(screen, tv, tv.Interactive, interactiveColor)
	p.drawSprites(screen, sim)
	p.drawLayer(screen, tv, tv.Foreground, func(uint8) (color.Color, bool) { return colorForeground, true })

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateFinished:
		p.drawOverlay(screen, "THE END\n\nPress Enter to play again")
	}
}

func interactiveColor(code uint8) (color.Color, bool) {
	c, ok := tileColors[entity.ClassifyTile(code)]
	return c, ok
}

// drawLayer draws the visible columns of one tile matrix
func (p *Playing) drawLayer(screen *ebiten.Image, tv system.TileView, m entity.TileMatrix, colorOf func(uint8) (color.Color, bool)) {
	ts := tv.TileSize
	if ts <= 0 {
		return
	}
	startTileX := tv.Scroll / ts
	endTileX := (tv.Scroll+p.screenW)/ts + 1

	for ty, row := range m {
		for tx := startTileX; tx <= endTileX && tx < len(row); tx++ {
			code := row[tx]
			if code == entity.TileEmpty {
				continue
			}
			c, ok := colorOf(code)
			if !ok {
				continue
			}
			x := float64(tx*ts - tv.Scroll)
			y := float64(ty * ts)
			ebitenutil.DrawRect(screen, x, y, float64(ts), float64(ts), c)
		}
	}
}

func (p *Playing) drawSprites(screen *ebiten.Image, sim *system.Simulation) {
	for sp := range sim.Visible() {
		kind, right := entity.DecodeTexture(sp.Texture)
		c, ok := kindColors[kind]
		if !ok {
			c = colornames.Magenta
		}
		x, y := float64(sp.X), float64(sp.Y)
		w, h := float64(sp.W), float64(sp.H)
		ebitenutil.DrawRect(screen, x, y, w, h, c)

		// a dot on the facing side
		eyeX := x + 2
		if right {
			eyeX = x + w - 6
		}
		ebitenutil.DrawRect(screen, eyeX, y+h/4, 4, 4, colorEye)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	drawText(screen, hud.StatusLine(p.session.Status()), 8, 8, colornames.White)
	drawText(screen, controlsHelp, 8, float64(p.screenH-20), colornames.Lightgray)

	if msg := p.banner.Text(); msg != "" {
		w, _ := text.Measure(msg, hudFace, 0)
		drawText(screen, msg, (float64(p.screenW)-w)/2, float64(p.screenH)/3, colornames.Yellow)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, msg string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	drawText(screen, msg, float64(p.screenW/2-80), float64(p.screenH/2-20), colornames.White)
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = 16
	text.Draw(screen, s, hudFace, op)
}
