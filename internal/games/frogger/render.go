package frogger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Visual characters for rendering
const (
	GrassChar    = '·'
	WaterChar    = '~'
	PadChar      = '═'
	CarBodyChar  = '█'
	CarFrontR    = '▶'
	CarFrontL    = '◀'
	GoalChar     = '▔'
	hudHeight    = 2
	footerHeight = 1
)

var frogSprite = []rune("<@@>")

// board maps canvas pixels onto screen cells.
type board struct {
	offX, offY int
	cols, rows int
	cellW      float64
	cellH      float64
}

func (g *Game) board(dst *core.Screen) board {
	cfg := g.session.Config()
	b := board{
		cols:  int(math.Ceil(cfg.Canvas.Width / cfg.Render.CellWidth)),
		rows:  int(math.Ceil(cfg.Canvas.Height / cfg.Render.CellHeight)),
		cellW: cfg.Render.CellWidth,
		cellH: cfg.Render.CellHeight,
	}
	b.offX = (dst.Width() - b.cols) / 2
	b.offY = hudHeight
	return b
}

func (b board) fits(dst *core.Screen) bool {
	return dst.Width() >= b.cols && dst.Height() >= b.rows+hudHeight+footerHeight
}

// span returns the board columns covered by [x, x+w), clipped to the board.
func (b board) span(x, w float64) (first, last int) {
	first = int(math.Floor(x / b.cellW))
	last = int(math.Ceil((x+w)/b.cellW)) - 1
	return max(first, 0), min(last, b.cols-1)
}

func (b board) row(y float64) int {
	return int(math.Floor(y / b.cellH))
}

// fillRow paints a whole board row.
func (b board) fillRow(dst *core.Screen, row int, r rune, c core.Color) {
	if row < 0 || row >= b.rows {
		return
	}
	dst.DrawHLine(b.offX, b.offY+row, b.cols, r, c)
}

// Render draws the board, HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	b := g.board(dst)
	if !b.fits(dst) {
		dst.DrawMessageBox("Window too small", fmt.Sprintf("Need %dx%d", b.cols, b.rows+hudHeight+footerHeight), core.ColorYellow)
		return
	}

	layout := g.session.Layout()

	for row := 0; row < b.rows; row++ {
		b.fillRow(dst, row, GrassChar, core.ColorGreen)
	}
	b.fillRow(dst, 0, GoalChar, core.ColorYellow)

	for _, lane := range layout.Lanes {
		b.fillRow(dst, b.row(lane.Bounds.Y), WaterChar, core.ColorBlue)
	}

	for _, p := range layout.Platforms {
		first, last := b.span(p.Bounds.X, p.Bounds.W)
		y := b.offY + b.row(p.Bounds.Y)
		for col := first; col <= last; col++ {
			dst.SetColor(b.offX+col, y, PadChar, core.ColorBrightGreen)
		}
	}

	for _, o := range layout.Obstacles {
		g.drawCar(dst, b, o)
	}

	g.drawFrog(dst, b)

	footer := "WASD/arrows: hop  P: pause  R: restart  Q: quit"
	dst.DrawText(b.offX, b.offY+b.rows, footer, core.ColorGray)

	switch {
	case g.alertTicks > 0:
		dst.DrawMessageBox("GAME OVER", g.alert.Message(), core.ColorBrightRed)
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorBrightCyan)
	}
}

// drawCar draws an obstacle with its nose pointing the way it drives.
func (g *Game) drawCar(dst *core.Screen, b board, o Obstacle) {
	first, last := b.span(o.Bounds.X, o.Bounds.W)
	if first > last {
		return // Off the board
	}
	y := b.offY + b.row(o.Bounds.Y)
	for col := first; col <= last; col++ {
		dst.SetColor(b.offX+col, y, CarBodyChar, core.ColorRed)
	}
	if o.VX >= 0 {
		dst.SetColor(b.offX+last, y, CarFrontR, core.ColorBrightRed)
	} else {
		dst.SetColor(b.offX+first, y, CarFrontL, core.ColorBrightRed)
	}
}

func (g *Game) drawFrog(dst *core.Screen, b board) {
	actor := g.session.Actor()
	first, last := b.span(actor.Bounds.X, actor.Bounds.W)
	y := b.offY + b.row(actor.Bounds.Y)
	for col := first; col <= last; col++ {
		ch := frogSprite[(col-first)%len(frogSprite)]
		dst.SetColor(b.offX+col, y, ch, core.ColorBrightYellow)
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  High: %d  Level: %d",
		g.Title(), g.session.Score(), g.session.HighScore(), g.session.Level())
	dst.DrawText(0, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}
