package racer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/road-rush/internal/core"
)

// Terminal glyphs.
const (
	CarChar    = '█'
	WindowChar = '▒'
	DashChar   = '┃'
	KerbLeft   = '▌'
	KerbRight  = '▐'
	GrassChar  = '░'
)

// Smallest screen the road can be drawn on.
const (
	MinScreenW = 12
	MinScreenH = 8
)

// projection maps world units onto terminal cells.
// Cells are about twice as tall as wide, so one column covers half the
// world distance of one row.
type projection struct {
	ox, oy       int // Screen cell of the world origin
	cols, rows   int // Road size in cells
	cellW, cellH float64
}

func newProjection(fieldW, fieldH float64, screenW, screenH int) projection {
	rows := screenH - 1 // Row 0 is the HUD
	cellH := fieldH / float64(rows)
	cellW := cellH / 2
	cols := int(fieldW / cellW)
	if cols > screenW-2 {
		cols = screenW - 2
		cellW = fieldW / float64(cols)
	}
	return projection{
		ox:    (screenW - cols) / 2,
		oy:    1,
		cols:  cols,
		rows:  rows,
		cellW: cellW,
		cellH: cellH,
	}
}

// span converts a world rectangle to a clipped, half-open cell range.
func (p projection) span(r core.Rect) (c0, r0, c1, r1 int) {
	c0 = p.ox + int(math.Floor(r.X/p.cellW))
	c1 = p.ox + int(math.Ceil(r.Right()/p.cellW))
	r0 = p.oy + int(math.Floor(r.Y/p.cellH))
	r1 = p.oy + int(math.Ceil(r.Bottom()/p.cellH))

	c0 = core.Clamp(c0, p.ox, p.ox+p.cols)
	c1 = core.Clamp(c1, p.ox, p.ox+p.cols)
	r0 = core.Clamp(r0, p.oy, p.oy+p.rows)
	r1 = core.Clamp(r1, p.oy, p.oy+p.rows)
	return c0, r0, c1, r1
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	RenderView(dst, g.View())
}

// RenderView draws a frame into dst.
func RenderView(dst *core.Screen, v View) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawText(0, 0, "Window too small")
		return
	}

	p := newProjection(v.FieldW, v.FieldH, w, h)

	// Verge and kerbs
	dst.DrawRect(0, p.oy, w, p.rows, GrassChar, core.ColorGreen)
	dst.DrawRect(p.ox, p.oy, p.cols, p.rows, ' ', core.ColorDefault)
	dst.DrawVLine(p.ox-1, p.oy, p.rows, KerbLeft, core.ColorGray)
	dst.DrawVLine(p.ox+p.cols, p.oy, p.rows, KerbRight, core.ColorGray)

	// Centre line
	mid := p.ox + p.cols/2
	for _, y := range v.DashStarts() {
		_, r0, _, r1 := p.span(core.NewRect(0, y, 0, v.DashLength))
		dst.DrawVLine(mid, r0, r1-r0, DashChar, core.ColorWhite)
	}

	for _, car := range v.Opponents {
		drawCar(dst, p, car.Rect(), car.Color)
	}
	if v.Phase != PhaseIdle {
		drawCar(dst, p, v.Player.Rect(), v.Player.Color)
	}

	// HUD
	dst.DrawHLine(0, 0, w, ' ', core.ColorDefault)
	hud := fmt.Sprintf(" Score: %d   Speed: %d   Level: %d/%d ", v.Score, v.DisplaySpeed, v.Level, v.MaxLevel)
	if v.NextLevelIn > 0 {
		hud += fmt.Sprintf("  Next: %ds ", int(math.Ceil(v.NextLevelIn.Seconds())))
	}
	dst.DrawTextColor(1, 0, hud, core.ColorBrightWhite)

	if v.Message != "" {
		x := p.ox + (p.cols-len(v.Message))/2
		dst.DrawTextColor(x, p.oy+p.rows/2, v.Message, core.ColorBrightWhite)
	}

	switch v.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, "ROAD RUSH", "Press Enter to start")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final score: %d  |  Enter to restart", v.FinalScore))
	}
}

// drawCar fills a car body and, when it is big enough, two window bands.
func drawCar(dst *core.Screen, p projection, r core.Rect, c core.Color) {
	c0, r0, c1, r1 := p.span(r)
	if c1 <= c0 || r1 <= r0 {
		return
	}
	dst.DrawRect(c0, r0, c1-c0, r1-r0, CarChar, c)

	if c1-c0 >= 3 && r1-r0 >= 4 {
		dst.DrawHLine(c0+1, r0+1, c1-c0-2, WindowChar, core.ColorGray)
		dst.DrawHLine(c0+1, r1-2, c1-c0-2, WindowChar, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
