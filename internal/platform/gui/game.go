// Package gui hosts the racer in a desktop window with Ebitengine.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/road-rush/internal/config"
	"github.com/vovakirdan/road-rush/internal/core"
	"github.com/vovakirdan/road-rush/internal/games/racer"
	"github.com/vovakirdan/road-rush/internal/logging"
)

// Lane dash stroke width in world units.
const dashWidth = 5

// Options tune the desktop host. Zero values get defaults.
type Options struct {
	Seed   int64
	TPS    int     // Ticks per second (default 60)
	Scale  float64 // Window size relative to the playfield (default 1)
	Clock  core.Clock
	Logger *log.Logger
}

// Key groups for the desktop bindings.
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	upKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	startKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}
	quitKeys  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Game implements ebiten.Game around a racer session.
// Ebitengine's Update drives the frame scheduler, so one update is one tick.
type Game struct {
	cfg    config.RacerConfig
	game   *racer.Game
	frames *core.FrameScheduler
	logger *log.Logger
	face   *text.GoXFace
	pixel  *ebiten.Image

	// Key state readers; real keyboard by default.
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// New creates a desktop host with an idle game.
func New(cfg config.RacerConfig, opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	frames := core.NewFrameScheduler()
	return &Game{
		cfg: cfg,
		game: racer.New(cfg, racer.Options{
			Seed:     opts.Seed,
			Clock:    opts.Clock,
			Frames:   frames,
			Observer: logging.NewSessionObserver(opts.Logger),
		}),
		frames:      frames,
		logger:      opts.Logger,
		face:        text.NewGoXFace(bitmapfont.Face),
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Racer returns the hosted game.
func (g *Game) Racer() *racer.Game {
	return g.game
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if g.anyJustPressed(quitKeys) {
		return ebiten.Termination
	}

	if !g.game.Running() && g.anyJustPressed(startKeys) {
		g.game.Start()
	}

	// Desktop input reports real key state, so intents mirror it exactly.
	g.game.SetIntent(core.DirLeft, g.anyPressed(leftKeys))
	g.game.SetIntent(core.DirRight, g.anyPressed(rightKeys))
	g.game.SetIntent(core.DirUp, g.anyPressed(upKeys))
	g.game.SetIntent(core.DirDown, g.anyPressed(downKeys))

	g.frames.RunFrame()
	return nil
}

func (g *Game) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if g.pressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if g.justPressed(k) {
			return true
		}
	}
	return false
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.game.View()

	screen.Fill(asphaltColor)

	for _, y := range v.DashStarts() {
		g.fillRect(screen, core.NewRect(v.FieldW/2-dashWidth/2, y, dashWidth, v.DashLength), laneColor)
	}

	for _, car := range v.Opponents {
		g.drawCar(screen, car.Rect(), carColor(car.Color), opponentWindow)
	}
	if v.Phase != racer.PhaseIdle {
		g.drawCar(screen, v.Player.Rect(), carColor(v.Player.Color), playerWindow)
	}

	g.drawText(screen, fmt.Sprintf("Score: %d  Speed: %d  Level: %d", v.Score, v.DisplaySpeed, v.Level), 8, 8, 1, hudColor)

	if v.Message != "" {
		g.drawCentered(screen, v.Message, v.FieldH/2-24, 3, laneColor)
	}

	switch v.Phase {
	case racer.PhaseIdle:
		g.drawOverlay(screen, v, "ROAD RUSH", "Press Enter to start")
	case racer.PhaseGameOver:
		g.drawOverlay(screen, v, "GAME OVER", fmt.Sprintf("Final score: %d", v.FinalScore), "Press Enter to restart")
	}
}

// Layout returns the playfield size; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.cfg.Playfield.Width), int(g.cfg.Playfield.Height)
}

func (g *Game) drawCar(dst *ebiten.Image, r core.Rect, body, window color.RGBA) {
	for _, p := range carParts(r, body, window) {
		g.fillRect(dst, p.rect, p.color)
	}
}

// fillRect draws a solid rectangle by stretching a single white pixel.
func (g *Game) fillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W, r.H)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(g.pixel, op)
}

func (g *Game) drawOverlay(dst *ebiten.Image, v racer.View, title string, lines ...string) {
	boxH := 60.0 + 24*float64(len(lines))
	top := (v.FieldH - boxH) / 2
	g.fillRect(dst, core.NewRect(20, top, v.FieldW-40, boxH), overlayColor)

	g.drawCentered(dst, title, top+12, 3, titleColor)
	for i, line := range lines {
		g.drawCentered(dst, line, top+60+24*float64(i), 1.5, hudColor)
	}
}

func (g *Game) drawCentered(dst *ebiten.Image, s string, y, scale float64, clr color.Color) {
	w := text.Advance(s, g.face) * scale
	g.drawText(dst, s, (g.cfg.Playfield.Width-w)/2, y, scale, clr)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.face, op)
}

// Run opens the window and plays until it is closed or a quit key is pressed.
func Run(cfg config.RacerConfig, opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = core.DefaultConfig().TickRate
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	g := New(cfg, opts)

	ebiten.SetWindowSize(int(cfg.Playfield.Width*opts.Scale), int(cfg.Playfield.Height*opts.Scale))
	ebiten.SetWindowTitle("Road Rush")
	ebiten.SetTPS(opts.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
