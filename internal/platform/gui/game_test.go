package gui

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/road-rush/internal/config"
	"github.com/vovakirdan/road-rush/internal/core"
	"github.com/vovakirdan/road-rush/internal/games/racer"
)

// fakeKeys stands in for the keyboard.
type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newTestGame(t *testing.T) (*Game, *fakeKeys, *core.ManualClock) {
	t.Helper()
	cfg := config.DefaultRacerConfig()
	cfg.Spawner.BaseIntervalMS = 1 << 30

	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	g := New(cfg, Options{Seed: 1, Clock: clock})

	keys := &fakeKeys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
	g.pressed = func(k ebiten.Key) bool { return keys.held[k] }
	g.justPressed = func(k ebiten.Key) bool { return keys.just[k] }
	return g, keys, clock
}

func TestUpdateStartsOnEnter(t *testing.T) {
	g, keys, _ := newTestGame(t)

	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.Racer().Phase() != racer.PhaseIdle {
		t.Fatal("game started without a key")
	}

	keys.just[ebiten.KeyEnter] = true
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if !g.Racer().Running() {
		t.Fatal("enter should start the game")
	}
	if g.Racer().Snapshot().Tick != 1 {
		t.Errorf("tick = %d, want the start frame to run one tick", g.Racer().Snapshot().Tick)
	}
}

func TestUpdateMirrorsHeldKeys(t *testing.T) {
	g, keys, clock := newTestGame(t)
	keys.just[ebiten.KeySpace] = true
	g.Update()
	keys.just[ebiten.KeySpace] = false

	keys.held[ebiten.KeyArrowLeft] = true
	for i := 0; i < 3; i++ {
		clock.Advance(time.Second / 60)
		g.Update()
	}
	if got := g.Racer().Player().X; got != 160 {
		t.Errorf("x = %v after three held ticks, want 160", got)
	}

	keys.held[ebiten.KeyArrowLeft] = false
	keys.held[ebiten.KeyD] = true
	clock.Advance(time.Second / 60)
	g.Update()
	if got := g.Racer().Player().X; got != 165 {
		t.Errorf("x = %v after switching to right, want 165", got)
	}
	if in := g.Racer().Intent(); in.Left || !in.Right {
		t.Errorf("intent = %+v, want right only", in)
	}
}

func TestUpdateQuit(t *testing.T) {
	g, keys, _ := newTestGame(t)
	keys.just[ebiten.KeyEscape] = true

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update = %v, want ebiten.Termination", err)
	}
}

func TestLayoutIsPlayfield(t *testing.T) {
	g, _, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 400 || h != 600 {
		t.Errorf("Layout = %dx%d, want 400x600", w, h)
	}
}

func TestCarParts(t *testing.T) {
	r := core.NewRect(100, 200, 50, 80)
	parts := carParts(r, carColor(core.ColorBlue), playerWindow)

	if len(parts) != 7 {
		t.Fatalf("got %d parts, want 7", len(parts))
	}
	if parts[0].rect != r {
		t.Errorf("body = %+v, want %+v", parts[0].rect, r)
	}
	// Windows stay inside the body
	for _, p := range parts[1:3] {
		if p.rect.X < r.X || p.rect.Right() > r.Right() || p.rect.Y < r.Y || p.rect.Bottom() > r.Bottom() {
			t.Errorf("window %+v outside body", p.rect)
		}
	}
	// Wheels sit just outside the sides
	for _, p := range parts[3:] {
		if p.rect.Right() != r.X && p.rect.X != r.Right() {
			t.Errorf("wheel %+v not flush with a side", p.rect)
		}
	}
}

func TestCarColorFallback(t *testing.T) {
	if carColor(core.ColorOrange) == carColor(core.ColorDefault) {
		t.Error("orange should have its own color")
	}
	if carColor(core.Color(250)) != carColors[core.ColorWhite] {
		t.Error("unknown colors should fall back to white")
	}
}
