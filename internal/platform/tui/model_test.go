package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/road-rush/internal/config"
	"github.com/vovakirdan/road-rush/internal/core"
	"github.com/vovakirdan/road-rush/internal/games/racer"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *core.ManualClock) {
	t.Helper()
	cfg := config.DefaultRacerConfig()
	cfg.Spawner.BaseIntervalMS = 1 << 30 // no traffic

	clock := core.NewManualClock(epoch)
	m := NewModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, Options{
		Clock:       clock,
		HoldInitial: 100 * time.Millisecond,
		HoldRepeat:  50 * time.Millisecond,
	})
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelStartsIdle(t *testing.T) {
	m, _ := newTestModel(t)

	if m.Game().Phase() != racer.PhaseIdle {
		t.Fatalf("phase = %s, want idle", m.Game().Phase())
	}
	if !strings.Contains(m.View(), "Press Enter to start") {
		t.Error("idle view should show the start prompt")
	}

	// Steering before start is ignored
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Game().Intent() != (core.Intent{}) {
		t.Error("intent recorded while idle")
	}
}

func TestModelStartBeginsTicking(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Game().Running() {
		t.Fatal("enter should start the game")
	}
	if cmd == nil {
		t.Fatal("start should schedule a tick")
	}

	// A second start neither restarts nor schedules a second chain
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("start while running scheduled another tick")
	}
	if m.Status().Sessions != 1 {
		t.Errorf("sessions = %d, want 1", m.Status().Sessions)
	}
}

func TestModelSteeringWithLatch(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	clock.Advance(10 * time.Millisecond)
	m, cmd := update(t, m, TickMsg(clock.Now()))
	if cmd == nil {
		t.Fatal("tick chain should continue while running")
	}
	if got := m.Game().Player().X; got != 170 {
		t.Fatalf("x = %v after one held tick, want 170", got)
	}

	// No repeat arrives: the key is released once the window passes
	clock.Advance(100 * time.Millisecond)
	m, _ = update(t, m, TickMsg(clock.Now()))
	x := m.Game().Player().X
	clock.Advance(10 * time.Millisecond)
	m, _ = update(t, m, TickMsg(clock.Now()))
	if got := m.Game().Player().X; got != x {
		t.Errorf("car kept moving after release: %v -> %v", x, got)
	}
}

func TestModelOppositeKeyReleases(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, keyRunes("a"))
	m, _ = update(t, m, keyRunes("d"))
	if in := m.Game().Intent(); in.Left || !in.Right {
		t.Errorf("intent = %+v, want right only", in)
	}

	clock.Advance(10 * time.Millisecond)
	m, _ = update(t, m, TickMsg(clock.Now()))
	if got := m.Game().Player().X; got != 180 {
		t.Errorf("x = %v, want 180", got)
	}
}

func TestModelTickChainStopsAtGameOver(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	cfg.Spawner.BaseIntervalMS = 1
	// A road-wide truck cannot be dodged
	cfg.Spawner.Archetypes = []config.Archetype{
		{Name: "wall", Width: 400, Height: 80, Color: "red", BaseSpeed: 3},
	}

	clock := core.NewManualClock(epoch)
	m := NewModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, Options{Clock: clock})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	ticks := 0
	for cmd != nil && ticks < 1000 {
		clock.Advance(10 * time.Millisecond)
		m, cmd = update(t, m, TickMsg(clock.Now()))
		ticks++
	}

	if cmd != nil {
		t.Fatal("tick chain never stopped")
	}
	if m.Game().Phase() != racer.PhaseGameOver {
		t.Fatalf("phase = %s, want game_over", m.Game().Phase())
	}
	if m.Status().Sessions != 1 || m.Status().Phase != racer.PhaseGameOver {
		t.Errorf("status = %+v", *m.Status())
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over view missing")
	}

	// Restart begins a fresh chain
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.Game().Running() {
		t.Error("restart should run and tick again")
	}
	if m.Status().Sessions != 2 {
		t.Errorf("sessions = %d, want 2", m.Status().Sessions)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
}
