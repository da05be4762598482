package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/road-rush/internal/core"
)

// KeyMap defines the key bindings for the racer.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Start      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Start, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "steer right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction returns the steering direction bound to msg, or DirNone.
func (k KeyMap) Direction(msg tea.KeyMsg) core.Direction {
	switch {
	case key.Matches(msg, k.Left):
		return core.DirLeft
	case key.Matches(msg, k.Right):
		return core.DirRight
	case key.Matches(msg, k.Up):
		return core.DirUp
	case key.Matches(msg, k.Down):
		return core.DirDown
	}
	return core.DirNone
}

// Terminals report key presses and auto-repeats but never releases.
// HoldLatch treats a direction as held until no press for it has arrived
// within the hold window. The first press gets a longer window to cover
// the terminal's initial repeat delay.
type HoldLatch struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Direction]time.Time
}

// NewHoldLatch creates a latch with the given windows.
func NewHoldLatch(initial, repeat time.Duration) *HoldLatch {
	return &HoldLatch{
		initial: initial,
		repeat:  repeat,
		until:   make(map[core.Direction]time.Time),
	}
}

// Press records a press of d at now.
// Pressing one horizontal direction releases the opposite one, since a
// terminal only repeats the most recent key. Returns the direction that
// was released this way, or DirNone.
func (l *HoldLatch) Press(d core.Direction, now time.Time) core.Direction {
	if !d.Valid() {
		return core.DirNone
	}
	released := core.DirNone
	if opp := opposite(d); l.Held(opp) {
		delete(l.until, opp)
		released = opp
	}

	window := l.initial
	if _, held := l.until[d]; held {
		window = l.repeat
	}
	l.until[d] = now.Add(window)
	return released
}

// Expire releases every direction whose window has passed.
// Returns the directions that were released.
func (l *HoldLatch) Expire(now time.Time) []core.Direction {
	var released []core.Direction
	for _, d := range core.Directions {
		if until, ok := l.until[d]; ok && !now.Before(until) {
			delete(l.until, d)
			released = append(released, d)
		}
	}
	return released
}

// Held reports whether d is currently latched.
func (l *HoldLatch) Held(d core.Direction) bool {
	_, ok := l.until[d]
	return ok
}

// Reset releases everything.
func (l *HoldLatch) Reset() {
	clear(l.until)
}

func opposite(d core.Direction) core.Direction {
	switch d {
	case core.DirLeft:
		return core.DirRight
	case core.DirRight:
		return core.DirLeft
	case core.DirUp:
		return core.DirDown
	case core.DirDown:
		return core.DirUp
	}
	return core.DirNone
}
