package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/road-rush/internal/config"
	"github.com/vovakirdan/road-rush/internal/core"
	"github.com/vovakirdan/road-rush/internal/games/racer"
	"github.com/vovakirdan/road-rush/internal/logging"
)

// Default hold windows for terminal key latching.
const (
	DefaultHoldInitial = 450 * time.Millisecond
	DefaultHoldRepeat  = 150 * time.Millisecond
)

// Options tune the terminal host. Zero values get defaults.
type Options struct {
	Logger      *log.Logger
	Clock       core.Clock
	HoldInitial time.Duration
	HoldRepeat  time.Duration
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model hosting a racer game.
// The tick chain only runs while the game has a frame task registered.
type Model struct {
	game     *racer.Game
	frames   *core.FrameScheduler
	clock    core.Clock
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	latch    *HoldLatch
	status   *Status
	logger   *log.Logger
	ticking  bool
	quitting bool
}

// NewModel creates a model with an idle game.
func NewModel(cfg config.RacerConfig, rt core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.HoldInitial <= 0 {
		opts.HoldInitial = DefaultHoldInitial
	}
	if opts.HoldRepeat <= 0 {
		opts.HoldRepeat = DefaultHoldRepeat
	}

	frames := core.NewFrameScheduler()
	status := &Status{}
	game := racer.New(cfg, racer.Options{
		Seed:     rt.Seed,
		Clock:    opts.Clock,
		Frames:   frames,
		Observer: racer.MultiObserver{status, logging.NewSessionObserver(opts.Logger)},
	})

	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		frames: frames,
		clock:  opts.Clock,
		screen: core.NewScreen(rt.ScreenW, screenRows(rt.ScreenH)),
		config: rt,
		keys:   DefaultKeyMap(),
		help:   h,
		latch:  NewHoldLatch(opts.HoldInitial, opts.HoldRepeat),
		status: status,
		logger: opts.Logger,
	}
}

// screenRows leaves the last terminal row for the help bar.
func screenRows(termH int) int {
	return max(1, termH-1)
}

// Init sets the window title. The game waits for a start key.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Road Rush")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Start):
		if m.game.Running() {
			return m, nil
		}
		m.latch.Reset()
		m.game.ClearIntent()
		m.game.Start()
		return m.ensureTicking()
	}

	if d := m.keys.Direction(msg); d != core.DirNone && m.game.Running() {
		if released := m.latch.Press(d, m.clock.Now()); released != core.DirNone {
			m.game.SetIntent(released, false)
		}
		m.game.SetIntent(d, true)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases expired keys and runs one frame.
// The chain stops once the frame scheduler has nothing left to run.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, d := range m.latch.Expire(m.clock.Now()) {
		m.game.SetIntent(d, false)
	}

	if m.frames.RunFrame() {
		return m, tickCmd(m.config.TickRate)
	}

	m.ticking = false
	m.latch.Reset()
	m.game.ClearIntent()
	return m, nil
}

func (m Model) ensureTicking() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".racer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("racer_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// statusLine renders the help bar and the per-run results.
func (m Model) statusLine() string {
	line := helpStyle.Render(m.help.View(m.keys))
	if m.status.Sessions > 0 {
		line += "  " + statusStyle.Render(fmt.Sprintf("best %d · last %d · run %d", m.status.Best, m.status.Last, m.status.Sessions))
	}
	return line
}

// Game returns the hosted game.
func (m Model) Game() *racer.Game {
	return m.game
}

// Status returns the per-run results.
func (m Model) Status() *Status {
	return m.status
}

// Run starts the Bubble Tea program with a new racer game.
func Run(cfg config.RacerConfig, rt core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
