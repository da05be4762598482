package racer

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first start, nothing ticks
	PhaseRunning               // Ticks execute every frame
	PhaseGameOver              // Crashed; ticking stopped, final score frozen
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Observer receives UI-facing values whenever they change.
// Calls happen on the goroutine driving the game.
type Observer interface {
	ScoreChanged(score int)
	SpeedChanged(displaySpeed int)
	LevelChanged(level int)
	PhaseChanged(phase Phase, finalScore int)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) ScoreChanged(int)        {}
func (NopObserver) SpeedChanged(int)        {}
func (NopObserver) LevelChanged(int)        {}
func (NopObserver) PhaseChanged(Phase, int) {}

// MultiObserver fans notifications out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) ScoreChanged(score int) {
	for _, o := range m {
		o.ScoreChanged(score)
	}
}

func (m MultiObserver) SpeedChanged(displaySpeed int) {
	for _, o := range m {
		o.SpeedChanged(displaySpeed)
	}
}

func (m MultiObserver) LevelChanged(level int) {
	for _, o := range m {
		o.LevelChanged(level)
	}
}

func (m MultiObserver) PhaseChanged(phase Phase, finalScore int) {
	for _, o := range m {
		o.PhaseChanged(phase, finalScore)
	}
}
