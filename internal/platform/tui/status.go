package tui

import "github.com/vovakirdan/road-rush/internal/games/racer"

// Status keeps per-run results for the status bar.
// Nothing is persisted; it resets when the program exits.
type Status struct {
	Phase    racer.Phase
	Level    int
	Last     int // Final score of the last finished session
	Best     int // Best final score since the program started
	Sessions int
}

func (s *Status) ScoreChanged(int) {}
func (s *Status) SpeedChanged(int) {}

func (s *Status) LevelChanged(level int) {
	s.Level = level
}

func (s *Status) PhaseChanged(phase racer.Phase, finalScore int) {
	s.Phase = phase
	switch phase {
	case racer.PhaseRunning:
		s.Sessions++
	case racer.PhaseGameOver:
		s.Last = finalScore
		s.Best = max(s.Best, finalScore)
	}
}
