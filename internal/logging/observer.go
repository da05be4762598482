package logging

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/road-rush/internal/games/racer"
)

// SessionObserver logs racer session events.
// Phase and level changes go to info, score and speed to debug.
type SessionObserver struct {
	logger *log.Logger
	level  int
}

// NewSessionObserver creates an observer that writes to logger.
func NewSessionObserver(logger *log.Logger) *SessionObserver {
	return &SessionObserver{logger: logger}
}

func (o *SessionObserver) ScoreChanged(score int) {
	o.logger.Debug("score changed", "score", score)
}

func (o *SessionObserver) SpeedChanged(displaySpeed int) {
	o.logger.Debug("speed changed", "speed", displaySpeed)
}

func (o *SessionObserver) LevelChanged(level int) {
	// The level is pushed at every session start; only increases are level-ups.
	if level > o.level && o.level != 0 {
		o.logger.Info("level up", "game_level", level)
	}
	o.level = level
}

func (o *SessionObserver) PhaseChanged(phase racer.Phase, finalScore int) {
	switch phase {
	case racer.PhaseRunning:
		o.logger.Info("session started")
	case racer.PhaseGameOver:
		o.logger.Info("game over", "score", finalScore, "game_level", o.level)
	default:
		o.logger.Info("phase changed", "phase", phase.String())
	}
}
