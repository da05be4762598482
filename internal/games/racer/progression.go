package racer

import (
	"fmt"
	"time"

	"github.com/vovakirdan/road-rush/internal/config"
)

// Progression raises the level on a wall-clock timer.
// Each level-up adds a fixed amount to the player's speed and shows a banner.
type Progression struct {
	cfg          config.ProgressionConfig
	level        int
	levelUpAt    time.Time // Time of the last level-up (or session start)
	message      string
	messageUntil time.Time
}

// NewProgression creates a progression at level 1.
func NewProgression(cfg config.ProgressionConfig) *Progression {
	return &Progression{cfg: cfg, level: 1}
}

// Reset returns to level 1 and restarts the level timer at now.
func (p *Progression) Reset(now time.Time) {
	p.level = 1
	p.levelUpAt = now
	p.message = ""
	p.messageUntil = time.Time{}
}

// Update levels up if a full interval has elapsed since the last level-up.
// Returns true if the level changed.
func (p *Progression) Update(now time.Time, player *PlayerCar) bool {
	if p.message != "" && !now.Before(p.messageUntil) {
		p.message = ""
	}

	if p.level >= p.cfg.MaxLevel || now.Sub(p.levelUpAt) < p.cfg.LevelInterval() {
		return false
	}

	p.level++
	player.Speed += p.cfg.SpeedIncrement
	p.levelUpAt = now
	p.message = fmt.Sprintf("Level %d", p.level)
	p.messageUntil = now.Add(p.cfg.MessageDuration())
	return true
}

// Level returns the current level.
func (p *Progression) Level() int {
	return p.level
}

// MaxLevel returns the highest reachable level.
func (p *Progression) MaxLevel() int {
	return p.cfg.MaxLevel
}

// Message returns the level banner if it is still showing at now.
func (p *Progression) Message(now time.Time) string {
	if p.message == "" || !now.Before(p.messageUntil) {
		return ""
	}
	return p.message
}

// NextLevelIn returns the time left until the next level-up, or 0 at max level.
func (p *Progression) NextLevelIn(now time.Time) time.Duration {
	if p.level >= p.cfg.MaxLevel {
		return 0
	}
	return max(0, p.cfg.LevelInterval()-now.Sub(p.levelUpAt))
}
