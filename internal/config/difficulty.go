package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/road-rush/internal/core"
)

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset or "normal" leaves the loaded values untouched.
func ApplyPreset(cfg *RacerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.BaseIntervalMS = cfg.Spawner.BaseIntervalMS * 13 / 10
		cfg.Player.StartSpeed = max(1, cfg.Player.StartSpeed-1)
	case DifficultyHard:
		cfg.Spawner.BaseIntervalMS = cfg.Spawner.BaseIntervalMS * 7 / 10
		cfg.Player.StartSpeed++
	case DifficultyFixed:
		// Level 1 is the only level, so speed never changes.
		cfg.Progression.MaxLevel = 1
	}
}

// Validate reports the first tunable that would make the game unplayable.
func (c RacerConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("config: playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Player.Width > c.Playfield.Width {
		return fmt.Errorf("config: player width %v exceeds playfield width %v", c.Player.Width, c.Playfield.Width)
	}
	if c.Player.Step < 0 {
		return fmt.Errorf("config: player step must not be negative, got %v", c.Player.Step)
	}
	if c.Player.StartSpeed < 0 {
		return fmt.Errorf("config: player start_speed must not be negative, got %v", c.Player.StartSpeed)
	}
	if _, ok := core.ParseColor(c.Player.Color); !ok {
		return fmt.Errorf("config: unknown player color %q", c.Player.Color)
	}
	if c.Spawner.BaseIntervalMS <= 0 {
		return fmt.Errorf("config: spawner base_interval_ms must be positive, got %d", c.Spawner.BaseIntervalMS)
	}
	if c.Spawner.SpeedDivisor <= 0 {
		return fmt.Errorf("config: spawner speed_divisor must be positive, got %v", c.Spawner.SpeedDivisor)
	}
	if len(c.Spawner.Archetypes) == 0 {
		return errors.New("config: spawner needs at least one archetype")
	}
	for i, a := range c.Spawner.Archetypes {
		if a.Width <= 0 || a.Height <= 0 {
			return fmt.Errorf("config: archetype %d (%s) size must be positive", i, a.Name)
		}
		if a.Width > c.Playfield.Width {
			return fmt.Errorf("config: archetype %d (%s) is wider than the playfield", i, a.Name)
		}
		if a.SpeedVariance < 0 {
			return fmt.Errorf("config: archetype %d (%s) speed_variance must not be negative", i, a.Name)
		}
		if _, ok := core.ParseColor(a.Color); !ok {
			return fmt.Errorf("config: archetype %d (%s) has unknown color %q", i, a.Name, a.Color)
		}
	}
	if c.Progression.MaxLevel < 1 {
		return fmt.Errorf("config: progression max_level must be at least 1, got %d", c.Progression.MaxLevel)
	}
	if c.Progression.LevelIntervalMS <= 0 {
		return fmt.Errorf("config: progression level_interval_ms must be positive, got %d", c.Progression.LevelIntervalMS)
	}
	if c.Progression.SpeedIncrement < 0 {
		return fmt.Errorf("config: progression speed_increment must not be negative, got %v", c.Progression.SpeedIncrement)
	}
	if c.Road.DashLength+c.Road.DashGap <= 0 {
		return errors.New("config: road dash_length + dash_gap must be positive")
	}
	return nil
}
