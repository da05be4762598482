// Package config provides YAML-based game configuration loading and
// difficulty presets for the racer.
package config

import "time"

// RacerConfig contains all tunables for the driving game.
// Distances are in world units on a 400x600 playfield by default.
type RacerConfig struct {
	Playfield   PlayfieldConfig   `yaml:"playfield"`
	Player      PlayerConfig      `yaml:"player"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Progression ProgressionConfig `yaml:"progression"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Road        RoadConfig        `yaml:"road"`
}

// PlayfieldConfig defines the visible game area.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's car.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartSpeed   float64 `yaml:"start_speed"`
	Step         float64 `yaml:"step"`          // Horizontal move per tick per held direction
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the playfield bottom to the car's top edge
	Color        string  `yaml:"color"`
}

// SpawnerConfig defines opponent spawning.
type SpawnerConfig struct {
	BaseIntervalMS int         `yaml:"base_interval_ms"`
	SpeedDivisor   float64     `yaml:"speed_divisor"` // interval = base / (1 + playerSpeed/divisor)
	Archetypes     []Archetype `yaml:"archetypes"`
}

// Archetype is a template for spawned opponent cars.
type Archetype struct {
	Name          string  `yaml:"name"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Color         string  `yaml:"color"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedVariance float64 `yaml:"speed_variance"` // Speed is rolled in [base, base+variance)
}

// ProgressionConfig defines the time-based level system.
type ProgressionConfig struct {
	MaxLevel          int     `yaml:"max_level"`
	LevelIntervalMS   int     `yaml:"level_interval_ms"`
	SpeedIncrement    float64 `yaml:"speed_increment"`
	MessageDurationMS int     `yaml:"message_duration_ms"`
}

// ScoringConfig defines score and HUD metrics.
type ScoringConfig struct {
	PointsPerCar      int     `yaml:"points_per_car"`
	DisplaySpeedScale float64 `yaml:"display_speed_scale"`
}

// RoadConfig defines the scrolling centre line.
type RoadConfig struct {
	ScrollFactor float64 `yaml:"scroll_factor"` // Offset advance per tick = player speed * factor
	DashLength   float64 `yaml:"dash_length"`
	DashGap      float64 `yaml:"dash_gap"`
}

// BaseInterval returns the spawn base interval as a duration.
func (c SpawnerConfig) BaseInterval() time.Duration {
	return time.Duration(c.BaseIntervalMS) * time.Millisecond
}

// LevelInterval returns the time between level-ups.
func (c ProgressionConfig) LevelInterval() time.Duration {
	return time.Duration(c.LevelIntervalMS) * time.Millisecond
}

// MessageDuration returns how long the level banner stays visible.
func (c ProgressionConfig) MessageDuration() time.Duration {
	return time.Duration(c.MessageDurationMS) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Empty input means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}
