package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the default configuration.
// It mirrors defaults/racer.yaml and is used when the embedded file cannot be parsed.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Playfield: PlayfieldConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       80,
			StartSpeed:   2,
			Step:         5,
			BottomOffset: 100,
			Color:        "blue",
		},
		Spawner: SpawnerConfig{
			BaseIntervalMS: 2000,
			SpeedDivisor:   5,
			Archetypes: []Archetype{
				{Name: "sedan", Width: 50, Height: 80, Color: "red", BaseSpeed: 3, SpeedVariance: 2},
				{Name: "truck", Width: 60, Height: 100, Color: "orange", BaseSpeed: 2, SpeedVariance: 2},
				{Name: "sport", Width: 40, Height: 70, Color: "green", BaseSpeed: 4, SpeedVariance: 2},
			},
		},
		Progression: ProgressionConfig{
			MaxLevel:          5,
			LevelIntervalMS:   10000,
			SpeedIncrement:    1,
			MessageDurationMS: 2000,
		},
		Scoring: ScoringConfig{
			PointsPerCar:      10,
			DisplaySpeedScale: 20,
		},
		Road: RoadConfig{
			ScrollFactor: 2,
			DashLength:   40,
			DashGap:      30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRacerYAML
}
