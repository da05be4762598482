package racer

import (
	"github.com/vovakirdan/road-rush/internal/config"
	"github.com/vovakirdan/road-rush/internal/core"
)

// PlayerCar is the car the player steers.
// Speed only changes through level-ups.
type PlayerCar struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Color         core.Color

	step float64 // Horizontal move per tick per held direction
	maxX float64 // Right bound for X
}

// newPlayer builds a player car at its start position.
func newPlayer(cfg config.RacerConfig) PlayerCar {
	color, _ := core.ParseColor(cfg.Player.Color) // checked by RacerConfig.Validate
	p := PlayerCar{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Color:  color,
		step:   cfg.Player.Step,
		maxX:   cfg.Playfield.Width - cfg.Player.Width,
	}
	p.reset(cfg)
	return p
}

// reset puts the car back at the bottom centre with the start speed.
func (p *PlayerCar) reset(cfg config.RacerConfig) {
	p.X = cfg.Playfield.Width/2 - cfg.Player.Width/2
	p.Y = cfg.Playfield.Height - cfg.Player.BottomOffset
	p.Speed = cfg.Player.StartSpeed
}

// ApplyIntent moves the car one step per held horizontal direction.
// Left and right are applied independently, so holding both cancels out.
func (p *PlayerCar) ApplyIntent(in core.Intent) {
	if in.Has(core.DirLeft) {
		p.X -= p.step
	}
	if in.Has(core.DirRight) {
		p.X += p.step
	}
}

// Clamp keeps the car inside the playfield.
func (p *PlayerCar) Clamp() {
	p.X = core.ClampF(p.X, 0, p.maxX)
}

// Rect returns the player's collision rectangle.
func (p PlayerCar) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}
