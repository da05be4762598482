package racer

import "github.com/vovakirdan/road-rush/internal/core"

// Autopilot is a simple steering policy for headless runs and demos.
// It looks for opponents that will reach the player's row within Lookahead
// world units and moves toward the wider free side of the road.
type Autopilot struct {
	Lookahead float64 // How far above the player to look for threats
	Margin    float64 // Extra horizontal clearance kept around the player
}

// NewAutopilot returns an autopilot with defaults suited to the
// standard playfield.
func NewAutopilot() Autopilot {
	return Autopilot{Lookahead: 220, Margin: 8}
}

// Decide returns the intent for the next tick.
func (a Autopilot) Decide(v View) core.Intent {
	var in core.Intent
	if v.Phase != PhaseRunning {
		return in
	}

	p := v.Player
	left := p.X - a.Margin
	right := p.X + p.Width + a.Margin

	var threat *OpponentCar
	for i := range v.Opponents {
		o := &v.Opponents[i]
		if o.Y+o.Height < p.Y-a.Lookahead || o.Y > p.Y+p.Height {
			continue
		}
		if o.X+o.Width <= left || o.X >= right {
			continue
		}
		// Nearest threat wins
		if threat == nil || o.Y > threat.Y {
			threat = o
		}
	}
	if threat == nil {
		return in
	}

	spaceLeft := threat.X
	spaceRight := v.FieldW - (threat.X + threat.Width)
	switch {
	case spaceLeft >= p.Width+a.Margin && spaceLeft >= spaceRight:
		in.Left = true
	case spaceRight >= p.Width+a.Margin:
		in.Right = true
	default:
		in.Left = spaceLeft > spaceRight
		in.Right = !in.Left
	}
	return in
}

// Apply replaces the game's horizontal intent with the autopilot's decision.
func (a Autopilot) Apply(g *Game) {
	in := a.Decide(g.View())
	g.SetIntent(core.DirLeft, in.Left)
	g.SetIntent(core.DirRight, in.Right)
}
