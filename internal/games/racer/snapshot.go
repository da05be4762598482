package racer

import (
	"math"
	"time"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	Score        int
	Level        int
	DisplaySpeed int
	PlayerX      float64
	PlayerSpeed  float64
	Opponents    int
	RoadOffset   float64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		Score:        g.score,
		Level:        g.progression.Level(),
		DisplaySpeed: g.displaySpeed,
		PlayerX:      g.player.X,
		PlayerSpeed:  g.player.Speed,
		Opponents:    len(g.opponents),
		RoadOffset:   g.roadOffset,
	}
}

// View is everything a renderer needs to draw one frame.
type View struct {
	FieldW, FieldH float64
	Player         PlayerCar
	Opponents      []OpponentCar
	DashPhase      float64 // Scroll position of the centre-line dash pattern
	DashLength     float64
	DashGap        float64
	Message        string
	Phase          Phase
	Score          int
	FinalScore     int
	Level          int
	MaxLevel       int
	DisplaySpeed   int
	NextLevelIn    time.Duration // Zero unless running below the max level
}

// View returns a read-only picture of the current frame.
func (g *Game) View() View {
	period := g.cfg.Road.DashLength + g.cfg.Road.DashGap
	phase := 0.0
	if period > 0 {
		phase = math.Mod(g.roadOffset, period)
	}

	var next time.Duration
	if g.phase == PhaseRunning {
		next = g.progression.NextLevelIn(g.clock.Now())
	}

	return View{
		FieldW:       g.cfg.Playfield.Width,
		FieldH:       g.cfg.Playfield.Height,
		Player:       g.player,
		Opponents:    g.Opponents(),
		DashPhase:    phase,
		DashLength:   g.cfg.Road.DashLength,
		DashGap:      g.cfg.Road.DashGap,
		Message:      g.Message(),
		Phase:        g.phase,
		Score:        g.score,
		FinalScore:   g.finalScore,
		Level:        g.progression.Level(),
		MaxLevel:     g.progression.MaxLevel(),
		DisplaySpeed: g.displaySpeed,
		NextLevelIn:  next,
	}
}

// DashStarts returns the world Y of every centre-line dash that may be
// visible, starting one period above the top edge.
func (v View) DashStarts() []float64 {
	period := v.DashLength + v.DashGap
	if period <= 0 {
		return nil
	}
	var ys []float64
	for y := v.DashPhase - period; y < v.FieldH; y += period {
		ys = append(ys, y)
	}
	return ys
}
