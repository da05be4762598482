package racer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/road-rush/internal/config"
	"github.com/vovakirdan/road-rush/internal/core"
)

// OpponentCar is a car driving down the road toward the player.
type OpponentCar struct {
	X, Y          float64
	Width, Height float64
	Speed         float64    // Rolled at spawn, fixed afterwards
	Color         core.Color // Cosmetic only
	Kind          string     // Archetype name, cosmetic only
}

// Rect returns the collision rectangle for this car.
func (o OpponentCar) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Spawner creates opponent cars at a cadence that grows with player speed.
type Spawner struct {
	rng        *rand.Rand
	archetypes []config.Archetype
	colors     []core.Color
	fieldW     float64
	base       time.Duration
	divisor    float64
	lastSpawn  time.Time
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.RacerConfig) *Spawner {
	s := &Spawner{
		rng:        rand.New(rand.NewSource(seed)),
		archetypes: cfg.Spawner.Archetypes,
		colors:     make([]core.Color, len(cfg.Spawner.Archetypes)),
		fieldW:     cfg.Playfield.Width,
		base:       cfg.Spawner.BaseInterval(),
		divisor:    cfg.Spawner.SpeedDivisor,
	}
	// Colour names are checked by RacerConfig.Validate.
	for i, a := range s.archetypes {
		s.colors[i], _ = core.ParseColor(a.Color)
	}
	return s
}

// Reset restarts the cadence timer. The RNG stream carries on so that
// consecutive sessions see different traffic.
func (s *Spawner) Reset(now time.Time) {
	s.lastSpawn = now
}

// Interval returns the time between spawns at the given player speed.
func (s *Spawner) Interval(playerSpeed float64) time.Duration {
	return time.Duration(float64(s.base) / (1 + playerSpeed/s.divisor))
}

// Due reports whether more than one interval has passed since the last spawn.
func (s *Spawner) Due(now time.Time, playerSpeed float64) bool {
	return now.Sub(s.lastSpawn) > s.Interval(playerSpeed)
}

// Tick spawns a car if one is due and restarts the cadence timer.
func (s *Spawner) Tick(now time.Time, playerSpeed float64) (OpponentCar, bool) {
	if !s.Due(now, playerSpeed) {
		return OpponentCar{}, false
	}
	s.lastSpawn = now
	return s.Spawn(), true
}

// Spawn creates one car from a uniformly chosen archetype, fully above the
// top edge at a random horizontal position.
func (s *Spawner) Spawn() OpponentCar {
	i := s.rng.Intn(len(s.archetypes))
	a := s.archetypes[i]

	return OpponentCar{
		X:      s.rng.Float64() * (s.fieldW - a.Width),
		Y:      -a.Height,
		Width:  a.Width,
		Height: a.Height,
		Speed:  a.BaseSpeed + s.rng.Float64()*a.SpeedVariance,
		Color:  s.colors[i],
		Kind:   a.Name,
	}
}
