// Package racer implements a top-down lane-dodging racer.
//
// The player's car sits near the bottom of a scrolling road and slides
// left and right to avoid opponent cars coming down from the top. Every
// car that leaves the bottom edge scores points; the level (and with it the
// player's speed and spawn rate) rises on a wall-clock timer. The first
// collision ends the session.
//
// The game owns no goroutines or timers. Start registers the tick with a
// core.FrameScheduler, and the host runs one frame per display refresh.
package racer

import (
	"math"

	"github.com/vovakirdan/road-rush/internal/config"
	"github.com/vovakirdan/road-rush/internal/core"
)

// Options carry the collaborators a game runs with.
// Zero values are replaced with defaults in New.
type Options struct {
	Seed     int64                // RNG seed for opponent traffic
	Clock    core.Clock           // Time source for spawn and level timers (default core.SystemClock)
	Frames   *core.FrameScheduler // Where the tick is registered (default: a private scheduler)
	Observer Observer             // Receives HUD values (default NopObserver)
}

// Game is one racer session and the state machine around it.
type Game struct {
	cfg      config.RacerConfig
	clock    core.Clock
	frames   *core.FrameScheduler
	observer Observer

	phase Phase
	task  *core.FrameTask

	player      PlayerCar
	opponents   []OpponentCar
	spawner     *Spawner
	progression *Progression
	intent      core.Intent

	score        int
	finalScore   int
	displaySpeed int
	roadOffset   float64
	tick         uint64
	sessions     int
}

// New creates an idle game. Nothing runs until Start.
// cfg is expected to have passed Validate.
func New(cfg config.RacerConfig, opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Frames == nil {
		opts.Frames = core.NewFrameScheduler()
	}
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}

	return &Game{
		cfg:         cfg,
		clock:       opts.Clock,
		frames:      opts.Frames,
		observer:    opts.Observer,
		phase:       PhaseIdle,
		player:      newPlayer(cfg),
		spawner:     NewSpawner(opts.Seed, cfg),
		progression: NewProgression(cfg.Progression),
	}
}

// Start begins a new session from Idle or GameOver.
// All session state is reset and the tick is registered with the frame
// scheduler. Calling Start while a session is running does nothing.
func (g *Game) Start() {
	if g.phase == PhaseRunning {
		return
	}

	now := g.clock.Now()

	g.player.reset(g.cfg)
	g.opponents = g.opponents[:0]
	g.score = 0
	g.finalScore = 0
	g.displaySpeed = 0
	g.roadOffset = 0
	g.tick = 0
	g.sessions++
	g.progression.Reset(now)
	g.spawner.Reset(now)

	g.phase = PhaseRunning
	g.task.Cancel()
	g.task = g.frames.Every(g.Step)

	g.observer.ScoreChanged(g.score)
	g.observer.SpeedChanged(g.displaySpeed)
	g.observer.LevelChanged(g.progression.Level())
	g.observer.PhaseChanged(g.phase, 0)
}

// Step advances the simulation by one tick.
// It is a no-op unless the session is running.
func (g *Game) Step() {
	if g.phase != PhaseRunning {
		return
	}

	now := g.clock.Now()
	g.tick++

	prevScore := g.score
	prevSpeed := g.displaySpeed

	if g.progression.Update(now, &g.player) {
		g.observer.LevelChanged(g.progression.Level())
	}

	g.player.ApplyIntent(g.intent)
	g.player.Clamp()

	g.roadOffset += g.player.Speed * g.cfg.Road.ScrollFactor

	if car, ok := g.spawner.Tick(now, g.player.Speed); ok {
		g.opponents = append(g.opponents, car)
	}

	crashed := g.moveOpponents()

	g.displaySpeed = int(math.Floor(g.player.Speed * g.cfg.Scoring.DisplaySpeedScale))

	if g.score != prevScore {
		g.observer.ScoreChanged(g.score)
	}
	if g.displaySpeed != prevSpeed {
		g.observer.SpeedChanged(g.displaySpeed)
	}

	if crashed {
		g.gameOver()
	}
}

// moveOpponents advances every opponent, retires those past the bottom
// edge and reports whether one hit the player. Opponents are walked newest
// first; the walk stops at the first hit.
func (g *Game) moveOpponents() bool {
	playerRect := g.player.Rect()

	for i := len(g.opponents) - 1; i >= 0; i-- {
		car := &g.opponents[i]
		car.Y += car.Speed + g.player.Speed

		if car.Y > g.cfg.Playfield.Height {
			g.opponents = append(g.opponents[:i], g.opponents[i+1:]...)
			g.score += g.cfg.Scoring.PointsPerCar
			continue
		}

		if car.Rect().Intersects(playerRect) {
			return true
		}
	}
	return false
}

// gameOver freezes the score and stops the tick.
func (g *Game) gameOver() {
	g.phase = PhaseGameOver
	g.finalScore = g.score
	g.task.Cancel()
	g.observer.PhaseChanged(g.phase, g.finalScore)
}

// halt stops the tick and returns to idle without reporting a crash.
func (g *Game) halt() {
	g.phase = PhaseIdle
	g.task.Cancel()
}

// SetIntent records whether a direction is currently held.
// Unknown directions are ignored. Intents are sampled on the next tick.
func (g *Game) SetIntent(d core.Direction, active bool) {
	if !d.Valid() {
		return
	}
	g.intent.Set(d, active)
}

// ClearIntent releases every direction.
func (g *Game) ClearIntent() {
	g.intent.Clear()
}

// Intent returns the held directions.
func (g *Game) Intent() core.Intent {
	return g.intent
}

// Phase returns the session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Running reports whether ticks are executing.
func (g *Game) Running() bool {
	return g.phase == PhaseRunning
}

// Score returns the live score.
func (g *Game) Score() int {
	return g.score
}

// FinalScore returns the score frozen at the last collision.
func (g *Game) FinalScore() int {
	return g.finalScore
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.progression.Level()
}

// DisplaySpeed returns the speed shown in the HUD.
func (g *Game) DisplaySpeed() int {
	return g.displaySpeed
}

// Player returns a copy of the player's car.
func (g *Game) Player() PlayerCar {
	return g.player
}

// Opponents returns a copy of the live opponents.
func (g *Game) Opponents() []OpponentCar {
	out := make([]OpponentCar, len(g.opponents))
	copy(out, g.opponents)
	return out
}

// Message returns the level banner if one is showing.
func (g *Game) Message() string {
	if g.phase != PhaseRunning {
		return ""
	}
	return g.progression.Message(g.clock.Now())
}

// Sessions returns how many times Start has begun a session.
func (g *Game) Sessions() int {
	return g.sessions
}

// Config returns the tunables the game was built with.
func (g *Game) Config() config.RacerConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.score
	if g.phase == PhaseGameOver {
		score = g.finalScore
	}
	return core.GameState{
		Score:    score,
		Level:    g.progression.Level(),
		Running:  g.phase == PhaseRunning,
		GameOver: g.phase == PhaseGameOver,
	}
}
