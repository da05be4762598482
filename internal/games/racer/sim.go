package racer

import (
	"time"

	"github.com/vovakirdan/road-rush/internal/config"
	"github.com/vovakirdan/road-rush/internal/core"
)

// SimOptions configure a headless run.
type SimOptions struct {
	Seed      int64
	TickRate  int        // Frames per simulated second (default 60)
	MaxTicks  int        // Per-session tick limit (default 2 simulated minutes)
	Sessions  int        // Back-to-back sessions on one game (default 1)
	Autopilot *Autopilot // Steering policy; nil drives straight
	Observer  Observer
}

// SimResult is the outcome of one headless session.
type SimResult struct {
	Session int
	Score   int
	Level   int
	Ticks   uint64
	Elapsed time.Duration // Simulated time
	Crashed bool          // False if the tick limit ended the session
}

// Outcome names how the session ended.
func (r SimResult) Outcome() string {
	if r.Crashed {
		return "crash"
	}
	return "time limit"
}

// simEpoch is an arbitrary fixed start so runs are reproducible.
var simEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Simulate plays sessions on a manual clock, one frame per simulated tick.
// The same options always produce the same results.
func Simulate(cfg config.RacerConfig, opts SimOptions) []SimResult {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = opts.TickRate * 120
	}
	if opts.Sessions <= 0 {
		opts.Sessions = 1
	}

	clock := core.NewManualClock(simEpoch)
	frames := core.NewFrameScheduler()
	g := New(cfg, Options{Seed: opts.Seed, Clock: clock, Frames: frames, Observer: opts.Observer})
	frame := time.Second / time.Duration(opts.TickRate)

	results := make([]SimResult, 0, opts.Sessions)
	for s := 1; s <= opts.Sessions; s++ {
		g.ClearIntent()
		g.Start()
		started := clock.Now()

		for i := 0; i < opts.MaxTicks && g.Running(); i++ {
			if opts.Autopilot != nil {
				opts.Autopilot.Apply(g)
			}
			clock.Advance(frame)
			frames.RunFrame()
		}

		crashed := g.Phase() == PhaseGameOver
		score := g.Score()
		if crashed {
			score = g.FinalScore()
		}
		results = append(results, SimResult{
			Session: s,
			Score:   score,
			Level:   g.Level(),
			Ticks:   g.tick,
			Elapsed: clock.Now().Sub(started),
			Crashed: crashed,
		})

		// A session that hit the tick limit did not crash.
		if g.Running() {
			g.halt()
		}
	}
	return results
}
