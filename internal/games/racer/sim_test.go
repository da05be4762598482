package racer

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/road-rush/internal/config"
)

func TestSimulateIsDeterministic(t *testing.T) {
	pilot := NewAutopilot()
	opts := SimOptions{Seed: 5, MaxTicks: 3000, Sessions: 3, Autopilot: &pilot}

	a := Simulate(config.DefaultRacerConfig(), opts)
	b := Simulate(config.DefaultRacerConfig(), opts)

	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("got %d and %d results, want 3", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("session %d differs: %+v vs %+v", i+1, a[i], b[i])
		}
		if a[i].Session != i+1 {
			t.Errorf("session number = %d, want %d", a[i].Session, i+1)
		}
	}
}

func TestSimulateTickLimit(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	cfg.Spawner.BaseIntervalMS = 1 << 30

	res := Simulate(cfg, SimOptions{Seed: 1, TickRate: 50, MaxTicks: 600, Sessions: 2})
	for _, r := range res {
		if r.Crashed {
			t.Errorf("session %d crashed on an empty road", r.Session)
		}
		if r.Ticks != 600 {
			t.Errorf("ticks = %d, want 600", r.Ticks)
		}
		if r.Elapsed != 12*time.Second {
			t.Errorf("elapsed = %v, want 12s", r.Elapsed)
		}
		if r.Level != 2 {
			t.Errorf("level = %d after 12s, want 2", r.Level)
		}
	}
}

func TestSimulateCrashRecordsFinalScore(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	cfg.Spawner.BaseIntervalMS = 1
	cfg.Spawner.Archetypes = []config.Archetype{
		{Name: "wall", Width: 400, Height: 80, Color: "red", BaseSpeed: 3},
	}

	res := Simulate(cfg, SimOptions{Seed: 1, MaxTicks: 1000})
	if len(res) != 1 || !res[0].Crashed {
		t.Fatalf("expected a crash, got %+v", res)
	}
	if res[0].Score != 0 {
		t.Errorf("score = %d, want 0", res[0].Score)
	}
}

func TestSimulateTickLimitIsNotGameOver(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	cfg.Spawner.BaseIntervalMS = 1 << 30
	obs := &recorder{}

	res := Simulate(cfg, SimOptions{Seed: 1, TickRate: 50, MaxTicks: 100, Sessions: 2, Observer: obs})
	if len(res) != 2 {
		t.Fatalf("got %d results, want 2", len(res))
	}
	for _, r := range res {
		if r.Outcome() != "time limit" {
			t.Errorf("session %d outcome = %q, want time limit", r.Session, r.Outcome())
		}
	}

	started := 0
	for _, e := range obs.events {
		if strings.HasPrefix(e, "phase=game_over") {
			t.Errorf("time-limited run reported %s", e)
		}
		if strings.HasPrefix(e, "phase=running") {
			started++
		}
	}
	if started != 2 {
		t.Errorf("saw %d session starts, want 2: %v", started, obs.events)
	}
}

func TestSimulateCrashIsGameOver(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	cfg.Spawner.BaseIntervalMS = 1
	cfg.Spawner.Archetypes = []config.Archetype{
		{Name: "wall", Width: 400, Height: 80, Color: "red", BaseSpeed: 3},
	}
	obs := &recorder{}

	res := Simulate(cfg, SimOptions{Seed: 1, MaxTicks: 1000, Observer: obs})
	if len(res) != 1 || res[0].Outcome() != "crash" {
		t.Fatalf("expected a crash, got %+v", res)
	}
	if last := obs.events[len(obs.events)-1]; last != "phase=game_over/0" {
		t.Errorf("last event = %q, want phase=game_over/0", last)
	}
}
