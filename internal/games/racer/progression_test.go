package racer

import (
	"testing"
	"time"

	"github.com/vovakirdan/road-rush/internal/config"
)

func TestProgressionUpdate(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	p := NewProgression(cfg.Progression)
	p.Reset(epoch)
	player := newPlayer(cfg)

	if p.Update(epoch.Add(9999*time.Millisecond), &player) {
		t.Fatal("levelled up early")
	}
	if !p.Update(epoch.Add(10*time.Second), &player) {
		t.Fatal("no level-up at the interval")
	}
	if p.Level() != 2 || player.Speed != 3 {
		t.Errorf("level %d speed %v, want 2 and 3", p.Level(), player.Speed)
	}

	// One level per update, and the timer restarts at the level-up
	if p.Update(epoch.Add(15*time.Second), &player) {
		t.Error("levelled up again before a full interval")
	}
	if got := p.NextLevelIn(epoch.Add(15 * time.Second)); got != 5*time.Second {
		t.Errorf("NextLevelIn = %v, want 5s", got)
	}
}

func TestProgressionMessage(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	p := NewProgression(cfg.Progression)
	p.Reset(epoch)
	player := newPlayer(cfg)

	at := epoch.Add(10 * time.Second)
	p.Update(at, &player)

	if got := p.Message(at); got != "Level 2" {
		t.Errorf("message = %q, want %q", got, "Level 2")
	}
	if got := p.Message(at.Add(1999 * time.Millisecond)); got != "Level 2" {
		t.Errorf("message = %q before expiry", got)
	}
	if got := p.Message(at.Add(2 * time.Second)); got != "" {
		t.Errorf("message = %q after expiry", got)
	}

	p.Reset(at)
	if p.Level() != 1 || p.Message(at) != "" {
		t.Error("Reset should clear level and message")
	}
}

func TestProgressionFixedPreset(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	p := NewProgression(cfg.Progression)
	p.Reset(epoch)
	player := newPlayer(cfg)

	for i := 1; i <= 10; i++ {
		p.Update(epoch.Add(time.Duration(i)*10*time.Second), &player)
	}
	if p.Level() != 1 || player.Speed != 2 {
		t.Errorf("fixed preset levelled up: level %d speed %v", p.Level(), player.Speed)
	}
	if got := p.NextLevelIn(epoch); got != 0 {
		t.Errorf("NextLevelIn = %v at max level, want 0", got)
	}
}
