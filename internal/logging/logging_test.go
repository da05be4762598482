package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/road-rush/internal/games/racer"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantErr   bool
	}{
		{"debug", true, false},
		{"info", false, false},
		{"warn", false, false},
		{"bogus", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			logger.Debug("probe")
			if got := strings.Contains(buf.String(), "probe"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v (output %q)", got, tt.wantDebug, buf.String())
			}
		})
	}
}

func TestSessionObserver(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}

	obs := NewSessionObserver(logger)
	obs.LevelChanged(1)
	obs.PhaseChanged(racer.PhaseRunning, 0)
	obs.ScoreChanged(10)
	obs.LevelChanged(2)
	obs.PhaseChanged(racer.PhaseGameOver, 30)

	out := buf.String()
	for _, want := range []string{"racer", "session started", "level up", "game_level=2", "game over", "score=30"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "score changed") {
		t.Error("score changes should be debug only")
	}
	if strings.Count(out, "level up") != 1 {
		t.Errorf("expected one level up line:\n%s", out)
	}
}

func TestSessionObserverGameOverCarriesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}

	obs := NewSessionObserver(logger)
	obs.LevelChanged(1)
	obs.LevelChanged(3)
	obs.PhaseChanged(racer.PhaseGameOver, 40)

	var gameOver string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "game over") {
			gameOver = line
		}
	}
	if !strings.Contains(gameOver, "score=40") || !strings.Contains(gameOver, "game_level=3") {
		t.Errorf("game over line = %q, want score=40 and game_level=3", gameOver)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "racer.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	logger, err := New(f, "info")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello")
}
