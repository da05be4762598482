package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/road-rush/internal/core"
	"github.com/vovakirdan/road-rush/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the racer in the terminal.

Controls:
  Left/A, Right/D  - Steer
  Enter/Space      - Start or restart
  Ctrl+S           - Save a screenshot
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower traffic and a slower start
  normal - Default tuning
  hard   - Denser traffic and a faster start
  fixed  - No level progression

Examples:
  racer play
  racer play --difficulty easy
  racer play --config ./my-racer.yaml --log-file racer.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting terminal game", "width", width, "height", height, "fps", flagFPS)
	return tui.Run(cfg, rt, tui.Options{Logger: logger})
}
