// racer-gui plays Road Rush in a desktop window.
//
// Usage:
//
//	racer-gui [--scale 1.5] [--seed 42] [--difficulty hard] [--config racer.yaml]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-rush/internal/config"
	"github.com/vovakirdan/road-rush/internal/logging"
	"github.com/vovakirdan/road-rush/internal/platform/gui"
)

var (
	flagFPS        int
	flagSeed       int64
	flagScale      float64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer-gui",
	Short: "Road Rush in a desktop window",
	Long: `Road Rush in a desktop window.

Controls:
  Left/A, Right/D  - Steer
  Enter/Space      - Start or restart
  Esc/Q            - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale relative to the 400x600 road")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	cfg, err := config.Load(flagConfig, preset)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	logger.Info("starting desktop game", "scale", flagScale, "fps", flagFPS)
	return gui.Run(cfg, gui.Options{
		Seed:   flagSeed,
		TPS:    flagFPS,
		Scale:  flagScale,
		Logger: logger,
	})
}
