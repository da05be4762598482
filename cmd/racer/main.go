// racer is a top-down lane-dodging racer for the terminal.
//
// Usage:
//
//	racer                    - Play in the terminal (same as "racer play")
//	racer play               - Play in the terminal
//	racer sim                - Run headless sessions with the autopilot
//	racer cars               - List opponent car types
//	racer config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible traffic
//	--config <path>       - Load tunables from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-rush/internal/config"
	"github.com/vovakirdan/road-rush/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Road Rush - dodge traffic in your terminal",
	Long: `Road Rush is a top-down racer. Steer left and right to dodge the cars
coming down the road. Every car that gets past you scores points, and every
ten seconds the level goes up and the road gets faster.

Available commands:
  play     - Play in the terminal (default)
  sim      - Run headless sessions with the autopilot
  cars     - List opponent car types
  config   - Print the effective configuration

Examples:
  racer
  racer play --difficulty hard
  racer sim --runs 5 --seed 42
  racer config --config ./my-racer.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(carsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the effective racer config from the global flags.
func loadConfig() (config.RacerConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.RacerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return config.Load(flagConfig, preset)
}

// newLogger builds the logger from the global flags. Without --log-file,
// logs go to fallback. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closer = func() { f.Close() }
	}

	logger, err := logging.New(w, flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}
