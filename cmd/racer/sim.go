package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-rush/internal/games/racer"
	"github.com/vovakirdan/road-rush/internal/logging"
	"github.com/vovakirdan/road-rush/internal/platform/tui"
)

var (
	flagRuns        int
	flagMaxSeconds  int
	flagNoAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless sessions with the autopilot",
	Long: `Play sessions without a terminal UI on a simulated clock and print
the results. The same seed, config and flags always give the same results.

Examples:
  racer sim
  racer sim --runs 10 --seed 7
  racer sim --difficulty hard --max-seconds 60 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of back-to-back sessions")
	simCmd.Flags().IntVar(&flagMaxSeconds, "max-seconds", 120, "Simulated time limit per session")
	simCmd.Flags().BoolVar(&flagNoAutopilot, "no-autopilot", false, "Drive straight instead of steering")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagRuns < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", flagRuns)
	}
	if flagFPS < 1 {
		return fmt.Errorf("--fps must be at least 1, got %d", flagFPS)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := racer.SimOptions{
		Seed:     seed,
		TickRate: flagFPS,
		MaxTicks: flagMaxSeconds * flagFPS,
		Sessions: flagRuns,
		Observer: logging.NewSessionObserver(logger),
	}
	if !flagNoAutopilot {
		pilot := racer.NewAutopilot()
		opts.Autopilot = &pilot
	}

	logger.Info("simulating", "seed", seed, "runs", flagRuns, "fps", flagFPS)
	results := racer.Simulate(cfg, opts)

	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		outcome := r.Outcome()
		logger.Info("session finished", "run", r.Session, "score", r.Score, "outcome", outcome)
		rows = append(rows, table.Row{
			strconv.Itoa(r.Session),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			strconv.FormatUint(r.Ticks, 10),
			r.Elapsed.Round(10 * time.Millisecond).String(),
			outcome,
		})
	}

	fmt.Println(tui.RenderTable([]table.Column{
		{Title: "Run", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Ticks", Width: 8},
		{Title: "Time", Width: 10},
		{Title: "Outcome", Width: 12},
	}, rows))
	fmt.Printf("\nseed %d\n", seed)
	return nil
}
