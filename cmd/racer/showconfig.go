package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-rush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after the config
search order and the difficulty preset are applied. The output is valid YAML
and can be saved as a starting point for --config.

Search order:
  --config path, ~/.racer/configs/racer.yaml, ./configs/racer.yaml, built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
