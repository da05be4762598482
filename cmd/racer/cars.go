package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-rush/internal/platform/tui"
)

var carsCmd = &cobra.Command{
	Use:   "cars",
	Short: "List opponent car types",
	Long:  `Shows the opponent archetypes from the effective configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runCars,
}

func runCars(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(cfg.Spawner.Archetypes))
	for _, a := range cfg.Spawner.Archetypes {
		rows = append(rows, table.Row{
			a.Name,
			fmt.Sprintf("%gx%g", a.Width, a.Height),
			a.Color,
			fmt.Sprintf("%.1f-%.1f", a.BaseSpeed, a.BaseSpeed+a.SpeedVariance),
		})
	}

	fmt.Println(tui.RenderTable([]table.Column{
		{Title: "Name", Width: 10},
		{Title: "Size", Width: 9},
		{Title: "Color", Width: 10},
		{Title: "Speed", Width: 9},
	}, rows))
	return nil
}
