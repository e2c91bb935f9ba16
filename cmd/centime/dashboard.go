package main

import (
	"github.com/spf13/cobra"

	"github.com/kamaro-labs/centime/internal/cli"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, top category, budget, and the 7-day trend",
		RunE:  runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	summary := app.dash.Summary()
	settings := app.dash.Settings()

	cmd.Println(cli.RenderBox("Dashboard", cli.RenderSummary(summary, settings)))
	return nil
}
