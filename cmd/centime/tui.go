package main

import (
	"github.com/spf13/cobra"

	"github.com/kamaro-labs/centime/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive full-screen interface",
		RunE:  runTUI,
	}
}

func runTUI(_ *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	return tui.Run(tui.New(app.ledger, app.bus, app.store, app.dash))
}
