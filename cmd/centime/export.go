package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamaro-labs/centime/internal/cli"
	"github.com/kamaro-labs/centime/internal/impexp"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export all records as pretty-printed JSON",
		Long: `Export the full record list to a JSON file. Without an argument the
file is named after today's date, e.g. centime-export-2026-08-29.json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	written, err := impexp.ExportFile(path, app.ledger.Records())
	if err != nil {
		return err
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d record(s) to %s", len(app.ledger.Records()), written)))
	return nil
}
