package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamaro-labs/centime/internal/cli"
	"github.com/kamaro-labs/centime/internal/records"
)

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	id := args[0]
	record, ok := app.ledger.Get(id)
	if !ok {
		return fmt.Errorf("no record with id %s", id)
	}

	// Same two-phase flow as the TUI: park the id, then confirm or cancel.
	view := records.NewView()
	view.RequestDelete(id)

	skip, _ := cmd.Flags().GetBool("yes")
	if !skip {
		prompt := fmt.Sprintf("Delete %q (%s)?", record.Description, record.Date)
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			view.CancelDelete()
			cmd.Println("Cancelled.")
			return nil
		}
	}

	if target, ok := view.ConfirmDelete(); ok {
		app.ledger.Delete(target)
		cmd.Println(cli.FormatSuccess("Record deleted"))
	}
	return nil
}
