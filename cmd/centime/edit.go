package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamaro-labs/centime/internal/cli"
	"github.com/kamaro-labs/centime/internal/ledger"
	"github.com/kamaro-labs/centime/internal/model"
)

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing record",
		Long: `Edit a record by id. Fields you don't pass keep their current value.

Example:
  centime edit 3f1c... --amount 4.00`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("description", "", "what the money was for")
	cmd.Flags().String("amount", "", "positive amount, up to 2 decimals")
	cmd.Flags().String("category", "", "expense category (letters, spaces, hyphens)")
	cmd.Flags().String("date", "", "date in YYYY-MM-DD form")
	cmd.Flags().String("type", "", "income or expense")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	id := args[0]
	existing, ok := app.ledger.Get(id)
	if !ok {
		return fmt.Errorf("no record with id %s", id)
	}

	// Start the edit session from the record's current values and lay the
	// changed flags over them.
	input := ledger.Input{
		Description: existing.Description,
		Amount:      strconv.FormatFloat(existing.Amount, 'f', -1, 64),
		Category:    existing.Category,
		Date:        existing.Date,
		Type:        existing.Type,
	}
	if cmd.Flags().Changed("description") {
		input.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("amount") {
		input.Amount, _ = cmd.Flags().GetString("amount")
	}
	if cmd.Flags().Changed("category") {
		input.Category, _ = cmd.Flags().GetString("category")
	}
	if cmd.Flags().Changed("date") {
		input.Date, _ = cmd.Flags().GetString("date")
	}
	if cmd.Flags().Changed("type") {
		t, _ := cmd.Flags().GetString("type")
		input.Type = model.TransactionType(t)
	}

	record, err := app.ledger.Update(id, input)
	if err != nil {
		return reportValidation(cmd, err)
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Updated record %s", record.ID)))
	return nil
}
