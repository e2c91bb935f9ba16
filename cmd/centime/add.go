package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamaro-labs/centime/internal/cli"
	"github.com/kamaro-labs/centime/internal/ledger"
	"github.com/kamaro-labs/centime/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense record",
		Long: `Add a new transaction record.

Examples:
  centime add --description "Morning coffee" --amount 2.50 --category Food
  centime add --type income --description "June salary" --amount 1200 --date 2026-06-30`,
		RunE: runAdd,
	}

	cmd.Flags().String("description", "", "what the money was for")
	cmd.Flags().String("amount", "", "positive amount, up to 2 decimals")
	cmd.Flags().String("category", "", "expense category (letters, spaces, hyphens)")
	cmd.Flags().String("date", time.Now().Format(model.DateFormat), "date in YYYY-MM-DD form")
	cmd.Flags().String("type", string(model.Expense), "income or expense")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	input := inputFromFlags(cmd)
	record, err := app.ledger.Create(input)
	if err != nil {
		return reportValidation(cmd, err)
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Added %s record %s", record.Type, record.ID)))
	return nil
}

func inputFromFlags(cmd *cobra.Command) ledger.Input {
	description, _ := cmd.Flags().GetString("description")
	amount, _ := cmd.Flags().GetString("amount")
	category, _ := cmd.Flags().GetString("category")
	date, _ := cmd.Flags().GetString("date")
	txType, _ := cmd.Flags().GetString("type")

	return ledger.Input{
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Type:        model.TransactionType(txType),
	}
}

// reportValidation prints each failing field's message and returns a short
// error so the command exits nonzero without repeating the details.
func reportValidation(cmd *cobra.Command, err error) error {
	if errs, ok := err.(ledger.ValidationErrors); ok {
		for _, fe := range errs {
			cmd.Println(cli.FormatError(fmt.Sprintf("%s: %s", fe.Field, fe.Message)))
		}
		return fmt.Errorf("validation failed")
	}
	return err
}
