package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamaro-labs/centime/internal/cli"
	"github.com/kamaro-labs/centime/internal/currency"
	"github.com/kamaro-labs/centime/internal/model"
)

func budgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budget [amount]",
		Short: "Show or set the monthly budget",
		Long: `Without arguments, shows the current budget. With an amount, sets it.
A budget of 0 means "unset" and hides budget figures on the dashboard.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBudget,
	}
}

func runBudget(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	settings := app.store.LoadCurrency()

	if len(args) == 0 {
		budget := app.store.LoadBudget()
		if budget > 0 {
			cmd.Println(fmt.Sprintf("Budget: %s", currency.Format(budget, settings)))
		} else {
			cmd.Println("No budget set.")
		}
		return nil
	}

	budget, err := strconv.ParseFloat(args[0], 64)
	if err != nil || budget < 0 {
		return fmt.Errorf("budget must be a non-negative number")
	}

	app.store.SaveBudget(budget)
	app.bus.PublishBudget(budget)
	cmd.Println(cli.FormatSuccess("Budget saved!"))
	return nil
}

func currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency [code]",
		Short: "Show or switch the display currency",
		Long: fmt.Sprintf(`Without arguments, shows the active display currency and the known
rates. With a code (%s), switches to it. Record amounts stay stored in
%s; only the display changes.`,
			strings.Join(model.SupportedCurrencies(), ", "), model.ReferenceCurrency),
		Args: cobra.MaximumNArgs(1),
		RunE: runCurrency,
	}
}

func runCurrency(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	settings := app.store.LoadCurrency()

	if len(args) == 0 {
		cmd.Println(fmt.Sprintf("Active currency: %s (%s)", settings.Active, settings.Symbols[settings.Active]))
		for _, code := range model.SupportedCurrencies() {
			cmd.Println(fmt.Sprintf("  %s  rate %g  symbol %s", code, settings.Rates[code], settings.Symbols[code]))
		}
		return nil
	}

	code := strings.ToUpper(args[0])
	if _, ok := settings.Rates[code]; !ok {
		return fmt.Errorf("unknown currency %q (have: %s)", code, strings.Join(model.SupportedCurrencies(), ", "))
	}

	settings.Active = code
	app.store.SaveCurrency(settings)
	app.bus.PublishCurrency(settings)
	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Display currency set to %s", code)))
	return nil
}
