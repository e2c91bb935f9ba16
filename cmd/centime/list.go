package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamaro-labs/centime/internal/cli"
	"github.com/kamaro-labs/centime/internal/records"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records with search, sort, and highlighting",
		Long: `List all records, optionally filtered by a regular expression over the
description. Matches are highlighted. An invalid pattern falls back to
showing everything with a warning.

Examples:
  centime list
  centime list --search 'coffee|tea'
  centime list --sort amount --order asc
  centime list --cards`,
		RunE: runList,
	}

	cmd.Flags().StringP("search", "s", "", "regular expression filter over descriptions")
	cmd.Flags().Bool("case-sensitive", false, "make the search case-sensitive")
	cmd.Flags().String("sort", "date", "sort key (date, amount, description)")
	cmd.Flags().String("order", "", "sort order (asc, desc); default depends on the key")
	cmd.Flags().Bool("cards", false, "render the card projection instead of the table")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	term, _ := cmd.Flags().GetString("search")
	caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")
	sortKey, _ := cmd.Flags().GetString("sort")
	order, _ := cmd.Flags().GetString("order")
	cards, _ := cmd.Flags().GetBool("cards")

	view := records.NewView()
	view.SetSearch(term, !caseSensitive)

	key := records.SortKey(sortKey)
	switch key {
	case records.SortByDate, records.SortByAmount, records.SortByDescription:
	default:
		return fmt.Errorf("unknown sort key %q", sortKey)
	}
	switch records.SortOrder(order) {
	case records.Ascending, records.Descending, "":
	default:
		return fmt.Errorf("unknown sort order %q", order)
	}
	if view.Sort().Key != key {
		view.ToggleSort(key)
	}
	// The key is now active with its default direction; one more toggle
	// flips it when the user asked for the other order.
	if order != "" && records.SortOrder(order) != view.Sort().Order {
		view.ToggleSort(key)
	}

	snap := view.Render(app.ledger.Records())
	settings := app.store.LoadCurrency()

	if cards {
		cmd.Println(cli.RenderCards(snap, settings))
		return nil
	}
	cmd.Println(cli.RenderSnapshot(snap, settings))
	return nil
}
