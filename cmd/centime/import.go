package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kamaro-labs/centime/internal/cli"
	"github.com/kamaro-labs/centime/internal/common"
	"github.com/kamaro-labs/centime/internal/impexp"
	"github.com/kamaro-labs/centime/internal/ledger"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import records from a JSON export or an OFX/QFX statement",
		Long: `Import records from a file.

A .json file replaces the whole record list (all-or-nothing; the current
data is untouched if the file is rejected). A .ofx or .qfx bank statement
is appended record by record, each one validated like a form submission.

Examples:
  centime import centime-export-2026-08-01.json
  centime import ~/Downloads/statement.qfx`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("format", "", "force the input format (json, ofx)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	path := args[0]
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ofx", ".qfx":
			format = "ofx"
		default:
			format = "json"
		}
	}

	if format == "ofx" {
		return importOFX(cmd, app, path)
	}
	return importJSON(cmd, app, path)
}

func importJSON(cmd *cobra.Command, a *app, path string) error {
	imported, err := impexp.ImportFile(path)
	if err != nil {
		cmd.Println(cli.FormatError(err.Error()))
		return fmt.Errorf("import failed")
	}

	a.ledger.ReplaceAll(imported)
	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d record(s)", len(imported))))
	return nil
}

func importOFX(cmd *cobra.Command, a *app, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	transactions, err := impexp.ImportOFX(f)
	if err != nil {
		cmd.Println(cli.FormatError(err.Error()))
		return fmt.Errorf("import failed")
	}
	if len(transactions) == 0 {
		cmd.Println(cli.FormatWarning("No transactions found in statement"))
		return nil
	}

	bar := progressbar.Default(int64(len(transactions)), "importing")
	added, skipped := 0, 0
	for _, tx := range transactions {
		input := ledger.Input{
			Description: tx.Description,
			Amount:      fmt.Sprintf("%.2f", tx.Amount),
			Category:    "Imported",
			Date:        tx.Date,
			Type:        tx.Type,
		}
		if _, err := a.ledger.Create(input); err != nil {
			skipped++
			common.LogDebug("skipped statement line", common.Fields{
				"description": tx.Description,
				"error":       err.Error(),
			})
		} else {
			added++
		}
		_ = bar.Add(1)
	}

	cmd.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d record(s), skipped %d", added, skipped)))
	return nil
}
