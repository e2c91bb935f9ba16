package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kamaro-labs/centime/internal/currency"
	"github.com/kamaro-labs/centime/internal/dashboard"
	"github.com/kamaro-labs/centime/internal/model"
	"github.com/kamaro-labs/centime/internal/records"
)

const (
	trendBarWidth = 24
	dateColWidth  = 10
	amountWidth   = 14
)

// RenderSnapshot renders the table projection of a records snapshot, with
// sort indicators on the headers and search matches highlighted.
func RenderSnapshot(snap records.Snapshot, settings model.CurrencySettings) string {
	var b strings.Builder

	if snap.PatternError != "" {
		b.WriteString(FormatError(snap.PatternError) + "\n\n")
	}

	switch snap.Empty {
	case records.EmptyNoRecords:
		b.WriteString(SubtleStyle.Render("No transactions yet. Add one to get started!"))
		return b.String()
	case records.EmptyNoMatches:
		b.WriteString(SubtleStyle.Render("No matching records found."))
		return b.String()
	}

	descWidth := 24
	for _, row := range snap.Rows {
		if w := lipgloss.Width(row.Description); w > descWidth {
			descWidth = w
		}
	}

	for _, col := range snap.Columns {
		title := col.Title
		if col.Active {
			if col.Order == records.Descending {
				title += " ↓"
			} else {
				title += " ↑"
			}
		}
		style := HeaderStyle
		if col.Active {
			style = ActiveHeaderStyle
		}
		b.WriteString(padCell(style.Render(title), columnWidth(col.Key, descWidth)))
		b.WriteString("  ")
	}
	b.WriteString(HeaderStyle.Render("Category"))
	b.WriteString("\n")

	for _, row := range snap.Rows {
		b.WriteString(padCell(styleSpans(row.Description, row.Spans), descWidth))
		b.WriteString("  ")
		b.WriteString(padCell(row.Date, dateColWidth))
		b.WriteString("  ")
		b.WriteString(padCell(FormatAmount(row.Amount, row.Type, settings), amountWidth))
		b.WriteString("  ")
		if row.Category != "" {
			b.WriteString(SubtleStyle.Render(row.Category))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + SubtleStyle.Render(fmt.Sprintf("%d of %d record(s)", snap.MatchedCount, snap.TotalCount)))
	return b.String()
}

// RenderCards renders the card projection, one block per record.
func RenderCards(snap records.Snapshot, settings model.CurrencySettings) string {
	blocks := make([]string, 0, len(snap.Cards))
	for _, card := range snap.Cards {
		content := styleSpans(card.Description, card.Spans) + "\n" +
			FormatAmount(card.Amount, card.Type, settings) + "\n" +
			SubtleStyle.Render(card.Details)
		blocks = append(blocks, BoxStyle.Render(content))
	}
	return strings.Join(blocks, "\n")
}

// FormatAmount renders a signed, converted, colored amount.
func FormatAmount(amount float64, txType model.TransactionType, settings model.CurrencySettings) string {
	formatted := currency.Format(amount, settings)
	if txType == model.Expense {
		return ExpenseStyle.Render("-" + formatted)
	}
	return IncomeStyle.Render("+" + formatted)
}

// RenderSummary renders the dashboard figures and the 7-day trend chart.
func RenderSummary(s dashboard.Summary, settings model.CurrencySettings) string {
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(fmt.Sprintf("%-16s %s\n", label, value))
	}

	line("Income", IncomeStyle.Render(currency.Format(s.TotalIncome, settings)))
	line("Expenses", ExpenseStyle.Render(currency.Format(s.TotalExpenses, settings)))
	line("Net balance", signedMoney(s.NetBalance, settings))
	line("Top category", s.TopCategory)

	if s.BudgetStatus != dashboard.BudgetHidden {
		b.WriteString("\n")
		line("Budget", currency.Format(s.Budget, settings))
		line("Remaining", signedMoney(s.BudgetRemaining, settings))
		switch s.BudgetStatus {
		case dashboard.BudgetOver:
			b.WriteString(FormatError(s.Note()) + "\n")
		case dashboard.BudgetNear:
			b.WriteString(FormatWarning(s.Note()) + "\n")
		default:
			b.WriteString(FormatSuccess(s.Note()) + "\n")
		}
	}

	b.WriteString("\n" + HeaderStyle.Render("Last 7 days") + "\n")
	for _, day := range s.Trend {
		bar := strings.Repeat("█", int(day.Scale*trendBarWidth))
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			SubtleStyle.Render(day.Date),
			BarStyle.Render(bar),
			currency.Format(day.Total, settings)))
	}

	return b.String()
}

func signedMoney(amount float64, settings model.CurrencySettings) string {
	if amount < 0 {
		return ExpenseStyle.Render("-" + currency.Format(-amount, settings))
	}
	return currency.Format(amount, settings)
}

// styleSpans applies the highlight style to the matched byte ranges.
func styleSpans(text string, spans [][2]int) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s[0]])
		b.WriteString(HighlightStyle.Render(text[s[0]:s[1]]))
		last = s[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func columnWidth(key records.SortKey, descWidth int) int {
	switch key {
	case records.SortByDescription:
		return descWidth
	case records.SortByDate:
		return dateColWidth
	default:
		return amountWidth
	}
}

// padCell pads by display width so styled cells still line up.
func padCell(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
