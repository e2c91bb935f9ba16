package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kamaro-labs/centime/internal/cli"
	"github.com/kamaro-labs/centime/internal/currency"
	"github.com/kamaro-labs/centime/internal/model"
	"github.com/kamaro-labs/centime/internal/records"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(cli.SubtleColor)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(cli.PrimaryColor).
			Underline(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(cli.PrimaryColor).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(cli.ErrorColor).
			Padding(1, 3)

	labelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(cli.SubtleColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			MarginTop(1)
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs() + "\n\n")

	switch m.section {
	case SectionRecords:
		b.WriteString(m.renderRecords())
	case SectionForm:
		b.WriteString(m.renderForm())
	case SectionDashboard:
		b.WriteString(cli.RenderSummary(m.dash.Summary(), m.settings))
	case SectionSettings:
		b.WriteString(m.renderSettings())
	}

	if m.statusLine != "" {
		b.WriteString("\n" + cli.SubtleStyle.Render(m.statusLine))
	}
	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m *Model) renderTabs() string {
	tabs := make([]string, len(sectionTitles))
	for i, title := range sectionTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if Section(i) == m.section {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderRecords() string {
	var b strings.Builder

	term, caseInsensitive := m.view.Search()
	if m.searching {
		b.WriteString(m.search.View() + "\n")
	} else if term != "" {
		flag := "i"
		if !caseInsensitive {
			flag = ""
		}
		b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("search: /%s/%s", term, flag)) + "\n")
	}

	if m.snapshot.PatternError != "" {
		b.WriteString(cli.FormatError(m.snapshot.PatternError) + "\n")
	}

	switch m.snapshot.Empty {
	case records.EmptyNoRecords:
		b.WriteString(cli.SubtleStyle.Render("No transactions yet. Add one to get started!"))
		return b.String()
	case records.EmptyNoMatches:
		b.WriteString(cli.SubtleStyle.Render("No matching records found."))
		return b.String()
	}

	b.WriteString(m.renderTable())

	if id, pending := m.view.PendingDelete(); pending {
		description := id
		if record, ok := m.ledger.Get(id); ok {
			description = record.Description
		}
		b.WriteString("\n" + modalStyle.Render(
			fmt.Sprintf("Delete %q?\n\n[y] delete   [any other key] cancel", description)))
	}

	return b.String()
}

func (m *Model) renderTable() string {
	var b strings.Builder

	for _, col := range m.snapshot.Columns {
		title := col.Title
		if col.Active {
			if col.Order == records.Descending {
				title += " ↓"
			} else {
				title += " ↑"
			}
			b.WriteString(cli.ActiveHeaderStyle.Render(title))
		} else {
			b.WriteString(cli.HeaderStyle.Render(title))
		}
		b.WriteString("   ")
	}
	b.WriteString("\n")

	for i, row := range m.snapshot.Rows {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s  %s  %s",
			marker,
			highlightRow(row),
			cli.SubtleStyle.Render(row.Date),
			cli.FormatAmount(row.Amount, row.Type, m.settings))
		if row.Category != "" {
			line += "  " + cli.SubtleStyle.Render(row.Category)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(cli.SubtleStyle.Render(
		fmt.Sprintf("%d of %d record(s)", m.snapshot.MatchedCount, m.snapshot.TotalCount)))
	return b.String()
}

func highlightRow(row records.Row) string {
	if len(row.Spans) == 0 {
		return row.Description
	}
	var b strings.Builder
	last := 0
	for _, s := range row.Spans {
		b.WriteString(row.Description[last:s[0]])
		b.WriteString(cli.HighlightStyle.Render(row.Description[s[0]:s[1]]))
		last = s[1]
	}
	b.WriteString(row.Description[last:])
	return b.String()
}

func (m *Model) renderForm() string {
	var b strings.Builder
	f := &m.form

	if f.editID != "" {
		b.WriteString(cli.FormatTitle("Edit transaction") + "\n")
	} else {
		b.WriteString(cli.FormatTitle("Add transaction") + "\n")
	}

	labels := [fieldCount]string{"Description", "Amount", "Category", "Date"}
	b.WriteString(labelStyle.Render("Type") + f.renderType() + "\n")
	for i := range f.inputs {
		b.WriteString(labelStyle.Render(labels[i]) + f.inputs[i].View() + "\n")
		if msg := f.errors.ByField(fieldNames[i]); msg != "" {
			b.WriteString(labelStyle.Render("") + cli.ErrorStyle.Render(msg) + "\n")
		}
	}

	if f.message != "" {
		b.WriteString("\n" + cli.FormatSuccess(f.message))
	}
	return b.String()
}

func (f *form) renderType() string {
	income, expense := " income ", " expense "
	if f.txType == model.Income {
		return cli.IncomeStyle.Render("["+income+"]") + expense
	}
	return income + cli.ExpenseStyle.Render("["+expense+"]")
}

func (m *Model) renderSettings() string {
	var b strings.Builder

	b.WriteString(cli.FormatTitle("Settings") + "\n")

	budget := m.store.LoadBudget()
	if m.editingBudget {
		b.WriteString(labelStyle.Render("Budget") + m.budgetInput.View() + "\n")
	} else if budget > 0 {
		b.WriteString(labelStyle.Render("Budget") + currency.Format(budget, m.settings) + "\n")
	} else {
		b.WriteString(labelStyle.Render("Budget") + cli.SubtleStyle.Render("not set") + "\n")
	}

	b.WriteString(labelStyle.Render("Currency") +
		fmt.Sprintf("%s (%s)", m.settings.Active, m.settings.Symbols[m.settings.Active]) + "\n")

	return b.String()
}

func (m *Model) renderHelp() string {
	switch m.section {
	case SectionRecords:
		return helpStyle.Render("/ search · c case · s sort column · o order · j/k move · e edit · d delete · 1-4 sections · q quit")
	case SectionForm:
		return helpStyle.Render("tab next field · ctrl+t type · enter save · esc back")
	case SectionSettings:
		return helpStyle.Render("b set budget · c cycle currency · 1-4 sections · q quit")
	default:
		return helpStyle.Render("1-4 sections · q quit")
	}
}
