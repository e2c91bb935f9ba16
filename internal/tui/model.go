// Package tui is the interactive single-page interface: one program with a
// records section, an add/edit form, a dashboard, and settings. It owns no
// data; every mutation goes through the ledger and every repaint re-derives
// its view from the latest broadcast.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamaro-labs/centime/internal/bus"
	"github.com/kamaro-labs/centime/internal/dashboard"
	"github.com/kamaro-labs/centime/internal/ledger"
	"github.com/kamaro-labs/centime/internal/model"
	"github.com/kamaro-labs/centime/internal/records"
)

// Section is one of the four pages.
type Section int

const (
	// SectionRecords shows the searchable, sortable record list.
	SectionRecords Section = iota
	// SectionForm shows the add/edit form.
	SectionForm
	// SectionDashboard shows the aggregate statistics.
	SectionDashboard
	// SectionSettings shows budget and currency preferences.
	SectionSettings
)

var sectionTitles = []string{"Records", "Add / Edit", "Dashboard", "Settings"}

// Gateway is the slice of the store the TUI's settings page needs.
type Gateway interface {
	LoadBudget() float64
	SaveBudget(budget float64)
	LoadCurrency() model.CurrencySettings
	SaveCurrency(settings model.CurrencySettings)
}

// Model is the bubbletea model for the whole application.
type Model struct {
	ledger *ledger.Ledger
	bus    *bus.Bus
	store  Gateway
	dash   *dashboard.Dashboard

	section Section
	width   int
	height  int

	// records section
	view      *records.View
	snapshot  records.Snapshot
	cursor    int
	searching bool
	search    textinput.Model
	latest    []model.Record

	// add/edit form
	form form

	// settings section
	budgetInput   textinput.Model
	editingBudget bool
	settings      model.CurrencySettings
	statusLine    string
}

// New builds the TUI over an already wired ledger, bus, store, and
// dashboard.
func New(led *ledger.Ledger, b *bus.Bus, store Gateway, dash *dashboard.Dashboard) *Model {
	search := textinput.New()
	search.Placeholder = "regex search…"
	search.Prompt = "/ "
	search.CharLimit = 80

	budgetInput := textinput.New()
	budgetInput.Placeholder = "monthly budget"
	budgetInput.CharLimit = 12

	m := &Model{
		ledger:      led,
		bus:         b,
		store:       store,
		dash:        dash,
		view:        records.NewView(),
		search:      search,
		form:        newForm(),
		budgetInput: budgetInput,
		settings:    store.LoadCurrency(),
		latest:      led.Records(),
	}

	// Repaints pick up the broadcast payloads; the subscription keeps the
	// latest list around between renders.
	b.SubscribeRecords(func(updated []model.Record) { m.latest = updated })
	b.SubscribeCurrency(func(updated model.CurrencySettings) { m.settings = updated })

	m.snapshot = m.view.Render(m.latest)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete confirmation swallows every key until resolved.
	if _, pending := m.view.PendingDelete(); pending {
		switch msg.String() {
		case "y", "enter":
			if id, ok := m.view.ConfirmDelete(); ok {
				m.ledger.Delete(id)
				m.statusLine = "Record deleted"
			}
		default:
			m.view.CancelDelete()
			m.statusLine = "Delete cancelled"
		}
		m.refresh()
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.section == SectionForm && m.form.focused() {
		return m.handleFormKey(msg)
	}
	if m.editingBudget {
		return m.handleBudgetKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1":
		m.section = SectionRecords
	case "2":
		m.section = SectionForm
		m.form.focus()
	case "3":
		m.section = SectionDashboard
	case "4":
		m.section = SectionSettings
	case "tab":
		m.section = (m.section + 1) % 4
		if m.section == SectionForm {
			m.form.focus()
		}
	}

	switch m.section {
	case SectionRecords:
		m.handleRecordsKey(msg)
	case SectionSettings:
		m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m *Model) handleRecordsKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "/":
		m.searching = true
		m.search.Focus()
	case "c":
		term, caseInsensitive := m.view.Search()
		m.view.SetSearch(term, !caseInsensitive)
		m.refresh()
	case "s":
		m.view.ToggleSort(nextSortKey(m.view.Sort().Key))
		m.refresh()
	case "o":
		m.view.ToggleSort(m.view.Sort().Key)
		m.refresh()
	case "j", "down":
		if m.cursor < len(m.snapshot.Rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "e":
		if row, ok := m.selectedRow(); ok {
			if record, found := m.ledger.Get(row.ID); found {
				// Edit hand-off: pre-fill the form and switch sections.
				m.form.load(record)
				m.section = SectionForm
				m.form.focus()
			}
		}
	case "d":
		if row, ok := m.selectedRow(); ok {
			m.view.RequestDelete(row.ID)
		}
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	_, caseInsensitive := m.view.Search()
	m.view.SetSearch(m.search.Value(), caseInsensitive)
	m.refresh()
	return m, cmd
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "b":
		m.editingBudget = true
		if budget := m.store.LoadBudget(); budget > 0 {
			m.budgetInput.SetValue(strconv.FormatFloat(budget, 'f', 2, 64))
		}
		m.budgetInput.Focus()
	case "c":
		m.cycleCurrency()
	}
}

func (m *Model) handleBudgetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editingBudget = false
		m.budgetInput.Blur()
		budget, err := strconv.ParseFloat(m.budgetInput.Value(), 64)
		if err != nil || budget < 0 {
			m.statusLine = "Please enter a valid number."
			return m, nil
		}
		m.store.SaveBudget(budget)
		m.bus.PublishBudget(budget)
		m.statusLine = "Budget saved!"
		return m, nil
	case "esc":
		m.editingBudget = false
		m.budgetInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.budgetInput, cmd = m.budgetInput.Update(msg)
	return m, cmd
}

func (m *Model) cycleCurrency() {
	codes := model.SupportedCurrencies()
	next := codes[0]
	for i, code := range codes {
		if code == m.settings.Active {
			next = codes[(i+1)%len(codes)]
			break
		}
	}
	m.settings.Active = next
	m.store.SaveCurrency(m.settings)
	m.bus.PublishCurrency(m.settings)
	m.statusLine = "Display currency: " + next
}

func (m *Model) selectedRow() (records.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Rows) {
		return records.Row{}, false
	}
	return m.snapshot.Rows[m.cursor], true
}

// refresh re-derives the snapshot from the latest record list and keeps
// the cursor in range.
func (m *Model) refresh() {
	m.snapshot = m.view.Render(m.latest)
	if m.cursor >= len(m.snapshot.Rows) {
		m.cursor = len(m.snapshot.Rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func nextSortKey(key records.SortKey) records.SortKey {
	switch key {
	case records.SortByDate:
		return records.SortByAmount
	case records.SortByAmount:
		return records.SortByDescription
	default:
		return records.SortByDate
	}
}
