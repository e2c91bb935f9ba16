package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamaro-labs/centime/internal/ledger"
	"github.com/kamaro-labs/centime/internal/model"
)

const (
	fieldDescription = iota
	fieldAmount
	fieldCategory
	fieldDate
	fieldCount
)

var fieldNames = [fieldCount]string{"description", "amount", "category", "date"}

// form is the add/edit section. An empty editID means a new record; a set
// one means an edit session for that record (at most one at a time).
type form struct {
	inputs  [fieldCount]textinput.Model
	field   int
	txType  model.TransactionType
	editID  string
	errors  ledger.ValidationErrors
	active  bool
	message string
}

func newForm() form {
	f := form{txType: model.Expense}

	labels := [fieldCount]string{"what was it for?", "0.00", "e.g. Food", "YYYY-MM-DD"}
	for i := range f.inputs {
		f.inputs[i] = textinput.New()
		f.inputs[i].Placeholder = labels[i]
		f.inputs[i].CharLimit = 80
	}
	f.inputs[fieldAmount].CharLimit = 12
	f.inputs[fieldDate].CharLimit = 10
	f.reset()
	return f
}

// reset clears the form back to a fresh entry with today's date.
func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.inputs[fieldDate].SetValue(time.Now().Format(model.DateFormat))
	f.txType = model.Expense
	f.editID = ""
	f.errors = nil
	f.field = fieldDescription
	f.message = ""
}

// load starts an edit session for a record.
func (f *form) load(r model.Record) {
	f.reset()
	f.editID = r.ID
	f.inputs[fieldDescription].SetValue(r.Description)
	f.inputs[fieldAmount].SetValue(strconv.FormatFloat(r.Amount, 'f', -1, 64))
	f.inputs[fieldCategory].SetValue(r.Category)
	f.inputs[fieldDate].SetValue(r.Date)
	f.txType = r.Type
}

func (f *form) focus() {
	f.active = true
	f.setFocus(f.field)
}

func (f *form) blur() {
	f.active = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *form) focused() bool { return f.active }

func (f *form) setFocus(field int) {
	f.field = field
	for i := range f.inputs {
		if i == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *form) input() ledger.Input {
	return ledger.Input{
		Description: f.inputs[fieldDescription].Value(),
		Amount:      f.inputs[fieldAmount].Value(),
		Category:    f.inputs[fieldCategory].Value(),
		Date:        f.inputs[fieldDate].Value(),
		Type:        f.txType,
	}
}

// handleFormKey drives the form while it has focus.
func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.form

	switch msg.String() {
	case "esc":
		f.reset()
		f.blur()
		m.section = SectionRecords
		return m, nil
	case "tab", "down":
		f.setFocus((f.field + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		f.setFocus((f.field + fieldCount - 1) % fieldCount)
		return m, nil
	case "ctrl+t":
		if f.txType == model.Expense {
			f.txType = model.Income
		} else {
			f.txType = model.Expense
		}
		return m, nil
	case "enter":
		m.submitForm()
		return m, nil
	}

	var cmd tea.Cmd
	f.inputs[f.field], cmd = f.inputs[f.field].Update(msg)
	return m, cmd
}

func (m *Model) submitForm() {
	f := &m.form

	var err error
	if f.editID != "" {
		_, err = m.ledger.Update(f.editID, f.input())
	} else {
		_, err = m.ledger.Create(f.input())
	}

	if err != nil {
		if errs, ok := err.(ledger.ValidationErrors); ok {
			f.errors = errs
			return
		}
		f.message = err.Error()
		return
	}

	if f.editID != "" {
		f.message = "Transaction updated successfully!"
	} else {
		f.message = "Transaction added successfully!"
	}
	updated := f.message
	f.reset()
	f.message = updated
	m.refresh()
}
