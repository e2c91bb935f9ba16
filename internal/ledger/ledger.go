// Package ledger owns the canonical in-memory record list and every
// mutation of it. All writes flow through here: each one validates, updates
// the list, persists a full snapshot, and broadcasts the new list. Nothing
// else in the application mutates records.
package ledger

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kamaro-labs/centime/internal/bus"
	"github.com/kamaro-labs/centime/internal/model"
	"github.com/kamaro-labs/centime/internal/validate"
)

// Gateway is the slice of the document store the ledger needs.
type Gateway interface {
	LoadRecords() []model.Record
	SaveRecords(records []model.Record)
}

// Input is the raw form input for creating or updating a record. Amount
// arrives as the user typed it; validation decides whether it parses.
type Input struct {
	Description string
	Amount      string
	Category    string
	Date        string
	Type        model.TransactionType
}

// Ledger holds the sole writable copy of the record list.
type Ledger struct {
	gateway Gateway
	bus     *bus.Bus
	records []model.Record
	now     func() time.Time
	newID   func() string
}

// New loads the persisted record list and returns a ledger over it.
func New(gateway Gateway, b *bus.Bus) *Ledger {
	return &Ledger{
		gateway: gateway,
		bus:     b,
		records: gateway.LoadRecords(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Records returns a copy of the current record list.
func (l *Ledger) Records() []model.Record {
	return model.CloneRecords(l.records)
}

// Create validates the input and appends a new record. On any validation
// failure nothing is mutated and every failing field's message is reported.
func (l *Ledger) Create(input Input) (model.Record, error) {
	if err := validateInput(input); err != nil {
		return model.Record{}, err
	}

	now := l.now()
	record := model.Record{
		ID:          l.newID(),
		Description: strings.TrimSpace(input.Description),
		Amount:      mustParseAmount(input.Amount),
		Category:    categoryFor(input),
		Date:        input.Date,
		Type:        input.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	l.records = append(l.records, record)
	l.persistAndPublish()
	return record, nil
}

// Update validates the input and replaces the record with the given id in
// place, preserving its CreatedAt and refreshing UpdatedAt. An unknown id
// is silently ignored.
func (l *Ledger) Update(id string, input Input) (model.Record, error) {
	if err := validateInput(input); err != nil {
		return model.Record{}, err
	}

	for i, r := range l.records {
		if r.ID != id {
			continue
		}
		record := model.Record{
			ID:          id,
			Description: strings.TrimSpace(input.Description),
			Amount:      mustParseAmount(input.Amount),
			Category:    categoryFor(input),
			Date:        input.Date,
			Type:        input.Type,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   l.now(),
		}
		l.records[i] = record
		l.persistAndPublish()
		return record, nil
	}
	return model.Record{}, nil
}

// Delete removes the record with the given id; absent ids are a no-op on
// the list, but the snapshot is still written and broadcast.
func (l *Ledger) Delete(id string) {
	kept := l.records[:0]
	for _, r := range l.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	l.records = kept
	l.persistAndPublish()
}

// Get returns the record with the given id, if present.
func (l *Ledger) Get(id string) (model.Record, bool) {
	for _, r := range l.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.Record{}, false
}

// ReplaceAll substitutes the whole list, used by import. Per-record
// validation is skipped; the importer does its structural sanity check
// before calling this.
func (l *Ledger) ReplaceAll(records []model.Record) {
	l.records = model.CloneRecords(records)
	if l.records == nil {
		l.records = []model.Record{}
	}
	l.persistAndPublish()
}

func (l *Ledger) persistAndPublish() {
	l.gateway.SaveRecords(l.records)
	if l.bus != nil {
		l.bus.PublishRecords(l.records)
	}
}

func categoryFor(input Input) string {
	if input.Type == model.Expense {
		return input.Category
	}
	return ""
}

// mustParseAmount runs after validation has accepted the amount string.
func mustParseAmount(value string) float64 {
	amount, _ := strconv.ParseFloat(value, 64)
	return amount
}

func validateInput(input Input) error {
	var errs ValidationErrors
	errs.add("description", validate.Description(input.Description))
	errs.add("amount", validate.Amount(input.Amount))
	errs.add("category", validate.Category(input.Category, input.Type == model.Expense))
	errs.add("date", validate.Date(input.Date))
	if !input.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "Type must be income or expense"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
