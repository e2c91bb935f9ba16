package storage

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/kamaro-labs/centime/internal/currency"
	"github.com/kamaro-labs/centime/internal/model"
)

// LoadRecords returns the persisted record list, or an empty list when the
// document is absent or unreadable.
func (s *Store) LoadRecords() []model.Record {
	value, ok := s.getDocument(recordsKey)
	if !ok {
		return []model.Record{}
	}
	var records []model.Record
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		slog.Error("failed to decode records document", "error", err)
		return []model.Record{}
	}
	return records
}

// SaveRecords persists the full record list as one snapshot.
func (s *Store) SaveRecords(records []model.Record) {
	if records == nil {
		records = []model.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		slog.Error("failed to encode records document", "error", err)
		return
	}
	s.putDocument(recordsKey, string(data))
}

// LoadBudget returns the persisted budget, or 0 ("unset") when absent or
// unreadable. The budget document is a plain decimal string.
func (s *Store) LoadBudget() float64 {
	value, ok := s.getDocument(budgetKey)
	if !ok {
		return 0
	}
	budget, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Error("failed to parse budget document", "value", value, "error", err)
		return 0
	}
	return budget
}

// SaveBudget persists the budget as a decimal string.
func (s *Store) SaveBudget(budget float64) {
	s.putDocument(budgetKey, strconv.FormatFloat(budget, 'f', -1, 64))
}

// LoadCurrency returns the persisted currency settings merged over the
// defaults, so missing keys in a partial document never cause failures.
// Absent or unreadable documents yield the defaults.
func (s *Store) LoadCurrency() model.CurrencySettings {
	defaults := model.DefaultCurrencySettings()
	value, ok := s.getDocument(currencyKey)
	if !ok {
		return defaults
	}
	var loaded model.CurrencySettings
	if err := json.Unmarshal([]byte(value), &loaded); err != nil {
		slog.Error("failed to decode currency document", "error", err)
		return defaults
	}
	return currency.Merge(loaded, defaults)
}

// SaveCurrency persists the currency settings document.
func (s *Store) SaveCurrency(settings model.CurrencySettings) {
	data, err := json.Marshal(settings)
	if err != nil {
		slog.Error("failed to encode currency document", "error", err)
		return
	}
	s.putDocument(currencyKey, string(data))
}
