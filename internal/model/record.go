// Package model defines the domain types shared across the application.
package model

import "time"

// DateFormat is the calendar date layout used everywhere a Record date
// appears: storage, display, and sorting all operate on this ISO form.
const DateFormat = "2006-01-02"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// Income is money received.
	Income TransactionType = "income"
	// Expense is money spent.
	Expense TransactionType = "expense"
)

// IsValid reports whether the type is one of the two known values.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Record represents a single income or expense transaction. Amounts are
// stored in the reference currency; display conversion happens at render
// time. Category is set only for expenses.
type Record struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Date        string          `json:"date"`
	Type        TransactionType `json:"type"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// IsExpense reports whether the record is an expense.
func (r Record) IsExpense() bool {
	return r.Type == Expense
}

// CloneRecords returns an independent copy of a record slice. Consumers of
// broadcast payloads receive copies so the ledger's list stays the only
// writable one.
func CloneRecords(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
