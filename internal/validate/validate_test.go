package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		valid   bool
		message string
	}{
		{
			name:  "simple description",
			value: "coffee",
			valid: true,
		},
		{
			name:    "empty",
			value:   "",
			valid:   false,
			message: "Description is required",
		},
		{
			name:    "whitespace only",
			value:   "   ",
			valid:   false,
			message: "Description is required",
		},
		{
			name:    "leading space",
			value:   " coffee",
			valid:   false,
			message: "No leading/trailing spaces",
		},
		{
			name:    "trailing space",
			value:   "coffee ",
			valid:   false,
			message: "No leading/trailing spaces",
		},
		{
			name:    "duplicate word",
			value:   "coffee coffee",
			valid:   false,
			message: "Contains duplicate words",
		},
		{
			name:    "duplicate word different case",
			value:   "Coffee coffee",
			valid:   false,
			message: "Contains duplicate words",
		},
		{
			name:  "repeated word separated by punctuation",
			value: "coffee, coffee",
			valid: true,
		},
		{
			name:  "same word not adjacent",
			value: "coffee and more coffee",
			valid: true,
		},
		{
			name:  "multiple words",
			value: "lunch with the team",
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Description(tt.value)
			assert.Equal(t, tt.valid, got.Valid)
			if !tt.valid {
				assert.Equal(t, tt.message, got.Message)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "integer", value: "10", valid: true},
		{name: "one decimal", value: "10.5", valid: true},
		{name: "two decimals", value: "10.99", valid: true},
		{name: "three decimals", value: "10.999", valid: false},
		{name: "zero", value: "0", valid: false},
		{name: "zero with decimals", value: "0.00", valid: false},
		{name: "small positive", value: "0.01", valid: true},
		{name: "empty", value: "", valid: false},
		{name: "negative", value: "-5", valid: false},
		{name: "leading zero", value: "01", valid: false},
		{name: "not a number", value: "ten", valid: false},
		{name: "trailing dot", value: "10.", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Amount(tt.value).Valid)
		})
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		isExpense bool
		valid     bool
	}{
		{name: "income never requires a category", value: "", isExpense: false, valid: true},
		{name: "income with junk still valid", value: "123!!", isExpense: false, valid: true},
		{name: "expense requires a category", value: "", isExpense: true, valid: false},
		{name: "single word", value: "Food", isExpense: true, valid: true},
		{name: "two words", value: "Eating Out", isExpense: true, valid: true},
		{name: "hyphenated", value: "Self-Care", isExpense: true, valid: true},
		{name: "digits rejected", value: "Food2", isExpense: true, valid: false},
		{name: "double space rejected", value: "Eating  Out", isExpense: true, valid: false},
		{name: "trailing hyphen rejected", value: "Food-", isExpense: true, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Category(tt.value, tt.isExpense).Valid)
		})
	}
}

func TestDate(t *testing.T) {
	now := time.Date(2026, time.August, 29, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "today", value: "2026-08-29", valid: true},
		{name: "past", value: "2020-01-15", valid: true},
		{name: "tomorrow", value: "2026-08-30", valid: false},
		{name: "next year", value: "2027-01-01", valid: false},
		{name: "empty", value: "", valid: false},
		{name: "wrong layout", value: "29/08/2026", valid: false},
		{name: "month 13", value: "2026-13-01", valid: false},
		{name: "day 32", value: "2026-01-32", valid: false},
		{name: "day 00", value: "2026-01-00", valid: false},
		// The validator checks 01-31 for every month; this is known,
		// long-standing behavior.
		{name: "february 30 accepted", value: "2026-02-30", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, dateWithin(tt.value, now).Valid)
		})
	}
}

func TestDateMidnightBoundary(t *testing.T) {
	// A record dated today is fine even when "now" is just past midnight;
	// the comparison zeroes the time of day.
	now := time.Date(2026, time.August, 29, 0, 0, 1, 0, time.UTC)
	assert.True(t, dateWithin("2026-08-29", now).Valid)
	assert.False(t, dateWithin("2026-08-30", now).Valid)
}
