// Package validate holds the pure field validators for transaction input.
// Each validator maps a raw field value to a Result and has no side effects.
package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kamaro-labs/centime/internal/model"
)

// Result is the outcome of validating a single field.
type Result struct {
	Valid   bool
	Message string
}

func invalid(msg string) Result { return Result{Valid: false, Message: msg} }

func valid() Result { return Result{Valid: true} }

var (
	trimmedRe  = regexp.MustCompile(`^\S(?:[\s\S]*\S)?$`)
	wordRe     = regexp.MustCompile(`[0-9A-Za-z_]+`)
	amountRe   = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	categoryRe = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)
	dateRe     = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
)

// Description checks that a description is present, carries no leading or
// trailing whitespace, and contains no immediately repeated word.
func Description(value string) Result {
	if strings.TrimSpace(value) == "" {
		return invalid("Description is required")
	}
	if !trimmedRe.MatchString(value) {
		return invalid("No leading/trailing spaces")
	}
	if hasRepeatedWord(value) {
		return invalid("Contains duplicate words")
	}
	return valid()
}

// hasRepeatedWord reports whether two equal words (case-insensitive) appear
// separated by whitespace only. A word is a contiguous alphanumeric run.
func hasRepeatedWord(value string) bool {
	spans := wordRe.FindAllStringIndex(value, -1)
	for i := 1; i < len(spans); i++ {
		gap := value[spans[i-1][1]:spans[i][0]]
		if gap == "" || strings.TrimSpace(gap) != "" {
			continue
		}
		prev := value[spans[i-1][0]:spans[i-1][1]]
		curr := value[spans[i][0]:spans[i][1]]
		if strings.EqualFold(prev, curr) {
			return true
		}
	}
	return false
}

// Amount checks that an amount is a positive number with at most two
// fractional digits. The value arrives as the raw input string.
func Amount(value string) Result {
	if value == "" {
		return invalid("Amount is required")
	}
	if !amountRe.MatchString(value) {
		return invalid("Invalid number format")
	}
	d, err := decimal.NewFromString(value)
	if err != nil || d.Sign() <= 0 {
		return invalid("Amount must be > 0")
	}
	return valid()
}

// Category checks the category field. Income transactions never require a
// category; expenses require one made of letter runs joined by single
// spaces or hyphens.
func Category(value string, isExpense bool) Result {
	if !isExpense {
		return valid()
	}
	if value == "" {
		return invalid("Category is required for expenses")
	}
	if !categoryRe.MatchString(value) {
		return invalid("Invalid category format")
	}
	return valid()
}

// Date checks that a date is in YYYY-MM-DD form and not in the future.
// The day bound is 01-31 for every month, so dates like 2024-02-30 pass;
// that laxity is long-standing observed behavior and is kept as is.
func Date(value string) Result {
	return dateWithin(value, time.Now())
}

func dateWithin(value string, now time.Time) Result {
	if value == "" {
		return invalid("Date is required")
	}
	if !dateRe.MatchString(value) {
		return invalid("Must be in YYYY-MM-DD format")
	}
	// Compare calendar dates with time-of-day zeroed; the ISO form makes
	// that a plain string comparison.
	if value > now.Format(model.DateFormat) {
		return invalid("Date cannot be in the future")
	}
	return valid()
}
