package ledger

import (
	"strings"

	"github.com/kamaro-labs/centime/internal/validate"
)

// FieldError is one field's validation failure.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors collects every failing field of a submission, in form
// order, so the caller can report them inline per field.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ByField returns the message for a field, or "".
func (e ValidationErrors) ByField(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (e *ValidationErrors) add(field string, result validate.Result) {
	if !result.Valid {
		*e = append(*e, FieldError{Field: field, Message: result.Message})
	}
}
