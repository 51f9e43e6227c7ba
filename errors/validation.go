package errors

import (
	// Go Internal Packages
	"fmt"
	"strings"
)

// ValidationErrors collects per-field validation failures so a caller can
// report all of them in one error instead of failing field by field.
type ValidationErrors struct {
	fields []fieldError
}

type fieldError struct {
	field  string
	reason string
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{}
}

func (ve *ValidationErrors) Add(field, reason string) {
	ve.fields = append(ve.fields, fieldError{field: field, reason: reason})
}

func (ve *ValidationErrors) Empty() bool {
	return len(ve.fields) == 0
}

// Err returns nil when no failures were added, otherwise a single error
// listing every offending field.
func (ve *ValidationErrors) Err() error {
	if ve.Empty() {
		return nil
	}
	parts := make([]string, len(ve.fields))
	for i, fe := range ve.fields {
		parts[i] = fmt.Sprintf("%s: %s", fe.field, fe.reason)
	}
	return E(Invalid, strings.Join(parts, "; "))
}
