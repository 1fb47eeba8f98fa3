package prereg

import (
	"fmt"
	"strings"
)

// Validate checks that name, phone and email are non-empty and the privacy
// agreement is accepted. Values are not trimmed: whitespace counts as input.
// The returned error wraps ErrValidation.
func Validate(d FormData) error {
	missing := MissingFields(d)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, ", "))
}

// MissingFields lists which requirements d fails, in form order.
func MissingFields(d FormData) []string {
	var missing []string
	if d.Name == "" {
		missing = append(missing, string(FieldName))
	}
	if d.Phone == "" {
		missing = append(missing, string(FieldPhone))
	}
	if d.Email == "" {
		missing = append(missing, string(FieldEmail))
	}
	if !d.AgreementAccepted {
		missing = append(missing, "agreement")
	}
	return missing
}
