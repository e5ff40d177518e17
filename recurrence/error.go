package recurrence

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidAnchorType = errors.New("invalid anchor type")
	ErrInvalidRule       = errors.New("invalid rule")
	ErrNotAnOccurrence   = errors.New("not an occurrence")
)

// invalidAnchorTypeError returns an invalid anchor type error with a custom
// error message, which unwraps to ErrInvalidAnchorType.
func invalidAnchorTypeError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidAnchorType, message)
}

// invalidRuleError returns an invalid rule error with a custom error message,
// which unwraps to ErrInvalidRule.
func invalidRuleError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRule, message)
}

// notAnOccurrenceError returns a not an occurrence error with a custom error
// message, which unwraps to ErrNotAnOccurrence.
func notAnOccurrenceError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotAnOccurrence, message)
}
