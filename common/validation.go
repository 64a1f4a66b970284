package common

import (
	"math"
	"strings"
)

// RequireNotBlank checks that a field has non-whitespace content.
func RequireNotBlank(field, errMsg string) *CommandError {
	if strings.TrimSpace(field) == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequirePositive checks that a value is a finite number greater than zero.
func RequirePositive(value float64, errMsg string) *CommandError {
	if !(value > 0) || math.IsInf(value, 1) {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// FirstError returns the first non-nil CommandError as an error, or an
// untyped nil.
func FirstError(errs ...*CommandError) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
