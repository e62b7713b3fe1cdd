package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrTherapistNotFound = errors.New("therapist profile not found")
	ErrScheduleNotFound  = errors.New("schedule not found or not owned by therapist")
)

// InvalidConfigurationError reports a malformed schedule or day window.
// Raised at configuration-write time so generation never sees bad input.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid schedule configuration: %s: %s", e.Field, e.Reason)
}

func invalidConfig(field, format string, args ...any) error {
	return &InvalidConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
