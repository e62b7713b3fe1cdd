package availability

import "errors"

// Sentinel errors surfaced by single-therapist regeneration. Store failures
// are wrapped and returned as-is for the caller (trigger) to retry.
var (
	ErrScheduleNotFound = errors.New("therapist schedule not found")
	ErrNoScheduleDays   = errors.New("no schedule days configured")
)
