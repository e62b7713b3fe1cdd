package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)

// NormalizeClock validates a wall-clock time in "HH:MM" or "HH:MM:SS" form
// and returns it padded to "HH:MM:SS". Normalized values compare correctly
// as plain strings.
func NormalizeClock(clock string) (string, error) {
	if !clockPattern.MatchString(clock) {
		return "", fmt.Errorf("invalid time format %q (expected HH:MM or HH:MM:SS)", clock)
	}

	parts := strings.Split(clock, ":")
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	seconds := 0
	if len(parts) == 3 {
		seconds, _ = strconv.Atoi(parts[2])
	}

	if hours > 23 || minutes > 59 || seconds > 59 {
		return "", fmt.Errorf("invalid time %q", clock)
	}

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds), nil
}
