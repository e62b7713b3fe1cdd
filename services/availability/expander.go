package availability

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"
)

// calendarDays yields every calendar day of the window in order, each at
// local midnight. The sequence is finite and can be ranged over repeatedly.
func calendarDays(w Window) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// slotTimes yields "HH:MM:SS" start times from startHour, stepping by
// stepMinutes. Only slots that fit entirely before endHour are emitted, so
// an empty window or a duration longer than the window yields nothing.
// Arithmetic is pure time-of-day (seconds from midnight); the window end is
// same-day by construction, so there is no day wrap to handle.
func slotTimes(startHour, endHour string, stepMinutes int) iter.Seq[string] {
	return func(yield func(string) bool) {
		start, err := parseClock(startHour)
		if err != nil {
			return
		}
		end, err := parseClock(endHour)
		if err != nil {
			return
		}
		if stepMinutes <= 0 {
			return
		}
		step := stepMinutes * 60
		for cursor := start; cursor+step <= end; cursor += step {
			if !yield(formatClock(cursor)) {
				return
			}
		}
	}
}

// parseClock converts "HH:MM" or "HH:MM:SS" to seconds from midnight.
func parseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}
	seconds := 0
	if len(parts) == 3 {
		seconds, err = strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, fmt.Errorf("invalid second in %q", clock)
		}
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// formatClock converts seconds from midnight to "HH:MM:SS".
func formatClock(secs int) string {
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}
