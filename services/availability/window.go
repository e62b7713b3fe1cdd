package availability

import "time"

const dateLayout = "2006-01-02"

// Window is an inclusive range of calendar days, both bounds at local midnight.
type Window struct {
	Start time.Time
	End   time.Time
}

// StartDate returns the first day as a "2006-01-02" string.
func (w Window) StartDate() string { return w.Start.Format(dateLayout) }

// EndDate returns the last day as a "2006-01-02" string.
func (w Window) EndDate() string { return w.End.Format(dateLayout) }

// String renders the window for logs.
func (w Window) String() string { return w.StartDate() + ".." + w.EndDate() }

// NextMonthWindow computes the regeneration target: the first through last
// calendar day of the month following ref's month. Only ref's calendar date
// matters; the time of day never changes the result.
func NextMonthWindow(ref time.Time) Window {
	year, month, _ := ref.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location()).AddDate(0, 1, 0)
	end := start.AddDate(0, 1, -1)
	return Window{Start: start, End: end}
}
