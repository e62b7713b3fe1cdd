package availability

import "mindwell/models"

// takenIndex is the reconciler's view of already-reserved slots: exact
// (therapist, date, hour) keys for conflict exclusion plus per-day counts
// for capacity accounting.
type takenIndex struct {
	keys   map[string]struct{}
	perDay map[string]int
}

func slotKey(therapistID, date, hour string) string {
	return therapistID + "|" + date + "|" + hour
}

func dayKey(therapistID, date string) string {
	return therapistID + "|" + date
}

// indexTaken builds the lookup structures from the TAKEN slots of a window.
func indexTaken(taken []models.TakenSlotRef) takenIndex {
	idx := takenIndex{
		keys:   make(map[string]struct{}, len(taken)),
		perDay: make(map[string]int),
	}
	for _, t := range taken {
		idx.keys[slotKey(t.TherapistID, t.Date, t.Hour)] = struct{}{}
		idx.perDay[dayKey(t.TherapistID, t.Date)]++
	}
	return idx
}

// generateSlots computes the AVAILABLE slots for one therapist's schedule
// across the window. It is a pure function of its inputs; both the single
// and the bulk entry points call it, so the two modes cannot drift apart.
//
// For each day whose weekday has a configured window: expand candidate start
// times, drop those already TAKEN, then truncate to the remaining capacity
// (MaxPerDay minus TAKEN count for the day; a zero MaxPerDay means
// unbounded). Truncation keeps the earliest times.
func generateSlots(schedule models.WeeklySchedule, w Window, taken takenIndex) []models.AvailabilitySlot {
	byWeekday := make(map[int]models.ScheduleDay, len(schedule.Days))
	for _, d := range schedule.Days {
		byWeekday[d.Weekday] = d
	}

	var slots []models.AvailabilitySlot
	for day := range calendarDays(w) {
		window, ok := byWeekday[int(day.Weekday())]
		if !ok {
			continue // therapist does not work this day
		}

		date := day.Format(dateLayout)
		takenForDay := taken.perDay[dayKey(schedule.TherapistID, date)]

		// A bounded day already at capacity needs no expansion at all.
		if schedule.MaxPerDay > 0 && takenForDay >= schedule.MaxPerDay {
			continue
		}

		var candidates []string
		for hour := range slotTimes(window.StartHour, window.EndHour, schedule.AppointmentDuration) {
			if _, reserved := taken.keys[slotKey(schedule.TherapistID, date, hour)]; reserved {
				continue
			}
			candidates = append(candidates, hour)
		}

		remaining := len(candidates)
		if schedule.MaxPerDay > 0 {
			remaining = max(schedule.MaxPerDay-takenForDay, 0)
		}
		if remaining < len(candidates) {
			candidates = candidates[:remaining]
		}

		for _, hour := range candidates {
			slots = append(slots, models.AvailabilitySlot{
				TherapistID: schedule.TherapistID,
				Date:        date,
				Hour:        hour,
				State:       models.SlotStateAvailable,
			})
		}
	}
	return slots
}
