package availability

import (
	"slices"
	"testing"
	"time"

	"mindwell/models"
)

// June 2025: the 1st is a Sunday, Mondays fall on the 2nd, 9th, 16th, 23rd
// and 30th.
var juneWindow = Window{Start: date(2025, time.June, 1), End: date(2025, time.June, 30)}

const monday = 1

func mondaySchedule(maxPerDay int) models.WeeklySchedule {
	return models.WeeklySchedule{
		ID:                  "sched-1",
		TherapistID:         "ther-1",
		AppointmentDuration: 30,
		MaxPerDay:           maxPerDay,
		Days: []models.ScheduleDay{
			{Weekday: monday, StartHour: "09:00:00", EndHour: "11:00:00"},
		},
	}
}

func hoursOn(slots []models.AvailabilitySlot, date string) []string {
	var hours []string
	for _, s := range slots {
		if s.Date == date {
			hours = append(hours, s.Hour)
		}
	}
	return hours
}

func TestGenerateSlotsTruncatesToCapacity(t *testing.T) {
	slots := generateSlots(mondaySchedule(3), juneWindow, indexTaken(nil))

	mondays := []string{"2025-06-02", "2025-06-09", "2025-06-16", "2025-06-23", "2025-06-30"}
	if len(slots) != 3*len(mondays) {
		t.Fatalf("got %d slots, want %d", len(slots), 3*len(mondays))
	}

	want := []string{"09:00:00", "09:30:00", "10:00:00"}
	for _, day := range mondays {
		if got := hoursOn(slots, day); !slices.Equal(got, want) {
			t.Errorf("day %s: got %v, want %v", day, got, want)
		}
	}

	for _, s := range slots {
		if s.State != models.SlotStateAvailable {
			t.Fatalf("slot %v not AVAILABLE", s)
		}
		if s.TherapistID != "ther-1" {
			t.Fatalf("slot %v has wrong therapist", s)
		}
	}
}

func TestGenerateSlotsExcludesTakenAndKeepsCapacity(t *testing.T) {
	taken := indexTaken([]models.TakenSlotRef{
		{TherapistID: "ther-1", Date: "2025-06-09", Hour: "09:30:00"},
	})

	slots := generateSlots(mondaySchedule(3), juneWindow, taken)

	// The conflicted Monday loses 09:30 and yields one fewer AVAILABLE slot,
	// keeping AVAILABLE+TAKEN at the cap of 3.
	if got, want := hoursOn(slots, "2025-06-09"), []string{"09:00:00", "10:00:00"}; !slices.Equal(got, want) {
		t.Errorf("conflicted Monday: got %v, want %v", got, want)
	}
	// Other Mondays are unaffected.
	if got, want := hoursOn(slots, "2025-06-02"), []string{"09:00:00", "09:30:00", "10:00:00"}; !slices.Equal(got, want) {
		t.Errorf("clean Monday: got %v, want %v", got, want)
	}
}

func TestGenerateSlotsSkipsDayAtFullCapacity(t *testing.T) {
	taken := indexTaken([]models.TakenSlotRef{
		{TherapistID: "ther-1", Date: "2025-06-02", Hour: "09:00:00"},
	})

	slots := generateSlots(mondaySchedule(1), juneWindow, taken)

	if got := hoursOn(slots, "2025-06-02"); got != nil {
		t.Errorf("day at capacity produced slots: %v", got)
	}
	// Mondays without a reservation still get their single slot.
	if got, want := hoursOn(slots, "2025-06-09"), []string{"09:00:00"}; !slices.Equal(got, want) {
		t.Errorf("unreserved Monday: got %v, want %v", got, want)
	}
}

func TestGenerateSlotsUnboundedWhenMaxPerDayUnset(t *testing.T) {
	slots := generateSlots(mondaySchedule(0), juneWindow, indexTaken(nil))

	want := []string{"09:00:00", "09:30:00", "10:00:00", "10:30:00"}
	if got := hoursOn(slots, "2025-06-02"); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGenerateSlotsSkipsUnconfiguredWeekdays(t *testing.T) {
	slots := generateSlots(mondaySchedule(3), juneWindow, indexTaken(nil))

	for _, s := range slots {
		day, err := time.ParseInLocation(dateLayout, s.Date, time.Local)
		if err != nil {
			t.Fatalf("bad date %q: %v", s.Date, err)
		}
		if day.Weekday() != time.Monday {
			t.Errorf("slot generated on %s (%s), schedule only covers Monday", s.Date, day.Weekday())
		}
	}
}

func TestGenerateSlotsIgnoresOtherTherapistsReservations(t *testing.T) {
	taken := indexTaken([]models.TakenSlotRef{
		{TherapistID: "ther-2", Date: "2025-06-02", Hour: "09:00:00"},
	})

	slots := generateSlots(mondaySchedule(3), juneWindow, taken)

	if got, want := hoursOn(slots, "2025-06-02"), []string{"09:00:00", "09:30:00", "10:00:00"}; !slices.Equal(got, want) {
		t.Errorf("another therapist's reservation leaked in: got %v, want %v", got, want)
	}
}

func TestGenerateSlotsIsDeterministic(t *testing.T) {
	taken := indexTaken([]models.TakenSlotRef{
		{TherapistID: "ther-1", Date: "2025-06-16", Hour: "10:00:00"},
	})

	first := generateSlots(mondaySchedule(3), juneWindow, taken)
	second := generateSlots(mondaySchedule(3), juneWindow, taken)

	if !slices.Equal(first, second) {
		t.Errorf("two runs over identical input disagree")
	}
}
