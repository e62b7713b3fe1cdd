package models

// Schedule duration/capacity bounds enforced on writes.
const (
	MinAppointmentDuration = 5
	MaxAppointmentDuration = 240
	MinAppointmentsPerDay  = 1
	MaxAppointmentsPerDay  = 50

	DefaultAppointmentDuration = 30
	DefaultMaxPerDay           = 5
)

// WeeklySchedule is a therapist's recurring weekly working configuration.
// There is at most one schedule per therapist.
type WeeklySchedule struct {
	ID                  string        `bson:"id" json:"id"`
	TherapistID         string        `bson:"therapistId" json:"therapistId"`
	AppointmentDuration int           `bson:"appointmentDuration" json:"appointmentDuration"` // slot length in minutes
	MaxPerDay           int           `bson:"maxPerDay" json:"maxPerDay"`                     // bookable slots per day; 0 means unbounded
	Days                []ScheduleDay `bson:"days" json:"days"`
}

// ScheduleDay is the working window for one weekday. A weekday without an
// entry means the therapist does not work that day.
type ScheduleDay struct {
	Weekday   int    `bson:"weekday" json:"weekday"`     // 0=Sunday .. 6=Saturday
	StartHour string `bson:"startHour" json:"startHour"` // wall clock "HH:MM:SS"
	EndHour   string `bson:"endHour" json:"endHour"`     // wall clock "HH:MM:SS", strictly after StartHour
}

// UpsertScheduleRequest creates or updates the therapist's schedule.
// Missing fields keep their existing values (or the defaults on first write).
type UpsertScheduleRequest struct {
	AppointmentDuration *int `json:"appointmentDuration,omitempty"`
	MaxPerDay           *int `json:"maxPerDay,omitempty"`
}

// ReplaceDaysRequest replaces the full set of day windows for a schedule.
type ReplaceDaysRequest struct {
	Days []ScheduleDayInput `json:"days" binding:"required,min=1,max=7"`
}

// ScheduleDayInput is one day window as submitted by the therapist.
// Hours accept "HH:MM" or "HH:MM:SS".
type ScheduleDayInput struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartHour string `json:"startHour" binding:"required"`
	EndHour   string `json:"endHour" binding:"required"`
}
