package models

// SlotState is the lifecycle state of an availability slot.
type SlotState string

const (
	SlotStateAvailable SlotState = "AVAILABLE"
	SlotStateTaken     SlotState = "TAKEN"
)

// AvailabilitySlot is one bookable unit of therapist time, identified by
// (therapistId, date, hour). The regenerator creates AVAILABLE slots; the
// booking flow flips them to TAKEN. TAKEN slots are never touched by
// regeneration.
type AvailabilitySlot struct {
	TherapistID string    `bson:"therapistId" json:"therapistId"`
	Date        string    `bson:"date" json:"date"` // calendar day "2006-01-02", no time component
	Hour        string    `bson:"hour" json:"hour"` // wall clock start "HH:MM:SS"
	State       SlotState `bson:"state" json:"state"`
}

// TakenSlotRef identifies an already-reserved slot within a window.
type TakenSlotRef struct {
	TherapistID string `bson:"therapistId" json:"therapistId"`
	Date        string `bson:"date" json:"date"`
	Hour        string `bson:"hour" json:"hour"`
}

// RegenerationReport summarizes one regeneration run.
type RegenerationReport struct {
	TherapistsProcessed int `json:"therapistsProcessed"`
	Created             int `json:"created"`
	PreservedTaken      int `json:"preservedTaken"`
}
