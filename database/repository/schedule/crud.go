// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindwell/models"
)

// Upsert creates or replaces the schedule keyed by therapistId.
// A missing ID is assigned here so callers can pass a fresh schedule.
func (r *mongoScheduleRepo) Upsert(ctx context.Context, schedule *models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	if schedule.Days == nil {
		schedule.Days = []models.ScheduleDay{}
	}

	filter := bson.M{"therapistId": schedule.TherapistID}
	update := bson.M{
		"$set": bson.M{
			"appointmentDuration": schedule.AppointmentDuration,
			"maxPerDay":           schedule.MaxPerDay,
		},
		"$setOnInsert": bson.M{
			"id":          schedule.ID,
			"therapistId": schedule.TherapistID,
			"days":        schedule.Days,
		},
	}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetByTherapistID returns the therapist's schedule, or nil when none exists.
func (r *mongoScheduleRepo) GetByTherapistID(ctx context.Context, therapistID string) (*models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.WeeklySchedule
	err := r.coll.FindOne(ctx, bson.M{"therapistId": therapistID}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetByID returns the schedule with the given ID, or nil when none exists.
func (r *mongoScheduleRepo) GetByID(ctx context.Context, scheduleID string) (*models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.WeeklySchedule
	err := r.coll.FindOne(ctx, bson.M{"id": scheduleID}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// ReplaceDays swaps the full day-window set of a schedule.
func (r *mongoScheduleRepo) ReplaceDays(ctx context.Context, scheduleID string, days []models.ScheduleDay) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if days == nil {
		days = []models.ScheduleDay{}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": scheduleID}, bson.M{"$set": bson.M{"days": days}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListAll returns every schedule together with its day windows in one pass,
// so bulk regeneration avoids a query per therapist.
func (r *mongoScheduleRepo) ListAll(ctx context.Context) ([]models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []models.WeeklySchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}
