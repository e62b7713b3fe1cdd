// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindwell/models"
)

// FindTakenSlots returns the TAKEN slots for the given therapists within the
// inclusive date range. These are the reservations regeneration must preserve.
func (r *mongoAvailabilityRepo) FindTakenSlots(ctx context.Context, therapistIDs []string, startDate, endDate string) ([]models.TakenSlotRef, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"therapistId": bson.M{"$in": therapistIDs},
		"date":        bson.M{"$gte": startDate, "$lte": endDate},
		"state":       models.SlotStateTaken,
	}
	projection := options.Find().SetProjection(bson.M{"therapistId": 1, "date": 1, "hour": 1})

	cursor, err := r.coll.Find(ctx, filter, projection)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var taken []models.TakenSlotRef
	if err := cursor.All(ctx, &taken); err != nil {
		return nil, err
	}
	return taken, nil
}

// DeleteAvailableSlots removes AVAILABLE slots for the given therapists within
// the inclusive date range. The state filter keeps TAKEN rows untouched even
// if two regeneration runs overlap.
func (r *mongoAvailabilityRepo) DeleteAvailableSlots(ctx context.Context, therapistIDs []string, startDate, endDate string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"therapistId": bson.M{"$in": therapistIDs},
		"date":        bson.M{"$gte": startDate, "$lte": endDate},
		"state":       models.SlotStateAvailable,
	}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// InsertSlots writes one batch of slots. Callers are expected to chunk large
// slot lists; this does a single ordered InsertMany.
func (r *mongoAvailabilityRepo) InsertSlots(ctx context.Context, slots []models.AvailabilitySlot) error {
	if len(slots) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.State == "" {
			slot.State = models.SlotStateAvailable
		}
		docs[i] = slot
	}

	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

// GetByTherapistAndRange returns all slots (any state) for one therapist
// within the inclusive date range, ordered by date then hour.
func (r *mongoAvailabilityRepo) GetByTherapistAndRange(ctx context.Context, therapistID, startDate, endDate string) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"therapistId": therapistID,
		"date":        bson.M{"$gte": startDate, "$lte": endDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "hour", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
