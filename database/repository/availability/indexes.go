// File: database/repository/availability/indexes.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the availability_slots collection.
func (r *mongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Natural key. Overlapping regeneration runs could otherwise insert
		// duplicate AVAILABLE rows for the same slot.
		{
			Keys: bson.D{
				{Key: "therapistId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "hour", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("unique_therapist_date_hour"),
		},
		// Range scans by therapist, date and state (regeneration's read/delete pattern).
		{
			Keys: bson.D{
				{Key: "therapistId", Value: 1},
				{Key: "state", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("therapist_state_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create availability slot indexes: %w", err)
	}
	return nil
}
