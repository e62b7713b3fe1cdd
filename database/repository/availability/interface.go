// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"mindwell/database"
	"mindwell/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilitySlotRepository persists generated availability slots.
// Date range arguments are inclusive calendar-day strings ("2006-01-02").
type AvailabilitySlotRepository interface {
	FindTakenSlots(ctx context.Context, therapistIDs []string, startDate, endDate string) ([]models.TakenSlotRef, error)
	DeleteAvailableSlots(ctx context.Context, therapistIDs []string, startDate, endDate string) (int64, error)
	InsertSlots(ctx context.Context, slots []models.AvailabilitySlot) error
	GetByTherapistAndRange(ctx context.Context, therapistID, startDate, endDate string) ([]models.AvailabilitySlot, error)
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilitySlotRepository.
func NewMongoAvailabilityRepo() AvailabilitySlotRepository {
	db := database.MongoClient.Database("mindwell")
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability_slots"),
	}
}
