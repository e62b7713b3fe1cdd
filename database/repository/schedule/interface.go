// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"mindwell/database"
	"mindwell/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists therapist weekly schedules and their day windows.
type ScheduleRepository interface {
	Upsert(ctx context.Context, schedule *models.WeeklySchedule) error
	GetByTherapistID(ctx context.Context, therapistID string) (*models.WeeklySchedule, error)
	GetByID(ctx context.Context, scheduleID string) (*models.WeeklySchedule, error)
	ReplaceDays(ctx context.Context, scheduleID string, days []models.ScheduleDay) error
	ListAll(ctx context.Context) ([]models.WeeklySchedule, error)
	EnsureIndexes() error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("mindwell")
	return &mongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
}
