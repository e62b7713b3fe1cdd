// File: database/repository/therapist/interface.go
package therapistRepo

import (
	"context"

	"mindwell/database"
	"mindwell/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TherapistRepository persists therapist profiles.
type TherapistRepository interface {
	Create(ctx context.Context, therapist *models.Therapist) error
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	GetByUserID(ctx context.Context, userID string) (*models.Therapist, error)
	EnsureIndexes() error
}

type mongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo constructs a new MongoDB TherapistRepository.
func NewMongoTherapistRepo() TherapistRepository {
	db := database.MongoClient.Database("mindwell")
	return &mongoTherapistRepo{
		coll: db.Collection("therapists"),
	}
}
