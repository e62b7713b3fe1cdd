// File: database/repository/therapist/crud.go
package therapistRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindwell/models"
)

func (r *mongoTherapistRepo) Create(ctx context.Context, therapist *models.Therapist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if therapist.ID == "" {
		therapist.ID = uuid.New().String()
	}
	now := time.Now()
	therapist.CreatedAt = now
	therapist.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, therapist); err != nil {
		return fmt.Errorf("failed to insert therapist: %w", err)
	}
	return nil
}

func (r *mongoTherapistRepo) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var therapist models.Therapist
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&therapist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &therapist, nil
}

func (r *mongoTherapistRepo) GetByUserID(ctx context.Context, userID string) (*models.Therapist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var therapist models.Therapist
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&therapist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &therapist, nil
}

// EnsureIndexes creates the necessary indexes on the therapists collection.
func (r *mongoTherapistRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_user_id"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create therapist indexes: %w", err)
	}
	return nil
}
