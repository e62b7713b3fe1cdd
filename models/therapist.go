package models

import "time"

// Therapist is the minimal profile the scheduling side of the platform
// works with. Patient-facing profile data lives with the identity service.
type Therapist struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	FullName  string    `bson:"fullName" json:"fullName"`
	Specialty string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RegisterTherapistRequest creates a therapist profile.
type RegisterTherapistRequest struct {
	UserID    string `json:"userId" binding:"required"`
	FullName  string `json:"fullName" binding:"required"`
	Specialty string `json:"specialty"`
}
