package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all route handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	// Therapist endpoints.
	RegisterTherapistHandler gin.HandlerFunc
	GetTherapistByIDHandler  gin.HandlerFunc

	// Schedule self-service endpoints.
	UpsertScheduleHandler gin.HandlerFunc
	GetScheduleHandler    gin.HandlerFunc
	ReplaceDaysHandler    gin.HandlerFunc

	// Availability endpoints.
	RegenerateHandler    gin.HandlerFunc
	RegenerateAllHandler gin.HandlerFunc
	GetSlotsHandler      gin.HandlerFunc
}
