package handlers

import (
	"errors"
	"net/http"

	availabilityRepo "mindwell/database/repository/availability"
	"mindwell/services/availability"
	"mindwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the regeneration trigger endpoints and the
// slot listing used by the booking side.
type AvailabilityHandler struct {
	Service availability.Service
	Slots   availabilityRepo.AvailabilitySlotRepository
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service, slots availabilityRepo.AvailabilitySlotRepository) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Slots: slots}
}

// RegenerateHandler handles POST /api/availability/regenerate.
func (h *AvailabilityHandler) RegenerateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var body struct {
		TherapistID string `json:"therapistId" binding:"required,uuid"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	report, err := h.Service.RegenerateForTherapist(c.Request.Context(), body.TherapistID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Therapist schedule not found"})
		case errors.Is(err, availability.ErrNoScheduleDays):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No schedule days configured"})
		default:
			logger.Error("Failed to regenerate availability",
				zap.String("therapistId", body.TherapistID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to regenerate availability"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Availability regenerated",
		"created":        report.Created,
		"preservedTaken": report.PreservedTaken,
	})
}

// RegenerateAllHandler handles POST /api/availability/regenerate-all.
func (h *AvailabilityHandler) RegenerateAllHandler(c *gin.Context) {
	logger := utils.GetLogger()

	report, err := h.Service.RegenerateAll(c.Request.Context())
	if err != nil {
		logger.Error("Bulk availability regeneration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Bulk availability regeneration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":             "Bulk availability generation completed",
		"therapistsProcessed": report.TherapistsProcessed,
		"created":             report.Created,
		"preservedTaken":      report.PreservedTaken,
	})
}

// GetSlotsHandler handles GET /api/availability/:therapistId, returning all
// slots for the therapist within an inclusive date range.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	therapistID := c.Param("therapistId")
	from := c.Query("from")
	to := c.Query("to")
	if therapistID == "" || from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "therapistId, from and to are required"})
		return
	}

	slots, err := h.Slots.GetByTherapistAndRange(c.Request.Context(), therapistID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch availability slots", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
