package handlers

import (
	"errors"
	"net/http"

	"mindwell/models"
	scheduleSvc "mindwell/services/schedule"
	"mindwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the therapist self-service schedule endpoints.
type ScheduleHandler struct {
	Service scheduleSvc.Service
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc scheduleSvc.Service) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func authedUserID(c *gin.Context) (string, bool) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID in context"})
		return "", false
	}
	return userID, true
}

// UpsertScheduleHandler handles PUT /api/schedule.
func (h *ScheduleHandler) UpsertScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	schedule, err := h.Service.Upsert(c.Request.Context(), userID, req)
	if err != nil {
		h.respondScheduleError(c, logger, err, "Failed to save schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Schedule saved",
		"schedule": schedule,
	})
}

// GetScheduleHandler handles GET /api/schedule.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	schedule, err := h.Service.Get(c.Request.Context(), userID)
	if err != nil {
		h.respondScheduleError(c, logger, err, "Failed to fetch schedule")
		return
	}

	// No schedule configured yet is not an error for the client.
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// ReplaceDaysHandler handles POST /api/schedule/:id/days.
func (h *ScheduleHandler) ReplaceDaysHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	scheduleID := c.Param("id")

	var req models.ReplaceDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.ReplaceDays(c.Request.Context(), userID, scheduleID, req); err != nil {
		h.respondScheduleError(c, logger, err, "Failed to save schedule days")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule days saved"})
}

func (h *ScheduleHandler) respondScheduleError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	var invalidCfg *scheduleSvc.InvalidConfigurationError
	switch {
	case errors.Is(err, scheduleSvc.ErrTherapistNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Therapist profile not found"})
	case errors.Is(err, scheduleSvc.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found or not owned by user"})
	case errors.As(err, &invalidCfg):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidCfg.Error()})
	default:
		logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "message": err.Error()})
	}
}
