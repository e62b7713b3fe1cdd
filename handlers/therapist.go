package handlers

import (
	"net/http"

	therapistRepo "mindwell/database/repository/therapist"
	"mindwell/models"
	"mindwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TherapistHandler exposes therapist profile endpoints.
type TherapistHandler struct {
	Repo therapistRepo.TherapistRepository
}

// NewTherapistHandler creates a new TherapistHandler.
func NewTherapistHandler(repo therapistRepo.TherapistRepository) *TherapistHandler {
	return &TherapistHandler{Repo: repo}
}

// RegisterTherapistHandler handles POST /api/therapists/register.
func (h *TherapistHandler) RegisterTherapistHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.RegisterTherapistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	existing, err := h.Repo.GetByUserID(c.Request.Context(), req.UserID)
	if err != nil {
		logger.Error("Failed to check therapist profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register therapist"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Therapist profile already exists"})
		return
	}

	therapist := &models.Therapist{
		UserID:    req.UserID,
		FullName:  req.FullName,
		Specialty: req.Specialty,
	}
	if err := h.Repo.Create(c.Request.Context(), therapist); err != nil {
		logger.Error("Failed to create therapist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register therapist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"therapist": therapist})
}

// GetTherapistByIDHandler handles GET /api/therapists/id/:id.
func (h *TherapistHandler) GetTherapistByIDHandler(c *gin.Context) {
	id := c.Param("id")

	therapist, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch therapist", "message": err.Error()})
		return
	}
	if therapist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Therapist not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"therapist": therapist})
}
