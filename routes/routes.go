package routes

import (
	"net/http"
	"time"

	"mindwell/handlers"
	"mindwell/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTherapistRoutes registers therapist profile endpoints.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/therapists")
	{
		api.POST("/register", hb.RegisterTherapistHandler)
		api.GET("/id/:id", hb.GetTherapistByIDHandler)
	}
}

// RegisterScheduleRoutes registers the therapist self-service schedule
// endpoints. All of them require an authenticated session.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.PUT("", hb.UpsertScheduleHandler)
		api.GET("", hb.GetScheduleHandler)
		api.POST("/:id/days", hb.ReplaceDaysHandler)
	}
}

// RegisterAvailabilityRoutes registers the regeneration trigger endpoints
// (signed callers only) and the public slot listing.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:therapistId", hb.GetSlotsHandler)

		triggers := api.Group("")
		triggers.Use(middleware.TriggerAuthMiddleware())
		triggers.POST("/regenerate", hb.RegenerateHandler)
		triggers.POST("/regenerate-all", hb.RegenerateAllHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Mindwell"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterTherapistRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterHealthRoute(r)
}
