package routes

import (
	"net/http"
	"time"

	"janseva/handlers"
	"janseva/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers scheduling configuration endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		// Dashboard endpoints.
		api.GET("", hb.GetAvailabilityHandler)
		api.PUT("", hb.UpdateAvailabilityHandler)
		api.POST("/special-date", hb.AddSpecialDateHandler)
		api.DELETE("/special-date", hb.RemoveSpecialDateHandler)

		// Public endpoints consumed by the chatbot.
		api.GET("/public/:companyID", hb.GetPublicAvailabilityHandler)
		api.GET("/available-dates/:companyID", hb.GetAvailableDatesHandler)
		api.GET("/holidays/:year", hb.GetHolidaysHandler)
	}
}

// RegisterWebhookRoutes registers the WhatsApp webhook endpoints.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/webhook/whatsapp")
	{
		api.GET("", hb.VerifyWebhookHandler)
		api.POST("", hb.ReceiveWebhookHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterHealthRoute(r)
}
