// File: janseva/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	GetAvailabilityHandler       gin.HandlerFunc
	UpdateAvailabilityHandler    gin.HandlerFunc
	AddSpecialDateHandler        gin.HandlerFunc
	RemoveSpecialDateHandler     gin.HandlerFunc
	GetPublicAvailabilityHandler gin.HandlerFunc
	GetAvailableDatesHandler     gin.HandlerFunc
	GetHolidaysHandler           gin.HandlerFunc

	// WhatsApp webhook endpoints
	VerifyWebhookHandler  gin.HandlerFunc
	ReceiveWebhookHandler gin.HandlerFunc
}
