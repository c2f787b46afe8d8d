package handlers

import (
	"errors"
	"net/http"

	"janseva/models"
	webhookSvc "janseva/services/webhook"
	"janseva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler serves the WhatsApp Cloud API webhook surface.
type WebhookHandler struct {
	Service webhookSvc.WebhookService
}

// NewWebhookHandler constructs a WebhookHandler.
func NewWebhookHandler(svc webhookSvc.WebhookService) *WebhookHandler {
	return &WebhookHandler{Service: svc}
}

// VerifyWebhookHandler answers the Meta subscription handshake.
func (h *WebhookHandler) VerifyWebhookHandler(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if h.Service.Verify(mode, token) {
		utils.GetLogger().Info("WhatsApp webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}
	c.Status(http.StatusForbidden)
}

// ReceiveWebhookHandler ingests inbound message deliveries. Meta retries on
// any non-200, so processing failures still acknowledge the delivery.
func (h *WebhookHandler) ReceiveWebhookHandler(c *gin.Context) {
	var payload models.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.GetLogger().Error("Malformed webhook payload", zap.Error(err))
		c.String(http.StatusOK, "ERROR_PROCESSED")
		return
	}

	if err := h.Service.ProcessPayload(c.Request.Context(), payload); err != nil {
		if errors.Is(err, webhookSvc.ErrUnknownObject) {
			c.Status(http.StatusNotFound)
			return
		}
		utils.GetLogger().Error("Webhook processing failed", zap.Error(err))
		c.String(http.StatusOK, "ERROR_PROCESSED")
		return
	}

	c.String(http.StatusOK, "EVENT_RECEIVED")
}
