package webhook

import (
	"context"

	"janseva/models"
)

// MessageProcessor is the boundary to the conversation engine: it receives
// each deduplicated, tenant-resolved inbound message.
type MessageProcessor interface {
	Process(ctx context.Context, msg models.InboundMessage) error
}

// WebhookService handles the WhatsApp Cloud API webhook surface.
type WebhookService interface {
	// Verify implements the Meta subscription handshake.
	Verify(mode, token string) bool
	// ProcessPayload walks an inbound payload and dispatches its messages.
	// Per-message failures are logged, never propagated; Meta must always
	// receive a 200 or it will retry the whole delivery.
	ProcessPayload(ctx context.Context, payload models.WebhookPayload) error
}
