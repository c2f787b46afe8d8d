package webhook

import (
	"context"
	"errors"

	"janseva/models"
	"janseva/utils"

	"go.uber.org/zap"
)

// ErrUnknownObject is returned for payloads that are not WhatsApp Business
// account events.
var ErrUnknownObject = errors.New("webhook: unknown payload object")

// DefaultWebhookService is the production WebhookService.
type DefaultWebhookService struct {
	VerifyToken string
	Dedup       MessageDeduplicator
	Companies   CompanyResolver
	Processor   MessageProcessor
}

func (s *DefaultWebhookService) Verify(mode, token string) bool {
	return mode == "subscribe" && token != "" && token == s.VerifyToken
}

func (s *DefaultWebhookService) ProcessPayload(ctx context.Context, payload models.WebhookPayload) error {
	logger := utils.GetLogger()

	if payload.Object != "whatsapp_business_account" {
		logger.Warn("Unknown webhook object", zap.String("object", payload.Object))
		return ErrUnknownObject
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			value := change.Value
			if len(value.Messages) == 0 {
				// Status update or delivery receipt; nothing to do.
				continue
			}
			for _, message := range value.Messages {
				s.handleMessage(ctx, message, value.Metadata)
			}
		}
	}
	return nil
}

func (s *DefaultWebhookService) handleMessage(ctx context.Context, message models.WebhookMessage, metadata models.WebhookMetadata) {
	logger := utils.GetLogger()

	if s.Dedup.Seen(ctx, message.ID) {
		logger.Debug("Message already processed, skipping", zap.String("messageId", message.ID))
		return
	}
	s.Dedup.Mark(ctx, message.ID)

	company := s.Companies.Resolve(ctx, metadata)

	inbound, ok := normalizeMessage(message, company.CompanyID)
	if !ok {
		return
	}

	logger.Info("Inbound WhatsApp message",
		zap.String("companyId", company.CompanyID),
		zap.String("from", inbound.From),
		zap.String("type", inbound.MessageType))

	if err := s.Processor.Process(ctx, inbound); err != nil {
		// One bad message must not poison the rest of the batch.
		logger.Error("Message processing failed",
			zap.String("messageId", message.ID), zap.Error(err))
	}
}

// normalizeMessage flattens the Cloud API message variants into an
// InboundMessage. Interactive messages without a reply id carry no intent and
// are dropped.
func normalizeMessage(message models.WebhookMessage, companyID string) (models.InboundMessage, bool) {
	inbound := models.InboundMessage{
		CompanyID:   companyID,
		From:        message.From,
		MessageID:   message.ID,
		MessageType: message.Type,
	}

	switch message.Type {
	case "text":
		if message.Text != nil {
			inbound.MessageText = message.Text.Body
		}
	case "image":
		if message.Image != nil {
			inbound.MessageText = message.Image.Caption
			inbound.MediaID = message.Image.ID
		}
	case "document":
		if message.Document != nil {
			inbound.MessageText = message.Document.Caption
			inbound.MediaID = message.Document.ID
		}
	case "video":
		if message.Video != nil {
			inbound.MessageText = message.Video.Caption
			inbound.MediaID = message.Video.ID
		}
	case "audio":
		if message.Audio != nil {
			inbound.MediaID = message.Audio.ID
		}
	case "voice":
		if message.Voice != nil {
			inbound.MediaID = message.Voice.ID
		}
	case "interactive":
		reply := interactiveReply(message.Interactive)
		if reply == nil || reply.ID == "" {
			return models.InboundMessage{}, false
		}
		inbound.ButtonID = reply.ID
		inbound.MessageText = reply.Title
	}
	return inbound, true
}

func interactiveReply(interactive *models.WebhookInteractive) *models.WebhookReply {
	if interactive == nil {
		return nil
	}
	switch interactive.Type {
	case "button_reply":
		return interactive.ButtonReply
	case "list_reply":
		return interactive.ListReply
	}
	return nil
}
