package webhook

import (
	"context"

	"janseva/models"
	"janseva/services/notification"
	"janseva/utils"

	"go.uber.org/zap"
)

// LogMessageProcessor acknowledges inbound messages by logging them. It stands
// in for the conversation engine, which consumes InboundMessage at this
// boundary.
type LogMessageProcessor struct{}

func (LogMessageProcessor) Process(ctx context.Context, msg models.InboundMessage) error {
	utils.GetLogger().Info("Message accepted for processing",
		zap.String("companyId", msg.CompanyID),
		zap.String("messageId", msg.MessageID),
		zap.String("type", msg.MessageType),
		zap.String("buttonId", msg.ButtonID))
	return nil
}

// StaffAlertProcessor forwards each inbound citizen message to a staff inbox,
// so messages reach a human while no conversation engine is attached.
type StaffAlertProcessor struct {
	Sender     notification.EmailSender
	StaffEmail string
	StaffName  string
}

func (p *StaffAlertProcessor) Process(ctx context.Context, msg models.InboundMessage) error {
	email := notification.CitizenMessageEmail(notification.NotificationData{
		RecipientName: p.StaffName,
		CitizenPhone:  msg.From,
		MessageType:   msg.MessageType,
		Description:   msg.MessageText,
	})
	email.To = p.StaffEmail
	email.ToName = p.StaffName

	if err := p.Sender.Send(ctx, email); err != nil {
		return err
	}
	utils.GetLogger().Info("Staff alerted about inbound message",
		zap.String("companyId", msg.CompanyID),
		zap.String("messageId", msg.MessageID))
	return nil
}
