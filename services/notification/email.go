package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"janseva/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailConfig holds delivery settings for the SendGrid sender.
type EmailConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// SendGridEmailSender sends mail through the SendGrid API. The underlying
// client is established on first use; after Close the sender refuses sends.
type SendGridEmailSender struct {
	cfg    EmailConfig
	once   sync.Once
	client *sendgrid.Client

	mu     sync.Mutex
	closed bool
}

// NewSendGridEmailSender constructs a sender. It does not talk to SendGrid
// until the first Send.
func NewSendGridEmailSender(cfg EmailConfig) *SendGridEmailSender {
	if cfg.FromName == "" {
		cfg.FromName = "JanSeva Portal"
	}
	return &SendGridEmailSender{cfg: cfg}
}

func (s *SendGridEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return errors.New("notification: email sender is closed")
	}
	if s.cfg.APIKey == "" {
		utils.GetLogger().Warn("SendGrid API key not configured, email not sent",
			zap.String("to", msg.To), zap.String("subject", msg.Subject))
		return errors.New("notification: email transport not configured")
	}

	s.once.Do(func() {
		s.client = sendgrid.NewSendClient(s.cfg.APIKey)
	})

	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	text := msg.Text
	if text == "" {
		text = msg.Subject
	}
	html := msg.HTML
	if html == "" {
		html = text
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, text, html)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		utils.GetLogger().Error("Failed to send email", zap.String("to", msg.To), zap.Error(err))
		return fmt.Errorf("notification: send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		utils.GetLogger().Error("Email rejected",
			zap.String("to", msg.To), zap.Int("status", response.StatusCode))
		return fmt.Errorf("notification: send returned status %d", response.StatusCode)
	}

	utils.GetLogger().Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

// Close releases the sender. SendGrid is stateless HTTP, so this only bars
// further sends.
func (s *SendGridEmailSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// StubEmailSender logs instead of sending; used in tests and in deployments
// without email credentials.
type StubEmailSender struct{}

func (StubEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	utils.GetLogger().Info("Stub email sender: would send",
		zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func (StubEmailSender) Close() error { return nil }
