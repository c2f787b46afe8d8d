package webhook

import (
	"context"
	"errors"
	"testing"

	"janseva/models"
	"janseva/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []notification.EmailMessage
	err  error
}

func (s *recordingSender) Send(ctx context.Context, msg notification.EmailMessage) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *recordingSender) Close() error { return nil }

func TestStaffAlertProcessor_EmailsStaffInbox(t *testing.T) {
	sender := &recordingSender{}
	processor := &StaffAlertProcessor{
		Sender:     sender,
		StaffEmail: "grievance-cell@example.gov.in",
		StaffName:  "Grievance Cell",
	}

	err := processor.Process(context.Background(), models.InboundMessage{
		CompanyID:   "CMP000042",
		From:        "919812345678",
		MessageID:   "wamid.alert",
		MessageType: "text",
		MessageText: "Streetlight broken near Ward 7",
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	email := sender.sent[0]
	assert.Equal(t, "grievance-cell@example.gov.in", email.To)
	assert.Equal(t, "Grievance Cell", email.ToName)
	assert.Equal(t, "New WhatsApp Message from 919812345678", email.Subject)
	assert.Contains(t, email.HTML, "Streetlight broken near Ward 7")
	assert.Contains(t, email.Text, "From: 919812345678")
}

func TestStaffAlertProcessor_SendFailurePropagates(t *testing.T) {
	sender := &recordingSender{err: errors.New("sendgrid unreachable")}
	processor := &StaffAlertProcessor{
		Sender:     sender,
		StaffEmail: "grievance-cell@example.gov.in",
	}

	err := processor.Process(context.Background(), models.InboundMessage{
		From:        "919812345678",
		MessageID:   "wamid.fail",
		MessageType: "text",
	})
	require.Error(t, err)
}
