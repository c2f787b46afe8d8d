package notification

import "context"

// EmailMessage is one outbound email.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// EmailSender delivers notification emails. Implementations own their
// transport lifecycle; callers construct one sender and pass it down.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
	Close() error
}
