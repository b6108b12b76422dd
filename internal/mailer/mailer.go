// Package mailer sends transactional email through a configurable backend:
// MailerSend for production, plain SMTP for self-hosted setups, or a log-only
// dev backend.
package mailer

import (
	"context"
	"errors"
)

// ErrNotConfigured signals a missing deployment secret (API key, sender or
// recipient). Callers must not surface which one to clients.
var ErrNotConfigured = errors.New("mailer is not configured")

// Message is a single outbound email. ReplyTo carries the raw submitter
// address; it is never HTML-escaped because it lives in a header, not a body.
type Message struct {
	ToEmail string
	ToName  string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer dispatches exactly one message per call. No queue, no retry.
type Mailer interface {
	// Send returns the provider message ID, or "" when the backend has none.
	Send(ctx context.Context, msg Message) (string, error)
}
