package mailer

import (
	"context"

	"github.com/priscillalife/site-api/pkg/logger"
)

// DevMailer logs messages instead of sending them.
type DevMailer struct{}

func NewDev() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) Send(ctx context.Context, msg Message) (string, error) {
	logger.InfoContext(ctx, "[DEV MAIL] outbound email",
		"to", msg.ToEmail,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return "dev", nil
}
