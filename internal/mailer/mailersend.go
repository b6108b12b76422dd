package mailer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	timeout time.Duration
}

// NewMailerSend builds the MailerSend backend. A missing API key or sender
// leaves the client disabled; Send then fails with ErrNotConfigured.
func NewMailerSend(apiKey, fromName, fromEmail string, timeout time.Duration) *MailerSendClient {
	m := &MailerSendClient{
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
		timeout: timeout,
	}

	if apiKey != "" && fromEmail != "" {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) Send(ctx context.Context, msg Message) (string, error) {
	if m.client == nil {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(msg.ToEmail) == "" {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(m.from)
	message.SetRecipients([]mailersend.Recipient{{Name: msg.ToName, Email: msg.ToEmail}})
	message.SetSubject(msg.Subject)

	if msg.ReplyTo != "" {
		message.SetReplyTo(mailersend.ReplyTo{Email: msg.ReplyTo})
	}
	if strings.TrimSpace(msg.Text) != "" {
		message.SetText(msg.Text)
	}
	if strings.TrimSpace(msg.HTML) != "" {
		message.SetHTML(msg.HTML)
	}

	res, err := m.client.Email.Send(ctx, message)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	// MailerSend uses X-Message-Id
	return res.Header.Get("X-Message-Id"), nil
}
