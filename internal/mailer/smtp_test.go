package mailer_test

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/priscillalife/site-api/internal/mailer"
)

// closedPort reserves a local port and releases it again so a dial to it is
// refused immediately.
func closedPort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()
	return port
}

func TestSMTPSendNotConfigured(t *testing.T) {
	m := mailer.NewSMTP("", 0, "", "", "", false)

	_, err := m.Send(context.Background(), mailer.Message{ToEmail: "a@b.test"})
	if !errors.Is(err, mailer.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestSMTPSendWrapsDialFailure(t *testing.T) {
	m := mailer.NewSMTP("127.0.0.1", closedPort(t), "noreply@priscilla.life", "user", "pass", false)

	_, err := m.Send(context.Background(), mailer.Message{
		ToEmail: "bookings@priscilla.life",
		Subject: "New Booking Inquiry: Wedding",
		Text:    "hello",
		HTML:    "<p>hello</p>",
	})
	if err == nil {
		t.Fatal("expected send error against a closed port")
	}
	if !strings.Contains(err.Error(), "smtp send failed:") {
		t.Errorf("err = %v, want wrapped smtp send failure", err)
	}
	// The dial failure itself must survive wrapping for the handler log.
	if !strings.Contains(err.Error(), "refused") && !strings.Contains(err.Error(), "connect") {
		t.Errorf("err = %v, want the underlying dial error preserved", err)
	}
}
