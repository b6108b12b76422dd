package booking_test

import (
	"strings"
	"testing"

	"github.com/priscillalife/site-api/internal/booking"
)

func TestInquiryComposition(t *testing.T) {
	req := booking.Request{
		Name:      "<b>Mallory</b>",
		Email:     "mallory@example.com",
		EventType: "Birthday",
		EventDate: "2025-03-01",
		Message:   "Bring <cake>",
	}

	msg := booking.Inquiry(&req, "bookings@priscilla.life")

	if msg.ToEmail != "bookings@priscilla.life" {
		t.Errorf("wrong recipient: %q", msg.ToEmail)
	}
	if msg.Subject != "New Booking Inquiry: Birthday" {
		t.Errorf("wrong subject: %q", msg.Subject)
	}

	// Reply-to routing uses the raw, unescaped submitter address.
	if msg.ReplyTo != "mallory@example.com" {
		t.Errorf("reply-to must be the raw email, got %q", msg.ReplyTo)
	}

	if strings.Contains(msg.HTML, "<b>Mallory</b>") {
		t.Error("raw user HTML leaked into the body")
	}
	if !strings.Contains(msg.HTML, "&lt;b&gt;Mallory&lt;/b&gt;") {
		t.Errorf("expected escaped name in body: %s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "&lt;cake&gt;") {
		t.Errorf("expected escaped message in body: %s", msg.HTML)
	}
}

func TestInquiryPlaceholdersForAbsentOptionals(t *testing.T) {
	req := booking.Request{
		Name:      "Ada",
		Email:     "ada@example.com",
		EventType: "Wedding",
		EventDate: "2025-06-14",
	}

	msg := booking.Inquiry(&req, "bookings@priscilla.life")

	for _, want := range []string{"Not provided", "Not specified", "No message provided"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("HTML body missing placeholder %q", want)
		}
		if !strings.Contains(msg.Text, want) {
			t.Errorf("text body missing placeholder %q", want)
		}
	}
}
