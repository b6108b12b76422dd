package booking

import (
	"fmt"

	"github.com/priscillalife/site-api/internal/mailer"
)

// Inquiry composes the operator notification for a validated request. Every
// body field goes through the escaped Display copy; the reply-to header keeps
// the raw submitter email so answering the mail reaches the client directly.
func Inquiry(req *Request, recipient string) mailer.Message {
	d := req.Display()

	html := fmt.Sprintf(`
		<h2>New Booking Inquiry</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Event Type:</strong> %s</p>
		<p><strong>Event Date:</strong> %s</p>
		<p><strong>Guest Count:</strong> %s</p>
		<p><strong>Prospective Budget:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>
	`, d.Name, d.Email, d.Phone, d.EventType, d.EventDate, d.GuestCount, d.Budget, d.Message)

	text := fmt.Sprintf(
		"New Booking Inquiry\n\nName: %s\nEmail: %s\nPhone: %s\nEvent Type: %s\nEvent Date: %s\nGuest Count: %s\nProspective Budget: %s\n\nMessage:\n%s\n",
		req.Name, req.Email,
		orPlaceholder(req.Phone, placeholderNotProvided),
		req.EventType, req.EventDate,
		orPlaceholder(req.GuestCount, placeholderNotSpecified),
		orPlaceholder(req.Budget, placeholderNotSpecified),
		orPlaceholder(req.Message, placeholderNoMessage),
	)

	return mailer.Message{
		ToEmail: recipient,
		Subject: "New Booking Inquiry: " + req.EventType,
		Text:    text,
		HTML:    html,
		ReplyTo: req.Email,
	}
}
