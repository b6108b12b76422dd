package booking

import "html"

// Placeholders shown in the operator email when an optional field is empty.
// They contain no HTML-significant characters, so escaping order is moot.
const (
	placeholderNotProvided  = "Not provided"
	placeholderNotSpecified = "Not specified"
	placeholderNoMessage    = "No message provided"
)

// EscapeHTML replaces & < > " ' with their entities. Single-pass only:
// escaping already-escaped text double-encodes ampersands, which is the
// documented contract, not a bug.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// Display is the HTML-safe copy of a request, used only for the email body.
// The raw email stays on Request for reply-to routing.
type Display struct {
	Name       string
	Email      string
	Phone      string
	EventType  string
	EventDate  string
	GuestCount string
	Budget     string
	Message    string
}

// Display escapes every user-supplied field and substitutes placeholders for
// absent optionals.
func (r *Request) Display() Display {
	return Display{
		Name:       EscapeHTML(r.Name),
		Email:      EscapeHTML(r.Email),
		Phone:      orPlaceholder(EscapeHTML(r.Phone), placeholderNotProvided),
		EventType:  EscapeHTML(r.EventType),
		EventDate:  EscapeHTML(r.EventDate),
		GuestCount: orPlaceholder(EscapeHTML(r.GuestCount), placeholderNotSpecified),
		Budget:     orPlaceholder(EscapeHTML(r.Budget), placeholderNotSpecified),
		Message:    orPlaceholder(EscapeHTML(r.Message), placeholderNoMessage),
	}
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
