// Package booking implements the inquiry ingestion pipeline for the booking
// form: schema validation, HTML sanitization and notification composition.
package booking

import (
	"github.com/priscillalife/site-api/internal/utils"
)

// Request is one inbound booking inquiry. Optional fields arrive as empty
// strings; guest count and budget stay free-form text on purpose.
type Request struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	EventType  string `json:"eventType"`
	EventDate  string `json:"eventDate"`
	GuestCount string `json:"guestCount"`
	Budget     string `json:"budget"`
	Message    string `json:"message"`
}

// Normalize trims whitespace on every field and lowercases the email.
// Runs before validation so length checks see the trimmed values.
func (r *Request) Normalize() {
	r.Name = utils.NormalizeString(r.Name)
	r.Email = utils.NormalizeEmail(r.Email)
	r.Phone = utils.NormalizeString(r.Phone)
	r.EventType = utils.NormalizeString(r.EventType)
	r.EventDate = utils.NormalizeString(r.EventDate)
	r.GuestCount = utils.NormalizeString(r.GuestCount)
	r.Budget = utils.NormalizeString(r.Budget)
	r.Message = utils.NormalizeString(r.Message)
}
