package booking

import (
	"regexp"
	"unicode/utf8"

	"github.com/priscillalife/site-api/internal/utils"
)

// FieldError describes a single violated rule. Validation collects every
// violation in one pass so the client can fix the whole form at once.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// eventDatePattern checks shape only. Calendar validity is deliberately not
// enforced: "2024-13-99" passes.
var eventDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const (
	maxNameLen       = 100
	maxPhoneLen      = 20
	maxGuestCountLen = 10
	maxBudgetLen     = 50
	maxMessageLen    = 1000
)

// Validate checks the full schema and returns one FieldError per violation.
// A nil result means the request is valid.
func (r *Request) Validate() []FieldError {
	var errs []FieldError

	switch {
	case r.Name == "":
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	case utf8.RuneCountInString(r.Name) > maxNameLen:
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 100 characters"})
	}

	switch {
	case r.Email == "":
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	case !utils.IsValidEmail(r.Email):
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid email address"})
	}

	if utf8.RuneCountInString(r.Phone) > maxPhoneLen {
		errs = append(errs, FieldError{Field: "phone", Message: "phone must be at most 20 characters"})
	}

	if r.EventType == "" {
		errs = append(errs, FieldError{Field: "eventType", Message: "eventType is required"})
	}

	switch {
	case r.EventDate == "":
		errs = append(errs, FieldError{Field: "eventDate", Message: "eventDate is required"})
	case !eventDatePattern.MatchString(r.EventDate):
		errs = append(errs, FieldError{Field: "eventDate", Message: "eventDate must match YYYY-MM-DD"})
	}

	if utf8.RuneCountInString(r.GuestCount) > maxGuestCountLen {
		errs = append(errs, FieldError{Field: "guestCount", Message: "guestCount must be at most 10 characters"})
	}

	if utf8.RuneCountInString(r.Budget) > maxBudgetLen {
		errs = append(errs, FieldError{Field: "budget", Message: "budget must be at most 50 characters"})
	}

	if utf8.RuneCountInString(r.Message) > maxMessageLen {
		errs = append(errs, FieldError{Field: "message", Message: "message must be at most 1000 characters"})
	}

	return errs
}
