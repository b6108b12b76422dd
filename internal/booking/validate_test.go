package booking_test

import (
	"strings"
	"testing"

	"github.com/priscillalife/site-api/internal/booking"
)

func validRequest() booking.Request {
	return booking.Request{
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		EventType: "Wedding",
		EventDate: "2025-06-14",
	}
}

func fieldsOf(errs []booking.FieldError) map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		m[e.Field] = e.Message
	}
	return m
}

func TestValidateAcceptsMinimalRequest(t *testing.T) {
	req := validRequest()
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateCollectsAllMissingRequiredFields(t *testing.T) {
	req := booking.Request{}
	errs := req.Validate()

	fields := fieldsOf(errs)
	for _, want := range []string{"name", "email", "eventType", "eventDate"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("expected a violation for %q, got %v", want, errs)
		}
	}
	if len(errs) != 4 {
		t.Errorf("expected exactly 4 violations, got %d: %v", len(errs), errs)
	}
}

func TestValidateEventDatePattern(t *testing.T) {
	cases := []struct {
		date string
		ok   bool
	}{
		{"2025-06-14", true},
		{"2024-02-30", true}, // shape check only, no calendar validity
		{"2024-13-99", true},
		{"24-02-30", false},
		{"2024/02/30", false},
		{"2024-2-3", false},
		{"2024-02-03T00:00", false},
		{"", false},
	}

	for _, tc := range cases {
		req := validRequest()
		req.EventDate = tc.date
		errs := req.Validate()
		_, violated := fieldsOf(errs)["eventDate"]
		if tc.ok && violated {
			t.Errorf("eventDate %q: expected valid, got %v", tc.date, errs)
		}
		if !tc.ok && !violated {
			t.Errorf("eventDate %q: expected violation, got none", tc.date)
		}
	}
}

func TestValidateEmailSyntax(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"ada@example.com", true},
		{"ada.lovelace@sub.example.co", true},
		{"not-an-email", false},
		{"a@b", false},
		{"two@@example.com", false},
	}

	for _, tc := range cases {
		req := validRequest()
		req.Email = tc.email
		errs := req.Validate()
		_, violated := fieldsOf(errs)["email"]
		if tc.ok == violated {
			t.Errorf("email %q: ok=%v but violation=%v (%v)", tc.email, tc.ok, violated, errs)
		}
	}
}

func TestValidateLengthBounds(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*booking.Request, string)
		limit  int
	}{
		{"name", func(r *booking.Request, s string) { r.Name = s }, 100},
		{"phone", func(r *booking.Request, s string) { r.Phone = s }, 20},
		{"guestCount", func(r *booking.Request, s string) { r.GuestCount = s }, 10},
		{"budget", func(r *booking.Request, s string) { r.Budget = s }, 50},
		{"message", func(r *booking.Request, s string) { r.Message = s }, 1000},
	}

	for _, tc := range cases {
		req := validRequest()
		tc.mutate(&req, strings.Repeat("x", tc.limit))
		if _, violated := fieldsOf(req.Validate())[tc.field]; violated {
			t.Errorf("%s at limit %d should pass", tc.field, tc.limit)
		}

		req = validRequest()
		tc.mutate(&req, strings.Repeat("x", tc.limit+1))
		if _, violated := fieldsOf(req.Validate())[tc.field]; !violated {
			t.Errorf("%s over limit %d should fail", tc.field, tc.limit)
		}
	}
}

func TestNormalizeTrimsAndLowercasesEmail(t *testing.T) {
	req := booking.Request{
		Name:      "  Ada  ",
		Email:     "  Ada@Example.COM ",
		EventType: " Wedding ",
		EventDate: " 2025-06-14 ",
	}
	req.Normalize()

	if req.Name != "Ada" {
		t.Errorf("name not trimmed: %q", req.Name)
	}
	if req.Email != "ada@example.com" {
		t.Errorf("email not normalized: %q", req.Email)
	}
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("normalized request should validate, got %v", errs)
	}
}
