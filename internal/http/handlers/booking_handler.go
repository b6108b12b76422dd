package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/priscillalife/site-api/internal/booking"
	"github.com/priscillalife/site-api/internal/http/response"
	"github.com/priscillalife/site-api/internal/mailer"
	"github.com/priscillalife/site-api/internal/ratelimit"
	"github.com/priscillalife/site-api/pkg/logger"
)

type bookingSuccess struct {
	Success   bool           `json:"success"`
	Data      any            `json:"data"`
	RateLimit *rateLimitInfo `json:"rateLimit,omitempty"`
}

type rateLimitInfo struct {
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// CreateBooking runs the inquiry pipeline: validate, rate-limit, sanitize,
// compose, send. Validation and rate-limit outcomes are plain results;
// only configuration and delivery faults surface as 500s.
func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req booking.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}
	req.Normalize()

	if details := req.Validate(); len(details) > 0 {
		response.ValidationFailed(w, details)
		return
	}

	result, err := h.limiter.Allow(r.Context(), ratelimit.ClientKey(r))
	if err != nil {
		// Fail open: a broken counter store must not take the form down.
		logger.ErrorContext(r.Context(), "rate limit check failed", "error", err)
	}
	if result != nil {
		h.setRateLimitHeaders(w, result)
		if !result.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(h.limiter.Window().Seconds())))
			response.RateLimited(w, "Too many requests. Please try again later.", result.ResetAt.Unix())
			return
		}
	}

	if h.cfg.Email.Recipient == "" {
		// Which secret is missing stays in the server log only.
		logger.ErrorContext(r.Context(), "booking notification misconfigured", "missing", "CONTACT_EMAIL")
		response.Error(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	msg := booking.Inquiry(&req, h.cfg.Email.Recipient)

	id, err := h.mail.Send(r.Context(), msg)
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			logger.ErrorContext(r.Context(), "email provider misconfigured", "error", err)
			response.Error(w, http.StatusInternalServerError, "Server configuration error")
			return
		}
		logger.ErrorContext(r.Context(), "booking email send failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	logger.InfoContext(r.Context(), "booking inquiry sent",
		"event_type", req.EventType,
		"event_date", req.EventDate,
		"message_id", id,
	)

	body := bookingSuccess{
		Success: true,
		Data:    map[string]string{"id": id},
	}
	if result != nil {
		body.RateLimit = &rateLimitInfo{
			Remaining: result.Remaining,
			Reset:     result.ResetAt.Unix(),
		}
	}
	response.JSON(w, http.StatusOK, body)
}

func (h *Handlers) setRateLimitHeaders(w http.ResponseWriter, result *ratelimit.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}
