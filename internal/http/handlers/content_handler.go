package handlers

import (
	"net/http"

	"github.com/priscillalife/site-api/internal/content"
	"github.com/priscillalife/site-api/internal/http/response"
	"github.com/priscillalife/site-api/internal/media"
	"github.com/priscillalife/site-api/pkg/logger"
)

// contentUnavailable writes a 503 when no content store is configured.
func (h *Handlers) contentUnavailable(w http.ResponseWriter) bool {
	if h.content == nil {
		response.Error(w, http.StatusServiceUnavailable, "Content store not configured")
		return true
	}
	return false
}

// resolveEmbed fills in a player URL for events whose video link can be
// converted. Links we cannot convert are passed through untouched.
func resolveEmbed(ev *content.HostEvent) {
	if ev.VideoURL == "" {
		return
	}
	if u, err := media.EmbedURL(ev.VideoURL); err == nil {
		ev.EmbedURL = u
	}
}

func (h *Handlers) contentError(w http.ResponseWriter, r *http.Request, what string, err error) {
	logger.ErrorContext(r.Context(), "content query failed", "what", what, "error", err)
	response.Error(w, http.StatusBadGateway, "Failed to load content")
}

func (h *Handlers) ListMusic(w http.ResponseWriter, r *http.Request) {
	if h.contentUnavailable(w) {
		return
	}

	tracks, err := h.content.Music(r.Context())
	if err != nil {
		h.contentError(w, r, "music", err)
		return
	}
	response.JSON(w, http.StatusOK, tracks)
}

func (h *Handlers) ListFood(w http.ResponseWriter, r *http.Request) {
	if h.contentUnavailable(w) {
		return
	}

	items, err := h.content.Food(r.Context(), r.URL.Query().Get("eventType"))
	if err != nil {
		h.contentError(w, r, "food", err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *Handlers) ListHostEvents(w http.ResponseWriter, r *http.Request) {
	if h.contentUnavailable(w) {
		return
	}

	events, err := h.content.HostEvents(r.Context())
	if err != nil {
		h.contentError(w, r, "host", err)
		return
	}
	for i := range events {
		resolveEmbed(&events[i])
	}
	response.JSON(w, http.StatusOK, events)
}

func (h *Handlers) GetShowreel(w http.ResponseWriter, r *http.Request) {
	if h.contentUnavailable(w) {
		return
	}

	event, err := h.content.Showreel(r.Context())
	if err != nil {
		h.contentError(w, r, "showreel", err)
		return
	}
	if event == nil {
		response.Error(w, http.StatusNotFound, "No showreel published")
		return
	}
	resolveEmbed(event)
	response.JSON(w, http.StatusOK, event)
}

func (h *Handlers) ListSocialProfiles(w http.ResponseWriter, r *http.Request) {
	if h.contentUnavailable(w) {
		return
	}

	profiles, err := h.content.SocialProfiles(r.Context())
	if err != nil {
		h.contentError(w, r, "social", err)
		return
	}
	response.JSON(w, http.StatusOK, profiles)
}

func (h *Handlers) GetSiteSettings(w http.ResponseWriter, r *http.Request) {
	if h.contentUnavailable(w) {
		return
	}

	settings, err := h.content.Settings(r.Context())
	if err != nil {
		h.contentError(w, r, "settings", err)
		return
	}
	if settings == nil {
		response.Error(w, http.StatusNotFound, "Site settings not published")
		return
	}
	response.JSON(w, http.StatusOK, settings)
}

func (h *Handlers) ListBrands(w http.ResponseWriter, r *http.Request) {
	if h.contentUnavailable(w) {
		return
	}

	brands, err := h.content.Brands(r.Context())
	if err != nil {
		h.contentError(w, r, "brands", err)
		return
	}
	response.JSON(w, http.StatusOK, brands)
}
