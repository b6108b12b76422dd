// Package media converts third-party video links (YouTube, TikTok, Vimeo)
// into embeddable player URLs. Pure string transforms, no network calls.
package media

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrUnsupportedURL means the link is not from a known video platform
	// or carries no extractable video ID.
	ErrUnsupportedURL = errors.New("unsupported video URL")

	// ErrShortLink marks TikTok vm.tiktok.com links, which cannot be embedded
	// without resolving the redirect first.
	ErrShortLink = errors.New("short link must be resolved to a full URL")
)

var (
	tiktokVideoPattern = regexp.MustCompile(`/video/(\d+)`)
	vimeoPattern       = regexp.MustCompile(`vimeo\.com/(?:video/)?(\d+)`)
)

// EmbedURL maps a video page link to its embeddable player URL.
func EmbedURL(raw string) (string, error) {
	if raw == "" {
		return "", ErrUnsupportedURL
	}

	switch {
	case strings.Contains(raw, "youtube.com"), strings.Contains(raw, "youtu.be"):
		return youtubeEmbed(raw)
	case strings.Contains(raw, "tiktok.com"):
		return tiktokEmbed(raw)
	case strings.Contains(raw, "vimeo.com"):
		return vimeoEmbed(raw)
	}

	return "", ErrUnsupportedURL
}

func youtubeEmbed(raw string) (string, error) {
	var id string

	switch {
	case strings.Contains(raw, "youtube.com/watch?v="):
		id = cutAfter(raw, "watch?v=")
		id, _, _ = strings.Cut(id, "&")
	case strings.Contains(raw, "youtube.com/embed/"):
		id = cutAfter(raw, "embed/")
		id, _, _ = strings.Cut(id, "?")
	case strings.Contains(raw, "youtu.be/"):
		id = cutAfter(raw, "youtu.be/")
		id, _, _ = strings.Cut(id, "?")
	}

	if id == "" {
		return "", ErrUnsupportedURL
	}
	return "https://www.youtube.com/embed/" + id, nil
}

func tiktokEmbed(raw string) (string, error) {
	if m := tiktokVideoPattern.FindStringSubmatch(raw); m != nil {
		return "https://www.tiktok.com/embed/v2/" + m[1], nil
	}
	if strings.Contains(raw, "vm.tiktok.com") {
		return "", ErrShortLink
	}
	return "", ErrUnsupportedURL
}

func vimeoEmbed(raw string) (string, error) {
	if m := vimeoPattern.FindStringSubmatch(raw); m != nil {
		return "https://player.vimeo.com/video/" + m[1], nil
	}
	return "", ErrUnsupportedURL
}

func cutAfter(s, sep string) string {
	_, after, _ := strings.Cut(s, sep)
	return after
}
