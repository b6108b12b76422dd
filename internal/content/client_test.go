package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/priscillalife/site-api/pkg/config"
)

func testClient(server *httptest.Server) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    server.URL,
		projectID:  "abc123",
		dataset:    "production",
	}
}

func TestNewDisabledWithoutProjectID(t *testing.T) {
	if c := New(config.ContentConfig{Dataset: "production"}); c != nil {
		t.Error("expected nil client when no project ID is configured")
	}
}

func TestMusicQueryDecodesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); !strings.Contains(got, `_type == "music"`) {
			t.Errorf("unexpected GROQ query: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ms":3,"result":[
			{"_id":"m1","title":"Song One","artist":"Priscilla",
			 "coverImage":{"asset":{"_ref":"image-deadbeef-800x600-jpg"}},
			 "streamingLinks":[{"platform":"Spotify","url":"https://open.spotify.com/track/x"}]}
		]}`))
	}))
	defer server.Close()

	tracks, err := testClient(server).Music(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks", len(tracks))
	}
	if tracks[0].Title != "Song One" || tracks[0].Artist != "Priscilla" {
		t.Errorf("unexpected track: %+v", tracks[0])
	}
	if tracks[0].CoverImage == nil || tracks[0].CoverImage.Asset.Ref != "image-deadbeef-800x600-jpg" {
		t.Errorf("cover image not decoded: %+v", tracks[0].CoverImage)
	}
}

func TestFoodQueryEncodesEventTypeParam(t *testing.T) {
	var gotParam string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParam = r.URL.Query().Get("$eventType")
		w.Write([]byte(`{"result":[]}`))
	}))
	defer server.Close()

	if _, err := testClient(server).Food(context.Background(), "wedding"); err != nil {
		t.Fatal(err)
	}
	// Sanity parameters are JSON literals.
	if gotParam != `"wedding"` {
		t.Errorf("$eventType = %q, want %q", gotParam, `"wedding"`)
	}
}

func TestShowreelNullResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`))
	}))
	defer server.Close()

	event, err := testClient(server).Showreel(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if event != nil {
		t.Errorf("expected nil showreel, got %+v", event)
	}
}

func TestQueryErrorOnUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := testClient(server).Music(context.Background()); err == nil {
		t.Error("expected error on upstream 500")
	}
}

func TestImageURL(t *testing.T) {
	c := &Client{projectID: "abc123", dataset: "production"}

	got, err := c.ImageURL("image-deadbeef-800x600-jpg")
	if err != nil {
		t.Fatal(err)
	}
	want := "https://cdn.sanity.io/images/abc123/production/deadbeef-800x600.jpg"
	if got != want {
		t.Errorf("ImageURL = %q, want %q", got, want)
	}

	for _, bad := range []string{"", "file-deadbeef-800x600-jpg", "image-deadbeef-jpg", "image--800x600-jpg", "image-deadbeef-axb-jpg"} {
		if _, err := c.ImageURL(bad); err == nil {
			t.Errorf("ImageURL(%q) should fail", bad)
		}
	}
}
