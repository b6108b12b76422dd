// Package content is a read-only client for the headless content store
// (Sanity). The service never writes documents; it only runs GROQ queries
// against the CDN endpoint and relays typed results.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/priscillalife/site-api/pkg/config"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	projectID  string
	dataset    string
}

// New builds the query client. Returns nil when no project ID is configured;
// callers treat a nil client as "content API disabled".
func New(cfg config.ContentConfig) *Client {
	if cfg.ProjectID == "" {
		return nil
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL: fmt.Sprintf("https://%s.apicdn.sanity.io/v%s/data/query/%s",
			cfg.ProjectID, cfg.APIVersion, cfg.Dataset),
		projectID: cfg.ProjectID,
		dataset:   cfg.Dataset,
	}
}

type queryParams struct {
	Query string `url:"query"`
}

// runQuery executes a GROQ query with optional $-parameters and decodes the
// envelope's result into out.
func (c *Client) runQuery(ctx context.Context, groq string, params map[string]string, out any) error {
	values, err := query.Values(queryParams{Query: groq})
	if err != nil {
		return err
	}
	for name, value := range params {
		// Sanity expects parameter values as JSON literals.
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		values.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content query failed: %s", resp.Status)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	return json.Unmarshal(envelope.Result, out)
}

func (c *Client) Music(ctx context.Context) ([]MusicTrack, error) {
	var tracks []MusicTrack
	if err := c.runQuery(ctx, queryMusic, nil, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// Food returns catering portfolio items, optionally filtered by event type.
func (c *Client) Food(ctx context.Context, eventType string) ([]FoodItem, error) {
	groq := queryFood
	var params map[string]string
	if eventType != "" {
		groq = queryFoodByEventType
		params = map[string]string{"eventType": eventType}
	}

	var items []FoodItem
	if err := c.runQuery(ctx, groq, params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) HostEvents(ctx context.Context) ([]HostEvent, error) {
	var events []HostEvent
	if err := c.runQuery(ctx, queryHost, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Showreel returns the flagged showreel entry, or nil when none is published.
func (c *Client) Showreel(ctx context.Context) (*HostEvent, error) {
	var event *HostEvent
	if err := c.runQuery(ctx, queryShowreel, nil, &event); err != nil {
		return nil, err
	}
	return event, nil
}

func (c *Client) SocialProfiles(ctx context.Context) ([]SocialProfile, error) {
	var profiles []SocialProfile
	if err := c.runQuery(ctx, querySocial, nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Settings returns the singleton site settings document, or nil when unset.
func (c *Client) Settings(ctx context.Context) (*SiteSettings, error) {
	var settings *SiteSettings
	if err := c.runQuery(ctx, querySettings, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) Brands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	if err := c.runQuery(ctx, queryBrands, nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}
