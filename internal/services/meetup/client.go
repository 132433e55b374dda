package meetup

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/eventscout/eventscout-api/internal/query"
)

// Client handles communication with the Meetup REST API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	oauthURL    string
	clientID    string
	redirectURI string
	accessToken string
}

// Config holds configuration for the Meetup client
type Config struct {
	ClientID    string
	AccessToken string
	RedirectURI string
	BaseURL     string
	OAuthURL    string
	Timeout     time.Duration
}

// NewClient creates a new Meetup API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.meetup.com"
	}
	if cfg.OAuthURL == "" {
		cfg.OAuthURL = "https://secure.meetup.com/oauth2"
	}
	if cfg.RedirectURI == "" {
		cfg.RedirectURI = "http://localhost:8080/"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		oauthURL:    cfg.OAuthURL,
		clientID:    cfg.ClientID,
		redirectURI: cfg.RedirectURI,
		accessToken: cfg.AccessToken,
	}
}

// SearchEvents finds upcoming events matching the structured query.
// The current-location sentinel is not sent upstream; Meetup then
// resolves relative to the token's home location.
func (c *Client) SearchEvents(ctx context.Context, q query.SearchQuery) ([]query.EventRecord, error) {
	if c.accessToken == "" {
		return nil, fmt.Errorf("no access token available")
	}

	params := url.Values{}
	params.Set("status", "upcoming")
	if q.MaxResults > 0 {
		params.Set("page", strconv.Itoa(q.MaxResults))
	}
	if q.Location != "" && q.Location != query.CurrentLocation {
		params.Set("location", q.Location)
	}
	if q.StartTime != nil {
		params.Set("start_date_range", q.StartTime.Format(time.RFC3339))
	}
	if len(q.Keywords) > 0 {
		params.Set("text", strings.Join(q.Keywords, " "))
	}

	fullURL := fmt.Sprintf("%s/find/upcoming_events?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Meetup API returned status %d for %s", resp.StatusCode, fullURL)
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var payload eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	records := make([]query.EventRecord, 0, len(payload.Events))
	for _, raw := range payload.Events {
		record := parseRestEvent(raw)
		if q.RemoteOnly && !record.IsOnline {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// parseRestEvent normalizes a wire event into an EventRecord. Missing
// optional fields stay at their zero values.
func parseRestEvent(raw restEvent) query.EventRecord {
	title := raw.Name
	if title == "" {
		title = "Untitled Event"
	}

	groupName := raw.Group.Name
	if groupName == "" {
		groupName = "Unknown Group"
	}

	return query.EventRecord{
		ID:            raw.ID,
		Title:         title,
		Description:   raw.Description,
		URL:           raw.Link,
		StartTime:     time.UnixMilli(raw.Time).UTC(),
		VenueName:     raw.Venue.Name,
		VenueCity:     raw.Venue.City,
		IsOnline:      raw.Venue.ID == 1,
		GroupName:     groupName,
		GroupURL:      "https://www.meetup.com/" + raw.Group.URLName,
		AttendeeCount: raw.YesRSVPs,
		FeeAmount:     raw.Fee.Amount,
		FeeCurrency:   raw.Fee.Currency,
	}
}

// AuthURL builds the OAuth2 authorization URL.
func (c *Client) AuthURL() string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("response_type", "code")
	params.Set("redirect_uri", c.redirectURI)
	params.Set("scope", "basic")
	return fmt.Sprintf("%s/authorize?%s", c.oauthURL, params.Encode())
}

// Status reports the client's credential state.
func (c *Client) Status() AuthStatus {
	return AuthStatus{
		HasAccessToken:    c.accessToken != "",
		OAuthURLAvailable: c.clientID != "",
	}
}
