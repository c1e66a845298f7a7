package msgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TokenSource supplies a bearer token for Graph calls. The auth module's
// token store implements this.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client is the Microsoft Graph calendar client.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewClient creates a new Graph client backed by the given token source.
func NewClient(tokens TokenSource) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetBaseURL overrides the API base URL. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// CreateEvent creates a calendar event with invites on the signed-in user's
// calendar via POST /me/events.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	attendees := make([]graphAttendee, len(req.Attendees))
	for i, addr := range req.Attendees {
		attendees[i] = graphAttendee{
			EmailAddress: graphEmailAddress{Address: addr},
			Type:         "required",
		}
	}

	graphEvent := graphEvent{
		Subject: req.Subject,
		Start: graphDateTime{
			DateTime: req.StartTime.Format(graphDateTimeLayout),
			TimeZone: req.Timezone,
		},
		End: graphDateTime{
			DateTime: req.EndTime.Format(graphDateTimeLayout),
			TimeZone: req.Timezone,
		},
		Attendees:       attendees,
		IsOnlineMeeting: false,
		Body: graphBody{
			ContentType: "HTML",
			Content:     req.BodyHTML,
		},
	}
	if req.Location != "" {
		graphEvent.Location = &graphLocation{DisplayName: req.Location}
	}

	body, err := json.Marshal(graphEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/me/events", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call graph API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		// Graph error messages are user-facing data here: the per-event
		// result renders them verbatim.
		var errResp graphErrorResponse
		if jsonErr := json.Unmarshal(respBody, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			return nil, errors.New(errResp.Error.Message)
		}
		return nil, fmt.Errorf("graph API error %d: %s", resp.StatusCode, string(respBody))
	}

	var created graphCreatedEvent
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("failed to decode graph response: %w", err)
	}

	return &Event{
		ID:        created.ID,
		WebLink:   created.WebLink,
		Subject:   req.Subject,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

// CreateEventRequest is the input for creating a Graph calendar event.
type CreateEventRequest struct {
	Subject   string
	StartTime time.Time
	EndTime   time.Time
	Timezone  string // IANA name, e.g. "America/Los_Angeles"
	Location  string
	Attendees []string // email addresses, all invited as required
	BodyHTML  string
}

// Event is a simplified representation of a created Graph event.
type Event struct {
	ID        string
	WebLink   string
	Subject   string
	StartTime time.Time
	EndTime   time.Time
}
