// Package client provides an HTTP client for the assistant API, used by the
// terminal client when it runs against a remote server instead of the
// embedded assistant.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/internal/model/chat"
	"github.com/hotgigs/careerassist/internal/model/profile"
)

// Client talks to a careerassist API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL.
// If baseURL is empty, uses the CAREERASSIST_SERVER_URL env var or defaults
// to localhost:8080. The request timeout can be configured via
// CAREERASSIST_CLIENT_TIMEOUT; the default leaves room for the server-side
// think delay on message submissions.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("CAREERASSIST_SERVER_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := 30 * time.Second
	if t := os.Getenv("CAREERASSIST_CLIENT_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Error is a non-2xx response from the API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// SessionState is the session envelope returned when a session is created:
// the session plus its seeded transcript and current suggestions.
type SessionState struct {
	Session     chat.Session   `json:"session"`
	Messages    []chat.Message `json:"messages"`
	Suggestions []string       `json:"suggestions"`
}

// Transcript is a point-in-time view of a conversation.
type Transcript struct {
	Messages    []chat.Message `json:"messages"`
	Suggestions []string       `json:"suggestions"`
	Typing      bool           `json:"typing"`
}

// Turn is a completed user/assistant exchange.
type Turn struct {
	User        chat.Message `json:"user"`
	Reply       chat.Message `json:"reply"`
	Suggestions []string     `json:"suggestions"`
}

// CreateSession registers a profile and returns the seeded conversation.
func (c *Client) CreateSession(ctx context.Context, p profile.Profile) (*SessionState, error) {
	payload := map[string]string{
		"displayName": p.DisplayName,
		"role":        string(p.Role),
	}

	var state SessionState
	if err := c.doJSON(ctx, http.MethodPost, "/api/assistant/sessions", payload, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// GetSession fetches session metadata.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*chat.Session, error) {
	var session chat.Session
	if err := c.doJSON(ctx, http.MethodGet, "/api/assistant/sessions/"+sessionID, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Transcript fetches the full transcript with the current suggestions.
func (c *Client) Transcript(ctx context.Context, sessionID string) (*Transcript, error) {
	var transcript Transcript
	if err := c.doJSON(ctx, http.MethodGet, "/api/assistant/sessions/"+sessionID+"/transcript", nil, &transcript); err != nil {
		return nil, err
	}
	return &transcript, nil
}

// SendMessage submits a user message and blocks until the assistant reply is
// ready. The server holds the request for its configured think delay, so this
// can take a second or two.
func (c *Client) SendMessage(ctx context.Context, sessionID, content string) (*Turn, error) {
	payload := map[string]string{"content": content}

	var turn Turn
	if err := c.doJSON(ctx, http.MethodPost, "/api/assistant/sessions/"+sessionID+"/messages", payload, &turn); err != nil {
		return nil, err
	}
	return &turn, nil
}

// Suggestions fetches the follow-up prompts currently on offer.
func (c *Client) Suggestions(ctx context.Context, sessionID string) ([]string, error) {
	var result struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/assistant/sessions/"+sessionID+"/suggestions", nil, &result); err != nil {
		return nil, err
	}
	return result.Suggestions, nil
}

// Roles fetches the role catalog.
func (c *Client) Roles(ctx context.Context) ([]advisor.RoleInfo, error) {
	var roles []advisor.RoleInfo
	if err := c.doJSON(ctx, http.MethodGet, "/api/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// doJSON sends a request and decodes the JSON response into result.
// Non-2xx responses are returned as *Error with the server's error message.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, result any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != "" {
			return &Error{Status: resp.StatusCode, Message: envelope.Error}
		}
		return &Error{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
