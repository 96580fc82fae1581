package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SessionData is the profile returned by the identity provider for a session id.
type SessionData struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

// IdentityClient converts a short-lived session id into a durable session token.
type IdentityClient struct {
	url    string
	client *http.Client
}

func NewIdentityClient(url string, timeout time.Duration) *IdentityClient {
	return &IdentityClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *IdentityClient) FetchSession(ctx context.Context, sessionID string) (*SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build session request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamAuthError{StatusCode: http.StatusBadGateway, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &UpstreamAuthError{StatusCode: http.StatusBadGateway, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamAuthError{StatusCode: resp.StatusCode}
	}

	var data SessionData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &UpstreamAuthError{StatusCode: http.StatusBadGateway, Err: fmt.Errorf("decode session data: %w", err)}
	}
	if data.Email == "" || data.SessionToken == "" {
		return nil, &UpstreamAuthError{StatusCode: http.StatusBadGateway, Err: errors.New("session data missing email or session_token")}
	}
	return &data, nil
}
