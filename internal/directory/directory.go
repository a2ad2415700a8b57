// Package directory reads the user list from the backend user service.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"postboard/internal/models"
)

// ErrUnavailable wraps every transport-level failure.
var ErrUnavailable = errors.New("user directory unavailable")

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("user directory returned status %d", e.StatusCode)
}

type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a client for the given users endpoint. A zero timeout
// means requests are bounded only by the caller's context.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

// ListUsers fetches the full user collection with a single unauthenticated GET.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var users []models.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// FindMatch returns the first user whose email and password both equal the
// given values exactly. A record with no email or no password never matches.
func FindMatch(users []models.User, email, password string) (models.User, bool) {
	for _, u := range users {
		if u.Email == nil || u.Password == nil {
			continue
		}
		if *u.Email == email && *u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}
