package haconfig

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

var (
	ErrMissingBaseURL     = errors.New("home assistant base URL is not set")
	ErrMissingAccessToken = errors.New("home assistant access token is not set")
)

func NewService(baseURL, accessToken string, timeout time.Duration) *service {
	return &service{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		timeout:     timeout,
	}
}

// GetHTTPClient returns a client that sends the long-lived access token as a bearer token
func (s *service) GetHTTPClient(ctx context.Context) (*http.Client, error) {
	if s.baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if s.accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: s.accessToken,
		TokenType:   "Bearer",
	})

	client := oauth2.NewClient(ctx, tokenSource)
	client.Timeout = s.timeout
	return client, nil
}

func (s *service) GetBaseURL() string {
	return s.baseURL
}
