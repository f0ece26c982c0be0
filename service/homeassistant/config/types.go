package haconfig

import (
	"context"
	"net/http"
	"time"
)

type service struct {
	baseURL     string
	accessToken string
	timeout     time.Duration
}

type ConfigService interface {
	GetHTTPClient(ctx context.Context) (*http.Client, error)
	GetBaseURL() string
}
