// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// APIKeyHeader carries the backend API key next to the bearer token.
const APIKeyHeader = "apikey"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://project.example.co", 10*time.Second).
//		WithAPIKey(key)
//	resp, err := client.R().Get("/rest/v1/transactions")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for the JSON API at baseURL. Every request
// is bounded by timeout and asks for a JSON response.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// WithAPIKey sends key both as the apikey header and as a bearer token. An
// empty key leaves the client unauthenticated.
func (c *HTTPClient) WithAPIKey(key string) *HTTPClient {
	if key == "" {
		return c
	}
	c.SetHeader(APIKeyHeader, key).SetAuthToken(key)
	return c
}
