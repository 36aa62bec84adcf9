// Package flightapi wraps the flightapi.io REST endpoints used by the
// search and tracking features. Vendor non-success statuses surface as
// UpstreamError so handlers can pass the status and raw body through; no
// retries are attempted.
package flightapi

import (
	"net/http"
	"time"
)

const vendorName = "flightapi"

// Client manages flight API requests.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new flight API client. baseURL must end with a slash.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
