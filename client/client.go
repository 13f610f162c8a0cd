package client

import (
	"net/http"
	"strings"

	"factguard/config"
)

// Client talks to the analysis backend (/analyze/ and /history/)
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client. A nil httpClient means requests carry no
// deadline; the caller decides whether a user action may hang.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = config.DefaultBackendURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the backend origin this client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}
