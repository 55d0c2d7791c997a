package gemini

import (
	"net/http"
	"strings"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModelID = "gemini-2.5-flash-preview-09-2025"
)

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	ModelID    string
	apiKey     string
}

// NewClient does not reject an empty key: a missing key is reported per call
// as an authentication failure so callers can still render a comparison.
func NewClient(apiKey string, model string, baseURL string, httpClient *http.Client) *Client {
	if model == "" {
		model = DefaultModelID
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		HTTPClient: httpClient,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ModelID:    model,
		apiKey:     apiKey,
	}
}

func (c *Client) Name() string {
	return "gemini"
}

func (c *Client) Model() string {
	return c.ModelID
}
