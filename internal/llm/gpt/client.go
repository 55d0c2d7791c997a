package gpt

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultModelID = "gpt-4o-mini"

type Client struct {
	Client  openai.Client
	ModelID string
	apiKey  string
}

// NewClient builds a Chat Completions client. Extra options are appended
// after the defaults, tests use them to point at a local server.
func NewClient(apiKey string, model string, opts ...option.RequestOption) *Client {
	if model == "" {
		model = DefaultModelID
	}

	options := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &Client{
		Client:  openai.NewClient(options...),
		ModelID: model,
		apiKey:  apiKey,
	}
}

func (c *Client) Name() string {
	return "openai"
}

func (c *Client) Model() string {
	return c.ModelID
}
