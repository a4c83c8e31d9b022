package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/vk/maichartgen/internal/chart"
)

// Service is everything a session needs from the generation backend.
type Service interface {
	Prober
	GenerateStream(ctx context.Context, req *chart.Request) (Stream, error)
}

// Dialer builds a Service authenticated with apiKey.
type Dialer func(ctx context.Context, apiKey string) (Service, error)

// Options tune the SDK client.
type Options struct {
	// BaseURL overrides the API endpoint, e.g. for a proxy. Empty keeps the
	// SDK default.
	BaseURL string
}

// Client is the Service backed by the Gemini API.
type Client struct {
	genai *genai.Client
}

// NewDialer returns a Dialer creating Clients with opts.
func NewDialer(opts Options) Dialer {
	return func(ctx context.Context, apiKey string) (Service, error) {
		return NewClient(ctx, apiKey, opts)
	}
}

// NewClient creates a Gemini API client. It does not contact the service.
func NewClient(ctx context.Context, apiKey string, opts Options) (*Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions.BaseURL = opts.BaseURL
	}

	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{genai: c}, nil
}

// Probe lists a single model.
func (c *Client) Probe(ctx context.Context) error {
	if _, err := c.genai.Models.List(ctx, &genai.ListModelsConfig{PageSize: 1}); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// GenerateStream submits a streaming generation and waits for the first
// response. A rejected request (quota, payload size, credentials) is returned
// here as an error and no Stream is handed out.
func (c *Client) GenerateStream(ctx context.Context, req *chart.Request) (Stream, error) {
	if req == nil || len(req.Parts) == 0 {
		return nil, fmt.Errorf("empty generation request")
	}

	responses := c.genai.Models.GenerateContentStream(ctx, req.Model, toContents(req), toConfig(req))
	return Begin(func(yield func(string, error) bool) {
		for resp, err := range responses {
			if err != nil {
				yield("", fmt.Errorf("generate content stream: %w", err))
				return
			}
			if !yield(resp.Text(), nil) {
				return
			}
		}
	})
}

func toContents(req *chart.Request) []*genai.Content {
	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		if p.IsText() {
			parts = append(parts, genai.NewPartFromText(p.Text))
			continue
		}
		parts = append(parts, genai.NewPartFromBytes(p.Data, p.MIMEType))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func toConfig(req *chart.Request) *genai.GenerateContentConfig {
	budget := req.ThinkingBudget
	return &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: &budget},
	}
}
