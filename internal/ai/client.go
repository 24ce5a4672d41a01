// Package ai wraps the external image-generation provider. The core treats
// generation as one blocking call; there is no retry and no streaming
// contract.
package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// ImageGenerator produces image bytes from a prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (*GeneratedImage, error)
	Provider() string
}

// GeneratedImage is the raw result of one generation call.
type GeneratedImage struct {
	Data     []byte
	MimeType string
}

// Config holds the provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Size    string
	Timeout time.Duration
}

var _ ImageGenerator = (*Client)(nil)

// Client calls an OpenAI-compatible image API.
type Client struct {
	client  *openai.Client
	model   string
	size    string
	timeout time.Duration
}

func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("AI API key is not configured")
	}
	if cfg.Model == "" {
		cfg.Model = openai.CreateImageModelDallE3
	}
	if cfg.Size == "" {
		cfg.Size = openai.CreateImageSize1024x1024
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		size:    cfg.Size,
		timeout: cfg.Timeout,
	}, nil
}

// Generate runs one image generation call and returns the decoded bytes.
// Failures surface to the caller unchanged; retrying is the caller's
// decision (the service never retries).
func (c *Client) Generate(ctx context.Context, prompt string) (*GeneratedImage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          c.model,
		N:              1,
		Size:           c.size,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		log.Error().Err(err).Str("model", c.model).Msg("Image generation call failed")
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("image generation returned no data")
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode generated image: %w", err)
	}

	log.Info().
		Str("model", c.model).
		Int("size_bytes", len(data)).
		Dur("duration", time.Since(start)).
		Msg("Image generated")

	return &GeneratedImage{Data: data, MimeType: "image/png"}, nil
}

// Provider names the upstream for image records.
func (c *Client) Provider() string {
	return "openai:" + c.model
}
