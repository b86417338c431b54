// Package ollama is a minimal HTTP client for a locally hosted Ollama server.
// It covers the three endpoints the generator needs: version probe, installed
// model listing, and non-streaming text generation.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danuarta/kamusgen/internal/config"
)

// Client talks to one Ollama server.
type Client struct {
	baseURL    string
	model      string
	options    generateOptions
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from the Ollama configuration.
// The request timeout applies to every call, including generation.
func NewClient(cfg config.OllamaConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		options: generateOptions{
			Temperature: cfg.Temperature,
			NumPredict:  cfg.NumPredict,
			TopP:        cfg.TopP,
		},
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		log:        logger.With("adapter", "ollama"),
	}
}

// NewClientWithURL creates a Client with a custom base URL and a short timeout
// (for testing).
func NewClientWithURL(baseURL, model string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		options:    generateOptions{Temperature: 0.3, NumPredict: 200, TopP: 0.9},
		httpClient: &http.Client{Timeout: 5 * time.Second},
		log:        logger.With("adapter", "ollama"),
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Version probes GET /api/version. Any 200 response means the server is running;
// the version string is returned for logging.
func (c *Client) Version(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/version", nil)
	if err != nil {
		return "", fmt.Errorf("ollama: create version request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: version request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: version returned status %d", resp.StatusCode)
	}

	var body versionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		// A 200 counts as running even when the body is unexpected.
		return "", nil
	}
	return body.Version, nil
}

// ListModels fetches GET /api/tags and returns the installed model names.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("ollama: create tags request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama: tags request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama: tags returned status %d", resp.StatusCode)
	}

	var body tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("ollama: decode tags: %w", err)
	}

	names := make([]string, 0, len(body.Models))
	for _, m := range body.Models {
		if m.Name != "" {
			names = append(names, m.Name)
		}
	}
	return names, nil
}

// Generate sends one non-streaming generation request and returns the trimmed
// response text. Every failure mode (network error, timeout, non-2xx status,
// malformed body) is returned as an error; retrying is the caller's concern.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:   c.model,
		Prompt:  prompt,
		Stream:  false,
		Options: c.options,
	})
	if err != nil {
		return "", fmt.Errorf("ollama: marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("ollama: create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "generate request", slog.String("model", c.model), slog.Int("prompt_len", len(prompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: generate returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ollama: read generate body: %w", err)
	}

	var body generateResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", fmt.Errorf("ollama: decode generate body: %w", err)
	}

	return strings.TrimSpace(body.Response), nil
}
