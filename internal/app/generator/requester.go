package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"

	"github.com/danuarta/kamusgen/internal/config"
)

// DefinitionClient is the slice of the Ollama client the requester needs.
type DefinitionClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Requester generates one cleaned definition per word, owning the retry policy.
type Requester struct {
	client DefinitionClient
	cfg    config.OllamaConfig
	log    *slog.Logger
}

// NewRequester creates a Requester.
func NewRequester(client DefinitionClient, cfg config.OllamaConfig, logger *slog.Logger) *Requester {
	return &Requester{
		client: client,
		cfg:    cfg,
		log:    logger,
	}
}

// Generate requests a definition for word, retrying on any failure with a
// constant delay between attempts. It never returns an error: when all
// attempts fail, the sentinel failure string is returned so the batch keeps
// moving. Network errors, timeouts, and non-2xx statuses retry identically.
func (r *Requester) Generate(ctx context.Context, word string) string {
	prompt := BuildPrompt(word)

	attempt := 0
	operation := func() (string, error) {
		attempt++
		text, err := r.client.Generate(ctx, prompt)
		if err != nil {
			r.log.WarnContext(ctx, "generation attempt failed",
				slog.String("word", word),
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", r.cfg.MaxAttempts),
				slog.String("error", err.Error()),
			)
			return "", err
		}
		return text, nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(r.cfg.RetryDelay), uint64(r.cfg.MaxAttempts-1)),
		ctx,
	)

	text, err := backoff.RetryWithData(operation, policy)
	if err != nil {
		return FailureSentinel(r.cfg.MaxAttempts)
	}

	return Clean(word, text)
}

// FailureSentinel is the literal string stored in place of a definition when
// every attempt for a word failed. Downstream consumers match on it.
func FailureSentinel(maxAttempts int) string {
	return fmt.Sprintf("Error: Failed to generate definition after %d attempts", maxAttempts)
}
