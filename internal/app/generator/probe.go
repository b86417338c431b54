package generator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/danuarta/kamusgen/internal/domain"
)

// ModelLister is the read-only slice of the Ollama client the probe needs.
type ModelLister interface {
	Version(ctx context.Context) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

// CheckAvailability verifies the server is running and the model is installed.
// It issues only the two read-only probe requests and returns nil when the
// pipeline may proceed. Every failure mode is folded into the returned error;
// nothing propagates as a panic or a raw transport error.
func CheckAvailability(ctx context.Context, client ModelLister, model string, log *slog.Logger) error {
	version, err := client.Version(ctx)
	if err != nil {
		return fmt.Errorf("%w: cannot connect (make sure Ollama is running): %v", domain.ErrUnavailable, err)
	}
	log.InfoContext(ctx, "ollama is running", slog.String("version", version))

	models, err := client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("%w: could not fetch model list: %v", domain.ErrUnavailable, err)
	}

	if !slices.Contains(models, model) {
		return fmt.Errorf("%w: %s not found (available: %s); run: ollama pull %s",
			domain.ErrModelMissing, model, strings.Join(models, ", "), model)
	}

	log.InfoContext(ctx, "model is available", slog.String("model", model))
	return nil
}
