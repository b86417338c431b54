package generator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/danuarta/kamusgen/internal/app/wordlist"
	"github.com/danuarta/kamusgen/internal/config"
	"github.com/danuarta/kamusgen/internal/domain"
)

// DefinitionRequester produces one definition (or a failure sentinel) per word.
type DefinitionRequester interface {
	Generate(ctx context.Context, word string) string
}

// Pipeline drives the batch: one requester call per word, reference lookup,
// fixed pacing between requests, coarse progress logging.
type Pipeline struct {
	requester DefinitionRequester
	cfg       config.GeneratorConfig
	log       *slog.Logger
}

// NewPipeline creates a Pipeline.
func NewPipeline(requester DefinitionRequester, cfg config.GeneratorConfig, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		requester: requester,
		cfg:       cfg,
		log:       logger,
	}
}

// Run processes words strictly in input order and returns one result per word.
// Per-word failures surface only as sentinel strings in the results; the batch
// never aborts early. A reference definition is attached iff an exact lookup
// succeeds and the reference text is non-empty.
func (p *Pipeline) Run(ctx context.Context, words []string, refs *wordlist.ReferenceTable) []domain.GenerationResult {
	if p.cfg.Limit > 0 && len(words) > p.cfg.Limit {
		p.log.InfoContext(ctx, "word list truncated", slog.Int("limit", p.cfg.Limit), slog.Int("total", len(words)))
		words = words[:p.cfg.Limit]
	}

	p.log.InfoContext(ctx, "generating definitions", slog.Int("words", len(words)))

	results := make([]domain.GenerationResult, 0, len(words))
	failed := 0

	for i, word := range words {
		definition := p.requester.Generate(ctx, word)
		if strings.HasPrefix(definition, "Error: ") {
			failed++
		}

		result := domain.GenerationResult{
			Word:                word,
			GeneratedDefinition: definition,
		}
		if refs != nil {
			if ref, ok := refs.Lookup(word); ok && ref != "" {
				result.ReferenceDefinition = &ref
			}
		}
		results = append(results, result)

		processed := i + 1
		if processed%p.cfg.ProgressEvery == 0 && processed < len(words) {
			p.log.InfoContext(ctx, "progress",
				slog.Int("processed", processed),
				slog.Int("total", len(words)),
			)
		}

		// Courtesy pacing toward the local server; skipped after the last word.
		if processed < len(words) && p.cfg.RequestDelay > 0 {
			time.Sleep(p.cfg.RequestDelay)
		}
	}

	p.log.InfoContext(ctx, "generation complete",
		slog.Int("total", len(results)),
		slog.Int("failed", failed),
	)

	return results
}
