// Command kamusgen batch-generates Indonesian KBBI-style definitions for a
// word list by querying a local Ollama server, pairing each generated
// definition with its reference definition when one exists, and writing the
// results to a flat CSV.
//
// Flags:
//
//	-config   path to YAML config (optional; falls back to ./kamusgen.yaml, then env)
//	-dry-run  probe the server and load inputs, but skip generation
//	-limit    process at most N words (0 = all; overrides config)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/danuarta/kamusgen/internal/adapter/ollama"
	"github.com/danuarta/kamusgen/internal/app"
	"github.com/danuarta/kamusgen/internal/app/generator"
	"github.com/danuarta/kamusgen/internal/app/output"
	"github.com/danuarta/kamusgen/internal/app/wordlist"
	"github.com/danuarta/kamusgen/internal/config"
	"github.com/danuarta/kamusgen/pkg/ctxutil"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	dryRun := flag.Bool("dry-run", false, "probe and load inputs without generating")
	limit := flag.Int("limit", -1, "process at most N words (0 = all)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *limit >= 0 {
		cfg.Generator.Limit = *limit
	}

	logger := app.NewLogger(cfg.Log)

	runID := ctxutil.NewRunID()
	logger = logger.With(slog.String("run_id", runID.String()))
	ctx := ctxutil.WithRunID(context.Background(), runID)

	logger.Info("kamusgen starting",
		slog.String("version", app.BuildVersion()),
		slog.String("model", cfg.Ollama.Model),
		slog.String("base_url", cfg.Ollama.BaseURL),
	)

	client := ollama.NewClient(cfg.Ollama, logger)

	if err := generator.CheckAvailability(ctx, client, cfg.Ollama.Model, logger); err != nil {
		logger.Error("availability check failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	words, err := wordlist.LoadWords(cfg.Files.WordListPath)
	if err != nil {
		logger.Error("load word list", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("word list loaded", slog.Int("words", len(words)))

	refs, err := wordlist.LoadReference(cfg.Files.ReferencePath)
	if err != nil {
		logger.Error("load reference definitions", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("reference definitions loaded", slog.Int("entries", refs.Len()))

	if *dryRun {
		logger.Info("dry-run mode: skipping generation")
		return
	}

	requester := generator.NewRequester(client, cfg.Ollama, logger)
	pipeline := generator.NewPipeline(requester, cfg.Generator, logger)

	results := pipeline.Run(ctx, words, refs)

	if err := output.Write(cfg.Files.OutputPath, results); err != nil {
		logger.Error("write output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("results saved", slog.String("path", cfg.Files.OutputPath), slog.Int("records", len(results)))
}
