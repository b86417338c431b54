package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrUnavailable means the Ollama server could not be reached or probed.
	ErrUnavailable = errors.New("ollama unavailable")
	// ErrModelMissing means the server is running but the configured model
	// is not installed.
	ErrModelMissing = errors.New("model not installed")
	// ErrMissingFile means an expected input file does not exist.
	ErrMissingFile = errors.New("input file missing")
	// ErrLoad means an input file exists but could not be read or parsed.
	ErrLoad = errors.New("load error")
	// ErrWrite means the output file could not be created or written.
	ErrWrite = errors.New("write error")
)
