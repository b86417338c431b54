package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (t.Chdir needs Go 1.24+.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "kamusgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
ollama:
  base_url: "http://127.0.0.1:11434"
  model: "llama3.2:3b"
  temperature: 0.5
  num_predict: 150
  top_p: 0.8
  request_timeout: "30s"
  max_attempts: 5
  retry_delay: "1s"

files:
  word_list_path: "in/word.csv"
  reference_path: "in/reference.csv"
  output_path: "out/results.csv"

generator:
  request_delay: "250ms"
  limit: 100
  progress_every: 25

log:
  level: "debug"
  format: "json"
`

func TestLoad_FromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "llama3.2:3b", cfg.Ollama.Model)
	assert.Equal(t, 0.5, cfg.Ollama.Temperature)
	assert.Equal(t, 150, cfg.Ollama.NumPredict)
	assert.Equal(t, 0.8, cfg.Ollama.TopP)
	assert.Equal(t, 30*time.Second, cfg.Ollama.RequestTimeout)
	assert.Equal(t, 5, cfg.Ollama.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Ollama.RetryDelay)

	assert.Equal(t, "in/word.csv", cfg.Files.WordListPath)
	assert.Equal(t, "in/reference.csv", cfg.Files.ReferencePath)
	assert.Equal(t, "out/results.csv", cfg.Files.OutputPath)

	assert.Equal(t, 250*time.Millisecond, cfg.Generator.RequestDelay)
	assert.Equal(t, 100, cfg.Generator.Limit)
	assert.Equal(t, 25, cfg.Generator.ProgressEvery)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_DefaultsFromEnvOnly(t *testing.T) {
	// Run from a directory without kamusgen.yaml so only defaults apply.
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "llama3.2:3b", cfg.Ollama.Model)
	assert.Equal(t, 0.3, cfg.Ollama.Temperature)
	assert.Equal(t, 200, cfg.Ollama.NumPredict)
	assert.Equal(t, 0.9, cfg.Ollama.TopP)
	assert.Equal(t, 60*time.Second, cfg.Ollama.RequestTimeout)
	assert.Equal(t, 3, cfg.Ollama.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Ollama.RetryDelay)
	assert.Equal(t, "word.csv", cfg.Files.WordListPath)
	assert.Equal(t, "reference.csv", cfg.Files.ReferencePath)
	assert.Equal(t, "generated_definitions_ollama.csv", cfg.Files.OutputPath)
	assert.Equal(t, 500*time.Millisecond, cfg.Generator.RequestDelay)
	assert.Equal(t, 0, cfg.Generator.Limit)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("OLLAMA_MODEL", "gemma2:2b")
	t.Setenv("OLLAMA_MAX_ATTEMPTS", "7")
	t.Setenv("KAMUSGEN_OUTPUT_PATH", "custom.csv")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemma2:2b", cfg.Ollama.Model)
	assert.Equal(t, 7, cfg.Ollama.MaxAttempts)
	assert.Equal(t, "custom.csv", cfg.Files.OutputPath)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid defaults", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty model", mutate: func(c *Config) { c.Ollama.Model = "" }, wantErr: true},
		{name: "empty base url", mutate: func(c *Config) { c.Ollama.BaseURL = "" }, wantErr: true},
		{name: "temperature too high", mutate: func(c *Config) { c.Ollama.Temperature = 2.5 }, wantErr: true},
		{name: "negative temperature", mutate: func(c *Config) { c.Ollama.Temperature = -0.1 }, wantErr: true},
		{name: "zero num_predict", mutate: func(c *Config) { c.Ollama.NumPredict = 0 }, wantErr: true},
		{name: "top_p above one", mutate: func(c *Config) { c.Ollama.TopP = 1.5 }, wantErr: true},
		{name: "zero max_attempts", mutate: func(c *Config) { c.Ollama.MaxAttempts = 0 }, wantErr: true},
		{name: "negative retry_delay", mutate: func(c *Config) { c.Ollama.RetryDelay = -time.Second }, wantErr: true},
		{name: "empty output path", mutate: func(c *Config) { c.Files.OutputPath = "" }, wantErr: true},
		{name: "negative request_delay", mutate: func(c *Config) { c.Generator.RequestDelay = -time.Millisecond }, wantErr: true},
		{name: "zero progress_every", mutate: func(c *Config) { c.Generator.ProgressEvery = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Ollama: OllamaConfig{
					BaseURL:        "http://localhost:11434",
					Model:          "llama3.2:3b",
					Temperature:    0.3,
					NumPredict:     200,
					TopP:           0.9,
					RequestTimeout: 60 * time.Second,
					MaxAttempts:    3,
					RetryDelay:     2 * time.Second,
				},
				Files: FilesConfig{
					WordListPath:  "word.csv",
					ReferencePath: "reference.csv",
					OutputPath:    "out.csv",
				},
				Generator: GeneratorConfig{
					RequestDelay:  500 * time.Millisecond,
					ProgressEvery: 10,
				},
			}
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
