package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Ollama.validate(); err != nil {
		return fmt.Errorf("ollama: %w", err)
	}
	if err := c.Files.validate(); err != nil {
		return fmt.Errorf("files: %w", err)
	}
	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	return nil
}

func (o *OllamaConfig) validate() error {
	if o.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if o.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if o.Temperature < 0 || o.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", o.Temperature)
	}
	if o.NumPredict <= 0 {
		return fmt.Errorf("num_predict must be > 0 (got %d)", o.NumPredict)
	}
	if o.TopP <= 0 || o.TopP > 1 {
		return fmt.Errorf("top_p must be in (0, 1] (got %v)", o.TopP)
	}
	if o.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", o.RequestTimeout)
	}
	if o.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", o.MaxAttempts)
	}
	if o.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", o.RetryDelay)
	}
	return nil
}

func (f *FilesConfig) validate() error {
	if f.WordListPath == "" {
		return fmt.Errorf("word_list_path must not be empty")
	}
	if f.ReferencePath == "" {
		return fmt.Errorf("reference_path must not be empty")
	}
	if f.OutputPath == "" {
		return fmt.Errorf("output_path must not be empty")
	}
	return nil
}

func (g *GeneratorConfig) validate() error {
	if g.RequestDelay < 0 {
		return fmt.Errorf("request_delay must be >= 0 (got %v)", g.RequestDelay)
	}
	if g.Limit < 0 {
		return fmt.Errorf("limit must be >= 0 (got %d)", g.Limit)
	}
	if g.ProgressEvery < 1 {
		return fmt.Errorf("progress_every must be >= 1 (got %d)", g.ProgressEvery)
	}
	return nil
}
