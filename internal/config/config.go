package config

import "time"

// Config is the root application configuration.
type Config struct {
	Ollama    OllamaConfig    `yaml:"ollama"`
	Files     FilesConfig     `yaml:"files"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
}

// OllamaConfig holds Ollama server connection and sampling settings.
type OllamaConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"OLLAMA_BASE_URL"        env-default:"http://localhost:11434"`
	Model          string        `yaml:"model"           env:"OLLAMA_MODEL"           env-default:"llama3.2:3b"`
	Temperature    float64       `yaml:"temperature"     env:"OLLAMA_TEMPERATURE"     env-default:"0.3"`
	NumPredict     int           `yaml:"num_predict"     env:"OLLAMA_NUM_PREDICT"     env-default:"200"`
	TopP           float64       `yaml:"top_p"           env:"OLLAMA_TOP_P"           env-default:"0.9"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"OLLAMA_REQUEST_TIMEOUT" env-default:"60s"`
	MaxAttempts    int           `yaml:"max_attempts"    env:"OLLAMA_MAX_ATTEMPTS"    env-default:"3"`
	RetryDelay     time.Duration `yaml:"retry_delay"     env:"OLLAMA_RETRY_DELAY"     env-default:"2s"`
}

// FilesConfig holds input and output file locations.
type FilesConfig struct {
	WordListPath  string `yaml:"word_list_path" env:"KAMUSGEN_WORD_LIST_PATH" env-default:"word.csv"`
	ReferencePath string `yaml:"reference_path" env:"KAMUSGEN_REFERENCE_PATH" env-default:"reference.csv"`
	OutputPath    string `yaml:"output_path"    env:"KAMUSGEN_OUTPUT_PATH"    env-default:"generated_definitions_ollama.csv"`
}

// GeneratorConfig holds batch pipeline settings.
type GeneratorConfig struct {
	RequestDelay  time.Duration `yaml:"request_delay"  env:"KAMUSGEN_REQUEST_DELAY"  env-default:"500ms"`
	Limit         int           `yaml:"limit"          env:"KAMUSGEN_LIMIT"          env-default:"0"`
	ProgressEvery int           `yaml:"progress_every" env:"KAMUSGEN_PROGRESS_EVERY" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
