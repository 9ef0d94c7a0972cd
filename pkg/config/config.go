package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// rate limits per minute for categorizer requests
const (
	ProductionRateLimit  = 15
	DevelopmentRateLimit = 60
)

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen       string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server read and write timeout"`
		MaxBodySize  int64         `yaml:"max_body_size" json:"max_body_size" jsonschema:"default=1048576,minimum=1024,description=Maximum request body size in bytes"`
		MaxBulkItems int           `yaml:"max_bulk_items" json:"max_bulk_items" jsonschema:"default=1000,minimum=1,description=Maximum number of rows in one bulk import"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedsense.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for feedback categorization"`

	Auth struct {
		JWTSecret string `yaml:"jwt_secret" json:"jwt_secret" jsonschema:"description=HMAC secret used to verify bearer tokens (can use environment variable)"`
	} `yaml:"auth" json:"auth" jsonschema:"description=Authentication configuration"`
}

// BatchConfig holds batch categorization settings
type BatchConfig struct {
	Size       int           `yaml:"size" json:"size" jsonschema:"default=10,minimum=1,description=Default number of texts per categorization request"`
	MaxSize    int           `yaml:"max_size" json:"max_size" jsonschema:"default=50,minimum=1,description=Upper bound for client-requested batch size"`
	Delay      time.Duration `yaml:"delay" json:"delay" jsonschema:"default=1s,description=Pause between consecutive batches"`
	CharBudget int           `yaml:"char_budget" json:"char_budget" jsonschema:"default=8000,minimum=0,description=Target characters per batch request, 0 disables shrinking"`
}

// LLMConfig holds LLM configuration for feedback categorization
type LLMConfig struct {
	Provider     string        `yaml:"provider" json:"provider" jsonschema:"default=openai,enum=openai,enum=anthropic,enum=gemini,description=LLM provider"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=Custom API endpoint (optional)"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable), categorization falls back to keywords if empty"`
	Model        string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1000,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	RateLimit    int           `yaml:"rate_limit" json:"rate_limit" jsonschema:"minimum=0,description=Maximum requests per minute, 15 in production and 60 in debug mode if not set"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	Batch        BatchConfig   `yaml:"batch" json:"batch" jsonschema:"description=Batch categorization settings"`
}

// default models per provider
var defaultModels = map[string]string{
	"openai":    "gpt-4o-mini",
	"anthropic": "claude-3-5-haiku-latest",
	"gemini":    "gemini-1.5-flash",
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse makes configuration from YAML data, expands environment variables and sets defaults
func Parse(data []byte) (*Config, error) {
	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults set, used when no config file is given
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

func (cfg *Config) setDefaults() {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = 1024 * 1024
	}
	if cfg.Server.MaxBulkItems == 0 {
		cfg.Server.MaxBulkItems = 1000
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedsense.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for LLM
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultModels[cfg.LLM.Provider]
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 1000
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
	if cfg.LLM.Batch.Size == 0 {
		cfg.LLM.Batch.Size = 10
	}
	if cfg.LLM.Batch.MaxSize == 0 {
		cfg.LLM.Batch.MaxSize = 50
	}
	if cfg.LLM.Batch.Delay == 0 {
		cfg.LLM.Batch.Delay = time.Second
	}
	if cfg.LLM.Batch.CharBudget == 0 {
		cfg.LLM.Batch.CharBudget = 8000
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate LLM config
	if _, ok := defaultModels[cfg.LLM.Provider]; !ok {
		return fmt.Errorf("llm.provider %q is not supported", cfg.LLM.Provider)
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.MaxTokens < 1 {
		return fmt.Errorf("llm.max_tokens must be positive")
	}
	if cfg.LLM.RateLimit < 0 {
		return fmt.Errorf("llm.rate_limit must be non-negative")
	}
	if cfg.LLM.Batch.Size < 1 {
		return fmt.Errorf("llm.batch.size must be at least 1")
	}
	if cfg.LLM.Batch.MaxSize < cfg.LLM.Batch.Size {
		return fmt.Errorf("llm.batch.max_size must not be less than llm.batch.size")
	}
	if cfg.LLM.Batch.Delay < 0 {
		return fmt.Errorf("llm.batch.delay must be non-negative")
	}
	if cfg.LLM.Batch.CharBudget < 0 {
		return fmt.Errorf("llm.batch.char_budget must be non-negative")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.MaxBodySize < 1024 {
		return fmt.Errorf("server.max_body_size must be at least 1024 bytes")
	}

	return nil
}

// EffectiveRateLimit returns configured rate limit or the environment default
func (c *Config) EffectiveRateLimit(dbg bool) int {
	if c.LLM.RateLimit > 0 {
		return c.LLM.RateLimit
	}
	if dbg {
		return DevelopmentRateLimit
	}
	return ProductionRateLimit
}

// GetServerConfig returns listen address and timeout of the HTTP server
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetRequestLimits returns request body size limit and max rows of a bulk import
func (c *Config) GetRequestLimits() (maxBodySize int64, maxBulkItems int) {
	return c.Server.MaxBodySize, c.Server.MaxBulkItems
}
