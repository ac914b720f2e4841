package config

import (
	"fmt"
	"os"
	"strconv"

	"safha/internal/domain"
	models "safha/internal/domain/models/docsystem"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string `yaml:"-"`
	Environment string `yaml:"-"`
	CORSOrigins string `yaml:"-"`
	AuthJWKSURL string `yaml:"-"` // Empty disables authentication
	LogDir      string `yaml:"-"` // Empty disables the log file
	LogMaxFiles int    `yaml:"-"`

	Pagination PaginationConfig `yaml:"pagination"`
	Search     SearchConfig     `yaml:"search"`
}

// PaginationConfig controls page sizes
type PaginationConfig struct {
	PageSize    int `yaml:"page_size"`     // Default characters per page
	MaxPageSize int `yaml:"max_page_size"` // Upper bound for per-request overrides
}

// SearchConfig controls keyword search
type SearchConfig struct {
	MinKeywordLength int `yaml:"min_keyword_length"`
	DefaultLimit     int `yaml:"default_limit"`
	MaxLimit         int `yaml:"max_limit"`
}

// Load reads configuration from the environment, then applies the optional
// YAML file named by CONFIG_FILE on top.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		AuthJWKSURL: getEnv("AUTH_JWKS_URL", ""),
		LogDir:      getEnv("LOG_DIR", ""),
		LogMaxFiles: getEnvInt("LOG_MAX_FILES", 10),
		Pagination: PaginationConfig{
			PageSize:    getEnvInt("PAGE_SIZE", DefaultPageSize),
			MaxPageSize: getEnvInt("MAX_PAGE_SIZE", DefaultMaxPageSize),
		},
		Search: SearchConfig{
			MinKeywordLength: getEnvInt("SEARCH_MIN_KEYWORD_LENGTH", models.DefaultMinKeywordLength),
			DefaultLimit:     getEnvInt("SEARCH_DEFAULT_LIMIT", models.DefaultSearchLimit),
			MaxLimit:         getEnvInt("SEARCH_MAX_LIMIT", models.DefaultSearchMaxLimit),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyFile overlays the pagination and search sections of a YAML file.
// Keys missing from the file keep their current values.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	return c.applyYAML(data)
}

func (c *Config) applyYAML(data []byte) error {
	// Decoding into the populated struct leaves absent keys untouched
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parse config file: %v", domain.ErrConfiguration, err)
	}
	return nil
}

// Validate rejects settings that would make pagination or search degenerate
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.LogMaxFiles, validation.Min(1)),
		validation.Field(&c.Pagination),
		validation.Field(&c.Search),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	return nil
}

// Validate implements validation.Validatable
func (p PaginationConfig) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.PageSize, validation.Required, validation.Min(1)),
		validation.Field(&p.MaxPageSize, validation.Required, validation.Min(p.PageSize)),
	)
}

// Validate implements validation.Validatable
func (s SearchConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.MinKeywordLength, validation.Required, validation.Min(1)),
		validation.Field(&s.DefaultLimit, validation.Required, validation.Min(1), validation.Max(s.MaxLimit)),
		validation.Field(&s.MaxLimit, validation.Required, validation.Min(1)),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to the default when the value is missing or not a number
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s=%q is not an integer, using %d\n", key, value, defaultValue)
		return defaultValue
	}
	return n
}
