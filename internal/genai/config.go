package genai

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Env declares the environment variable names used to override config values.
type Env struct {
	APIKey            string
	BaseURL           string
	ExtractionModel   string
	InsightModel      string
	LetterModel       string
	LetterTemperature string
	Timeout           string
}

// Config holds the Gemini API connection settings and per-operation model
// assignments. The API key is provided by environment or overlay only; it is
// never logged.
type Config struct {
	APIKey            string  `toml:"api_key"`
	BaseURL           string  `toml:"base_url"`
	ExtractionModel   string  `toml:"extraction_model"`
	InsightModel      string  `toml:"insight_model"`
	LetterModel       string  `toml:"letter_model"`
	LetterTemperature float64 `toml:"letter_temperature"`
	Timeout           string  `toml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	c.loadEnv(env)
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.ExtractionModel != "" {
		c.ExtractionModel = overlay.ExtractionModel
	}
	if overlay.InsightModel != "" {
		c.InsightModel = overlay.InsightModel
	}
	if overlay.LetterModel != "" {
		c.LetterModel = overlay.LetterModel
	}
	if overlay.LetterTemperature != 0 {
		c.LetterTemperature = overlay.LetterTemperature
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if c.ExtractionModel == "" {
		c.ExtractionModel = "gemini-3-flash-preview"
	}
	if c.InsightModel == "" {
		c.InsightModel = "gemini-3-pro-preview"
	}
	if c.LetterModel == "" {
		c.LetterModel = "gemini-3-flash-preview"
	}
	if c.LetterTemperature == 0 {
		c.LetterTemperature = 0.7
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := os.Getenv(env.APIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(env.BaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(env.ExtractionModel); v != "" {
		c.ExtractionModel = v
	}
	if v := os.Getenv(env.InsightModel); v != "" {
		c.InsightModel = v
	}
	if v := os.Getenv(env.LetterModel); v != "" {
		c.LetterModel = v
	}
	if v := os.Getenv(env.LetterTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.LetterTemperature = t
		}
	}
	if v := os.Getenv(env.Timeout); v != "" {
		c.Timeout = v
	}
}

func (c *Config) validate() error {
	if c.LetterTemperature < 0 || c.LetterTemperature > 2 {
		return fmt.Errorf("invalid letter_temperature: %v", c.LetterTemperature)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
