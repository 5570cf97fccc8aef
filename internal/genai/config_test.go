package genai_test

import (
	"testing"
	"time"

	"rukun/internal/genai"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &genai.Config{}
	if err := cfg.Finalize(&genai.Env{}); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	if cfg.BaseURL != "https://generativelanguage.googleapis.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.ExtractionModel != "gemini-3-flash-preview" {
		t.Errorf("ExtractionModel = %q", cfg.ExtractionModel)
	}
	if cfg.InsightModel != "gemini-3-pro-preview" {
		t.Errorf("InsightModel = %q", cfg.InsightModel)
	}
	if cfg.LetterModel != "gemini-3-flash-preview" {
		t.Errorf("LetterModel = %q", cfg.LetterModel)
	}
	if cfg.LetterTemperature != 0.7 {
		t.Errorf("LetterTemperature = %v, want 0.7", cfg.LetterTemperature)
	}
	if cfg.TimeoutDuration() != 30*time.Second {
		t.Errorf("TimeoutDuration = %v, want 30s", cfg.TimeoutDuration())
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty without environment", cfg.APIKey)
	}
}

func TestConfigEnvOverrides(t *testing.T) {
	env := &genai.Env{
		APIKey:            "TEST_GENAI_API_KEY",
		BaseURL:           "TEST_GENAI_BASE_URL",
		ExtractionModel:   "TEST_GENAI_EXTRACTION_MODEL",
		InsightModel:      "TEST_GENAI_INSIGHT_MODEL",
		LetterModel:       "TEST_GENAI_LETTER_MODEL",
		LetterTemperature: "TEST_GENAI_LETTER_TEMPERATURE",
		Timeout:           "TEST_GENAI_TIMEOUT",
	}

	t.Setenv("TEST_GENAI_API_KEY", "secret")
	t.Setenv("TEST_GENAI_BASE_URL", "http://localhost:9999")
	t.Setenv("TEST_GENAI_EXTRACTION_MODEL", "extract-x")
	t.Setenv("TEST_GENAI_INSIGHT_MODEL", "insight-x")
	t.Setenv("TEST_GENAI_LETTER_MODEL", "letter-x")
	t.Setenv("TEST_GENAI_LETTER_TEMPERATURE", "1.2")
	t.Setenv("TEST_GENAI_TIMEOUT", "10s")

	cfg := &genai.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.ExtractionModel != "extract-x" {
		t.Errorf("ExtractionModel = %q", cfg.ExtractionModel)
	}
	if cfg.InsightModel != "insight-x" {
		t.Errorf("InsightModel = %q", cfg.InsightModel)
	}
	if cfg.LetterModel != "letter-x" {
		t.Errorf("LetterModel = %q", cfg.LetterModel)
	}
	if cfg.LetterTemperature != 1.2 {
		t.Errorf("LetterTemperature = %v", cfg.LetterTemperature)
	}
	if cfg.TimeoutDuration() != 10*time.Second {
		t.Errorf("TimeoutDuration = %v", cfg.TimeoutDuration())
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  genai.Config
	}{
		{"temperature too high", genai.Config{LetterTemperature: 2.5, Timeout: "30s"}},
		{"temperature negative", genai.Config{LetterTemperature: -0.1, Timeout: "30s"}},
		{"bad timeout", genai.Config{LetterTemperature: 0.7, Timeout: "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(&genai.Env{}); err == nil {
				t.Error("Finalize succeeded, want error")
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := genai.Config{
		BaseURL:           "https://base",
		ExtractionModel:   "base-extract",
		LetterTemperature: 0.7,
		Timeout:           "30s",
	}
	overlay := genai.Config{
		APIKey:          "overlay-key",
		ExtractionModel: "overlay-extract",
	}

	base.Merge(&overlay)

	if base.APIKey != "overlay-key" {
		t.Errorf("APIKey = %q", base.APIKey)
	}
	if base.ExtractionModel != "overlay-extract" {
		t.Errorf("ExtractionModel = %q", base.ExtractionModel)
	}
	if base.BaseURL != "https://base" {
		t.Errorf("BaseURL = %q, want untouched base value", base.BaseURL)
	}
	if base.Timeout != "30s" {
		t.Errorf("Timeout = %q, want untouched base value", base.Timeout)
	}
}
