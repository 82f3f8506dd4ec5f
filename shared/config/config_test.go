package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func loadFrom(t *testing.T, yaml string) (*Config, error) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	return Load()
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := loadFrom(t, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Search.MaxResults != 10 {
		t.Errorf("MaxResults = %d, want 10", cfg.Search.MaxResults)
	}
	if cfg.Search.CacheCapacity != 32 {
		t.Errorf("CacheCapacity = %d, want 32", cfg.Search.CacheCapacity)
	}
	if cfg.Search.CleanupSchedule != "0 */10 * * * *" {
		t.Errorf("CleanupSchedule = %q", cfg.Search.CleanupSchedule)
	}
	if cfg.Script.Generator != "template" {
		t.Errorf("Generator = %q, want template", cfg.Script.Generator)
	}
	if cfg.Script.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.Script.Model)
	}
	if cfg.Script.StepDelay() != 1500*time.Millisecond {
		t.Errorf("StepDelay = %v, want 1.5s", cfg.Script.StepDelay())
	}
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.YouTube.APIKey != "yt-key" {
		t.Errorf("APIKey = %q, want env value", cfg.YouTube.APIKey)
	}
}

func TestLoadYAMLValues(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := loadFrom(t, `
server:
  port: 9000
youtube:
  api_key: from-yaml
search:
  max_results: 25
  cache_capacity: 64
  cache_max_age_minutes: 30
script:
  generator: template
  step_delay_ms: 10
`)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.YouTube.APIKey != "from-yaml" {
		t.Errorf("APIKey = %q", cfg.YouTube.APIKey)
	}
	if cfg.Search.MaxResults != 25 {
		t.Errorf("MaxResults = %d, want 25", cfg.Search.MaxResults)
	}
	if cfg.Search.CacheMaxAge() != 30*time.Minute {
		t.Errorf("CacheMaxAge = %v, want 30m", cfg.Search.CacheMaxAge())
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"max results too high", "search:\n  max_results: 100\n"},
		{"unknown generator", "script:\n  generator: markov\n"},
		{"gemini without key", "script:\n  generator: gemini\n"},
		{"port out of range", "server:\n  port: 99999\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("YOUTUBE_API_KEY", "")
			t.Setenv("GEMINI_API_KEY", "")
			if _, err := loadFrom(t, tt.yaml); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}

	t.Run("gemini with key passes", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "g-key")
		cfg, err := loadFrom(t, "script:\n  generator: gemini\n")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Script.GeminiAPIKey != "g-key" {
			t.Errorf("GeminiAPIKey = %q", cfg.Script.GeminiAPIKey)
		}
	})
}
