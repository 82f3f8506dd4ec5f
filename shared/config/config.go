package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Search  SearchConfig  `yaml:"search"`
	Script  ScriptConfig  `yaml:"script"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
}

type SearchConfig struct {
	MaxResults         int64  `yaml:"max_results"`
	CacheCapacity      int    `yaml:"cache_capacity"`
	CacheMaxAgeMinutes int    `yaml:"cache_max_age_minutes"`
	CleanupSchedule    string `yaml:"cleanup_schedule"`
}

type ScriptConfig struct {
	Generator    string `yaml:"generator"`
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string `yaml:"model"`
	StepDelayMs  int    `yaml:"step_delay_ms"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err != nil {
		// Config file is optional; environment variables cover the secrets
		// and defaults cover the rest.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.Script.GeminiAPIKey == "" {
		cfg.Script.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = 10
	}
	if cfg.Search.CacheCapacity == 0 {
		cfg.Search.CacheCapacity = 32
	}
	if cfg.Search.CleanupSchedule == "" {
		cfg.Search.CleanupSchedule = "0 */10 * * * *" // Every 10 minutes
	}
	if cfg.Script.Generator == "" {
		cfg.Script.Generator = "template"
	}
	if cfg.Script.Model == "" {
		cfg.Script.Model = "gemini-2.5-flash"
	}
	if cfg.Script.StepDelayMs == 0 {
		cfg.Script.StepDelayMs = 1500
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Search.MaxResults < 1 || c.Search.MaxResults > 50 {
		return fmt.Errorf("search max results must be between 1 and 50, got %d", c.Search.MaxResults)
	}
	switch c.Script.Generator {
	case "template":
	case "gemini":
		if c.Script.GeminiAPIKey == "" {
			return fmt.Errorf("Gemini API key is required for the gemini generator (set GEMINI_API_KEY or script.gemini_api_key)")
		}
	default:
		return fmt.Errorf("unknown script generator %q (expected template or gemini)", c.Script.Generator)
	}
	return nil
}

// CacheMaxAge returns the cache expiry window; zero means entries never expire.
func (c *SearchConfig) CacheMaxAge() time.Duration {
	return time.Duration(c.CacheMaxAgeMinutes) * time.Minute
}

// StepDelay returns the simulated processing delay for the template generator.
func (c *ScriptConfig) StepDelay() time.Duration {
	return time.Duration(c.StepDelayMs) * time.Millisecond
}
