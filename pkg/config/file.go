package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the optional YAML config file. Absent fields leave the
// corresponding Config value untouched.
type FileConfig struct {
	Model                string `yaml:"model"`
	BaseURL              string `yaml:"base_url"`
	AssistantName        string `yaml:"assistant_name"`
	AssistantDescription string `yaml:"assistant_description"`
	Instructions         string `yaml:"instructions"`
	WeatherBaseURL       string `yaml:"weather_base_url"`
	WeatherAPIKey        string `yaml:"weather_api_key"`
	QuoteBaseURL         string `yaml:"quote_base_url"`
	QuoteAPIKey          string `yaml:"quote_api_key"`
	MaxPolls             *int   `yaml:"max_polls"`
	PollIntervalSeconds  *int   `yaml:"poll_interval_seconds"`
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}

// Apply overlays the file values onto cfg and returns the result.
func (f FileConfig) Apply(cfg Config) Config {
	if v := strings.TrimSpace(f.Model); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(f.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(f.AssistantName); v != "" {
		cfg.AssistantName = v
	}
	if v := strings.TrimSpace(f.AssistantDescription); v != "" {
		cfg.AssistantDescription = v
	}
	if v := strings.TrimSpace(f.Instructions); v != "" {
		cfg.Instructions = v
	}
	if v := strings.TrimSpace(f.WeatherBaseURL); v != "" {
		cfg.WeatherBaseURL = v
	}
	if v := strings.TrimSpace(f.WeatherAPIKey); v != "" {
		cfg.WeatherAPIKey = v
	}
	if v := strings.TrimSpace(f.QuoteBaseURL); v != "" {
		cfg.QuoteBaseURL = v
	}
	if v := strings.TrimSpace(f.QuoteAPIKey); v != "" {
		cfg.QuoteAPIKey = v
	}
	if f.MaxPolls != nil {
		cfg.MaxPolls = *f.MaxPolls
	}
	if f.PollIntervalSeconds != nil {
		cfg.PollInterval = time.Duration(*f.PollIntervalSeconds) * time.Second
	}
	return cfg
}
