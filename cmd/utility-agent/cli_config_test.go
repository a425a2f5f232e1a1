// Tests for config assembly precedence: defaults < file < env < flags.
package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	configpkg "github.com/sgorecki/utility-agent/pkg/config"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("utility-agent", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func clearAgentEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "OPENWEATHER_API_KEY", "ALPHAVANTAGE_API_KEY"} {
		t.Setenv(key, "")
	}
}

func TestParseConfigKeepsFileBaseURLWithoutEnv(t *testing.T) {
	clearAgentEnv(t)
	path := writeConfigFile(t, "base_url: https://proxy.example.com/v1\n")

	cfg, err := parseConfig(newTestFlagSet(), []string{"-config", path})
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.BaseURL != "https://proxy.example.com/v1" {
		t.Fatalf("file base_url lost: got %q", cfg.BaseURL)
	}
}

func TestParseConfigEnvOverridesFile(t *testing.T) {
	clearAgentEnv(t)
	t.Setenv("OPENAI_BASE_URL", "https://env.example.com/v1")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	path := writeConfigFile(t, "base_url: https://proxy.example.com/v1\nmodel: gpt-4o-mini\n")

	cfg, err := parseConfig(newTestFlagSet(), []string{"-config", path})
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.BaseURL != "https://env.example.com/v1" {
		t.Fatalf("expected env base url to win, got %q", cfg.BaseURL)
	}
	if cfg.Model != "gpt-4o" {
		t.Fatalf("expected env model to win, got %q", cfg.Model)
	}
}

func TestParseConfigFlagsBeatFileAndEnv(t *testing.T) {
	clearAgentEnv(t)
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	path := writeConfigFile(t, "model: gpt-4o-mini\nmax_polls: 5\n")

	cfg, err := parseConfig(newTestFlagSet(), []string{"-config", path, "-model", "gpt-4.1", "-poll_interval", "2s"})
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Model != "gpt-4.1" {
		t.Fatalf("expected flag model to win, got %q", cfg.Model)
	}
	if cfg.MaxPolls != 5 {
		t.Fatalf("expected file max_polls to survive unpassed flag, got %d", cfg.MaxPolls)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Fatalf("expected flag poll interval, got %v", cfg.PollInterval)
	}
}

func TestParseConfigDefaultsWithoutFileOrEnv(t *testing.T) {
	clearAgentEnv(t)

	cfg, err := parseConfig(newTestFlagSet(), nil)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	defaults := configpkg.DefaultConfig()
	if cfg.Model != defaults.Model || cfg.MaxPolls != defaults.MaxPolls {
		t.Fatalf("expected defaults, got model=%q max_polls=%d", cfg.Model, cfg.MaxPolls)
	}
	if cfg.APIKey != "" {
		t.Fatalf("expected empty api key without env, got %q", cfg.APIKey)
	}
}
