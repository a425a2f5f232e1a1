package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	configpkg "github.com/sgorecki/utility-agent/pkg/config"
)

// parseCLIConfig loads env + flags into runtime config.
func parseCLIConfig() (configpkg.Config, error) {
	_ = godotenv.Load()
	return parseConfig(flag.CommandLine, os.Args[1:])
}

// parseConfig assembles the runtime config from fs and the environment.
// Precedence, lowest to highest: built-in defaults, config file, environment,
// explicit flags.
func parseConfig(fs *flag.FlagSet, args []string) (configpkg.Config, error) {
	defaults := configpkg.DefaultConfig()
	configPath := fs.String("config", "", "Optional YAML config file")
	model := fs.String("model", defaults.Model, "Assistant model identifier")
	maxPolls := fs.Int("max_polls", defaults.MaxPolls, "Max run status polls per turn")
	pollInterval := fs.Duration("poll_interval", defaults.PollInterval, "Delay between run status polls")
	verbose := fs.Bool("verbose", defaults.Verbose, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return configpkg.Config{}, err
	}

	cfg := defaults
	if *configPath != "" {
		fileCfg, err := configpkg.LoadFile(*configPath)
		if err != nil {
			return configpkg.Config{}, fmt.Errorf("load config file: %w", err)
		}
		cfg = fileCfg.Apply(cfg)
	}

	// Env overrides apply only when set, so file values survive an empty
	// environment. The API key is the exception: it never comes from the
	// file, and an empty value is the fatal-startup signal.
	cfg.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if v := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("OPENAI_MODEL")); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("OPENWEATHER_API_KEY")); v != "" {
		cfg.WeatherAPIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("ALPHAVANTAGE_API_KEY")); v != "" {
		cfg.QuoteAPIKey = v
	}

	// Flags beat the file and env, but only when actually passed.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model = strings.TrimSpace(*model)
		case "max_polls":
			cfg.MaxPolls = *maxPolls
		case "poll_interval":
			cfg.PollInterval = *pollInterval
		}
	})
	cfg.Verbose = *verbose

	return cfg, nil
}
