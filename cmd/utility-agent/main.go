// Package main provides the utility-agent CLI: a conversational console
// agent that answers weather and stock price questions through a hosted
// assistant.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sgorecki/utility-agent/pkg/agent"
	"github.com/sgorecki/utility-agent/pkg/assistant"
	loggerpkg "github.com/sgorecki/utility-agent/pkg/logger"
	"github.com/sgorecki/utility-agent/pkg/lookup"
	"github.com/sgorecki/utility-agent/pkg/tools"
)

// main is the program entry point.
func main() {
	cfg, err := parseCLIConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.APIKey == "" {
		_, _ = fmt.Fprintln(os.Stderr, "Error: OPENAI_API_KEY environment variable not set.")
		_, _ = fmt.Fprintln(os.Stderr, "Please set it in your .env file or environment variables.")
		os.Exit(1)
	}

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)

	lookups := lookup.New(lookup.Config{
		WeatherBaseURL: cfg.WeatherBaseURL,
		WeatherAPIKey:  cfg.WeatherAPIKey,
		QuoteBaseURL:   cfg.QuoteBaseURL,
		QuoteAPIKey:    cfg.QuoteAPIKey,
		Verbose:        cfg.Verbose,
		Logger:         appLogger,
	})
	registry := tools.New(lookups, cfg.Verbose, appLogger)
	svc := assistant.NewOpenAIService(cfg.APIKey, cfg.BaseURL)

	driver, err := agent.New(context.Background(), cfg, svc, registry, agent.WithLogger(appLogger))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runREPL(driver, replOptions{
		Verbose: cfg.Verbose,
		Logger:  appLogger,
	}, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
