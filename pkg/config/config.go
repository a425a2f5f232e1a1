package config

import (
	"strings"
	"time"
)

// Default endpoints and credentials. The lookup keys are the free-tier demo
// values; override them via environment variables or the config file.
const (
	DefaultModel          = "gpt-3.5-turbo"
	DefaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	DefaultWeatherAPIKey  = "da0f9c8d90bde7e619c3ec47766a42f4"
	DefaultQuoteBaseURL   = "https://www.alphavantage.co/query"
	DefaultQuoteAPIKey    = "DEMO_KEY"

	DefaultMaxPolls     = 30
	DefaultPollInterval = time.Second
)

const defaultAssistantName = "UtilityAgent"

const defaultAssistantDescription = "An agent that can look up weather information and stock prices."

const defaultInstructions = `You are a helpful assistant that can look up weather information for cities and stock prices for ticker symbols.

- When asked about weather in a city, call the get_weather function with the city name.
  - If the city name appears to be misspelled, suggest the correct spelling and respond with "I think you meant [correct city]. Please try asking about that city instead."
  - Only call the function with valid city names.
- When asked about a stock price, call the get_stock_price function with the ticker symbol.
  - Only call the function with valid ticker symbols.
- For general questions like "How are you?", "Hello", etc., respond with "I'm a utility agent that can help you with weather and stock prices. How can I assist you today?"
- For any other queries, respond with "I'm sorry, I can only look up weather and stock prices. Please ask me about the weather in a city or the price of a stock."

Always be polite and concise in your responses. Do not call functions with invalid inputs.`

// Config holds all runtime configuration for the agent.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	AssistantName        string
	AssistantDescription string
	Instructions         string

	WeatherBaseURL string
	WeatherAPIKey  string
	QuoteBaseURL   string
	QuoteAPIKey    string

	MaxPolls     int
	PollInterval time.Duration
	Verbose      bool
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		Model:                DefaultModel,
		AssistantName:        defaultAssistantName,
		AssistantDescription: defaultAssistantDescription,
		Instructions:         defaultInstructions,
		WeatherBaseURL:       DefaultWeatherBaseURL,
		WeatherAPIKey:        DefaultWeatherAPIKey,
		QuoteBaseURL:         DefaultQuoteBaseURL,
		QuoteAPIKey:          DefaultQuoteAPIKey,
		MaxPolls:             DefaultMaxPolls,
		PollInterval:         DefaultPollInterval,
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.AssistantName = strings.TrimSpace(cfg.AssistantName)
	cfg.WeatherBaseURL = strings.TrimSpace(cfg.WeatherBaseURL)
	cfg.WeatherAPIKey = strings.TrimSpace(cfg.WeatherAPIKey)
	cfg.QuoteBaseURL = strings.TrimSpace(cfg.QuoteBaseURL)
	cfg.QuoteAPIKey = strings.TrimSpace(cfg.QuoteAPIKey)

	if cfg.AssistantName == "" {
		cfg.AssistantName = defaultAssistantName
	}
	if strings.TrimSpace(cfg.Instructions) == "" {
		cfg.Instructions = defaultInstructions
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = DefaultMaxPolls
	}
	// Zero means poll back to back; only negative values are invalid.
	if cfg.PollInterval < 0 {
		cfg.PollInterval = 0
	}
	return cfg
}
