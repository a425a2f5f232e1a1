package tools

import (
	"encoding/json"
	"fmt"

	"github.com/sgorecki/utility-agent/pkg/assistant"
	"github.com/sgorecki/utility-agent/pkg/lookup"
)

type stockTool struct {
	lookups *lookup.Client
}

func (t *stockTool) name() string {
	return "get_stock_price"
}

func (t *stockTool) definition() assistant.ToolDefinition {
	return assistant.ToolDefinition{
		Name:        "get_stock_price",
		Description: "Get the current stock price for a specified ticker symbol",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"ticker": map[string]any{
					"type":        "string",
					"description": "The stock ticker symbol (e.g., AAPL for Apple)",
				},
			},
			"required": []string{"ticker"},
		},
	}
}

func (t *stockTool) execute(argText string) string {
	var args struct {
		Ticker string `json:"ticker"`
	}
	if err := json.Unmarshal([]byte(argText), &args); err != nil {
		return fmt.Sprintf("Error parsing stock arguments: %v", err)
	}
	return t.lookups.StockQuote(args.Ticker)
}
