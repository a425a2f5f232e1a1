package tools

import (
	"encoding/json"
	"fmt"

	"github.com/sgorecki/utility-agent/pkg/assistant"
	"github.com/sgorecki/utility-agent/pkg/lookup"
)

type weatherTool struct {
	lookups *lookup.Client
}

func (t *weatherTool) name() string {
	return "get_weather"
}

func (t *weatherTool) definition() assistant.ToolDefinition {
	return assistant.ToolDefinition{
		Name:        "get_weather",
		Description: "Get the current weather for a specified city",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"city": map[string]any{
					"type":        "string",
					"description": "The name of the city to get weather information for",
				},
			},
			"required": []string{"city"},
		},
	}
}

func (t *weatherTool) execute(argText string) string {
	var args struct {
		City string `json:"city"`
	}
	if err := json.Unmarshal([]byte(argText), &args); err != nil {
		return fmt.Sprintf("Error parsing weather arguments: %v", err)
	}
	return t.lookups.Weather(args.City)
}
