package assistant

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

type openaiService struct {
	client openai.Client
}

// NewOpenAIService builds a Service backed by the OpenAI Assistants API.
func NewOpenAIService(apiKey, baseURL string) Service {
	opts := []option.RequestOption{}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &openaiService{client: openai.NewClient(opts...)}
}

func (s *openaiService) CreateAssistant(ctx context.Context, params AssistantParams) (string, error) {
	tools := make([]openai.AssistantToolUnionParam, 0, len(params.Tools))
	for _, def := range params.Tools {
		tools = append(tools, openai.AssistantToolUnionParam{
			OfFunction: &openai.FunctionToolParam{
				Function: shared.FunctionDefinitionParam{
					Name:        def.Name,
					Description: openai.String(def.Description),
					Parameters:  shared.FunctionParameters(def.Parameters),
				},
			},
		})
	}

	created, err := s.client.Beta.Assistants.New(ctx, openai.BetaAssistantNewParams{
		Model:        shared.ChatModel(params.Model),
		Name:         openai.String(params.Name),
		Description:  openai.String(params.Description),
		Instructions: openai.String(params.Instructions),
		Tools:        tools,
	})
	if err != nil {
		return "", fmt.Errorf("create assistant: %w", err)
	}
	return created.ID, nil
}

func (s *openaiService) CreateThread(ctx context.Context) (string, error) {
	thread, err := s.client.Beta.Threads.New(ctx, openai.BetaThreadNewParams{})
	if err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}
	return thread.ID, nil
}

func (s *openaiService) AddMessage(ctx context.Context, threadID, role, text string) error {
	paramRole := openai.BetaThreadMessageNewParamsRoleUser
	if role == RoleAssistant {
		paramRole = openai.BetaThreadMessageNewParamsRoleAssistant
	}
	_, err := s.client.Beta.Threads.Messages.New(ctx, threadID, openai.BetaThreadMessageNewParams{
		Role: paramRole,
		Content: openai.BetaThreadMessageNewParamsContentUnion{
			OfString: openai.String(text),
		},
	})
	if err != nil {
		return fmt.Errorf("add %s message: %w", role, err)
	}
	return nil
}

func (s *openaiService) CreateRun(ctx context.Context, threadID, assistantID string) (Run, error) {
	run, err := s.client.Beta.Threads.Runs.New(ctx, threadID, openai.BetaThreadRunNewParams{
		AssistantID: assistantID,
	})
	if err != nil {
		return Run{}, fmt.Errorf("create run: %w", err)
	}
	return fromRun(run), nil
}

func (s *openaiService) GetRun(ctx context.Context, threadID, runID string) (Run, error) {
	run, err := s.client.Beta.Threads.Runs.Get(ctx, threadID, runID)
	if err != nil {
		return Run{}, fmt.Errorf("retrieve run: %w", err)
	}
	return fromRun(run), nil
}

func (s *openaiService) SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []ToolOutput) error {
	items := make([]openai.BetaThreadRunSubmitToolOutputsParamsToolOutput, 0, len(outputs))
	for _, out := range outputs {
		items = append(items, openai.BetaThreadRunSubmitToolOutputsParamsToolOutput{
			ToolCallID: openai.String(out.CallID),
			Output:     openai.String(out.Output),
		})
	}
	_, err := s.client.Beta.Threads.Runs.SubmitToolOutputs(ctx, threadID, runID, openai.BetaThreadRunSubmitToolOutputsParams{
		ToolOutputs: items,
	})
	if err != nil {
		return fmt.Errorf("submit tool outputs: %w", err)
	}
	return nil
}

func (s *openaiService) ListMessages(ctx context.Context, threadID string) ([]Message, error) {
	// The API lists messages newest first, which is the order the driver
	// relies on when scanning for the latest assistant reply.
	page, err := s.client.Beta.Threads.Messages.List(ctx, threadID, openai.BetaThreadMessageListParams{})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages := make([]Message, 0, len(page.Data))
	for _, msg := range page.Data {
		messages = append(messages, Message{
			Role: string(msg.Role),
			Text: messageText(msg),
		})
	}
	return messages, nil
}

// messageText extracts the first text block of a message, or "" when the
// message carries no text content.
func messageText(msg openai.Message) string {
	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text.Value
		}
	}
	return ""
}

func fromRun(run *openai.Run) Run {
	out := Run{
		ID:     run.ID,
		Status: RunStatus(run.Status),
	}
	for _, call := range run.RequiredAction.SubmitToolOutputs.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	if run.LastError.Message != "" {
		out.LastError = fmt.Sprintf("%s: %s", run.LastError.Code, run.LastError.Message)
	}
	return out
}
