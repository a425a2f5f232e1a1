// Package assistant defines the boundary to the hosted assistant service:
// the domain types for sessions, runs, and tool calls, plus the Service
// interface implemented over the OpenAI Assistants API.
package assistant

import "context"

// RunStatus is the remote run lifecycle state. The API reports further
// transitional statuses beyond these; callers treat anything unlisted as
// "still running" and keep polling.
type RunStatus string

const (
	StatusQueued         RunStatus = "queued"
	StatusInProgress     RunStatus = "in_progress"
	StatusRequiresAction RunStatus = "requires_action"
	StatusCompleted      RunStatus = "completed"
	StatusFailed         RunStatus = "failed"
	StatusCancelled      RunStatus = "cancelled"
	StatusExpired        RunStatus = "expired"
)

// Message roles used on the thread.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ToolCall is a function invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ToolOutput is the result string for one tool call, keyed by its id.
type ToolOutput struct {
	CallID string
	Output string
}

// Run is a snapshot of one remote execution of the assistant.
type Run struct {
	ID        string
	Status    RunStatus
	ToolCalls []ToolCall
	LastError string
}

// Message is one entry in the conversation transcript.
type Message struct {
	Role string
	Text string
}

// ToolDefinition describes a function tool exposed to the assistant.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// AssistantParams configures assistant creation.
type AssistantParams struct {
	Name         string
	Description  string
	Instructions string
	Model        string
	Tools        []ToolDefinition
}

// Service is the hosted assistant API surface the driver depends on.
// ListMessages returns the transcript newest first.
type Service interface {
	CreateAssistant(ctx context.Context, params AssistantParams) (string, error)
	CreateThread(ctx context.Context) (string, error)
	AddMessage(ctx context.Context, threadID, role, text string) error
	CreateRun(ctx context.Context, threadID, assistantID string) (Run, error)
	GetRun(ctx context.Context, threadID, runID string) (Run, error)
	SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []ToolOutput) error
	ListMessages(ctx context.Context, threadID string) ([]Message, error)
}
