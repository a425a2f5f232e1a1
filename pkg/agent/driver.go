// Package agent implements the conversation driver: it owns the remote
// assistant and thread created at startup, and per turn appends the user
// message, starts a run, polls it to a terminal state (executing requested
// tools along the way), and returns the newest assistant reply.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sgorecki/utility-agent/pkg/assistant"
	configpkg "github.com/sgorecki/utility-agent/pkg/config"
	loggerpkg "github.com/sgorecki/utility-agent/pkg/logger"
	"github.com/sgorecki/utility-agent/pkg/tools"
)

// Synthetic assistant messages injected so the conversation can continue
// after a failed or timed-out run.
const (
	errorFallback = "I'm sorry, I encountered an error processing your request. " +
		"For weather queries, please provide a valid city name (e.g., 'What's the weather in London?'). " +
		"For stock queries, please provide a valid ticker symbol (e.g., 'What's the price of AAPL?'). " +
		"I can only help with weather and stock information."

	timeoutFallback = "I'm sorry, but your request is taking longer than expected to process. " +
		"Please try again with a simpler query or check your internet connection."

	noReplyFallback = "I'm sorry, I couldn't generate a proper response. " +
		"Please try again with a different query."
)

// Driver runs one conversation against the assistant service.
type Driver struct {
	svc   assistant.Service
	tools *tools.Registry

	assistantID  string
	threadID     string
	maxPolls     int
	pollInterval time.Duration

	ctx     context.Context
	logger  loggerpkg.Logger
	verbose bool
}

// New creates the remote assistant and conversation thread and returns a
// driver bound to them. Both identifiers live for the process lifetime.
func New(ctx context.Context, cfg configpkg.Config, svc assistant.Service, registry *tools.Registry, opts ...Option) (*Driver, error) {
	cfg = configpkg.Normalize(cfg)
	deps := driverDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	if svc == nil {
		return nil, errors.New("assistant service is required")
	}
	if registry == nil {
		return nil, errors.New("tool registry is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("Model is not set")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerpkg.Debug(cfg.Verbose, deps.logger, "driver init", map[string]any{
		"model":         cfg.Model,
		"max_polls":     cfg.MaxPolls,
		"poll_interval": cfg.PollInterval.String(),
	})

	assistantID, err := svc.CreateAssistant(ctx, assistant.AssistantParams{
		Name:         cfg.AssistantName,
		Description:  cfg.AssistantDescription,
		Instructions: cfg.Instructions,
		Model:        cfg.Model,
		Tools:        registry.Definitions(),
	})
	if err != nil {
		return nil, fmt.Errorf("create assistant: %w", err)
	}

	threadID, err := svc.CreateThread(ctx)
	if err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}

	loggerpkg.Info(deps.logger, "session ready", map[string]any{
		"assistant_id": assistantID,
		"thread_id":    threadID,
	})

	return &Driver{
		svc:          svc,
		tools:        registry,
		assistantID:  assistantID,
		threadID:     threadID,
		maxPolls:     cfg.MaxPolls,
		pollInterval: cfg.PollInterval,
		ctx:          ctx,
		logger:       deps.logger,
		verbose:      cfg.Verbose,
	}, nil
}

// RunTurn processes one line of user input and returns the assistant's
// reply. Lookup failures surface inside the reply text; only failures of the
// assistant service itself come back as errors, and the caller is expected
// to report them and keep the conversation going.
func (d *Driver) RunTurn(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("user input is required")
	}

	if err := d.svc.AddMessage(d.ctx, d.threadID, assistant.RoleUser, input); err != nil {
		return "", fmt.Errorf("append user message: %w", err)
	}

	run, err := d.svc.CreateRun(d.ctx, d.threadID, d.assistantID)
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}

	if err := d.pollRun(run.ID); err != nil {
		return "", err
	}

	return d.latestAssistantReply()
}

// pollRun drives one run to a terminal state, at most maxPolls iterations
// with a fixed delay between them. A run that fails, is cancelled, expires,
// or outlives the poll cap gets a synthetic fallback message appended so the
// transcript still yields a reply.
func (d *Driver) pollRun(runID string) error {
	for attempt := 1; attempt <= d.maxPolls; attempt++ {
		run, err := d.svc.GetRun(d.ctx, d.threadID, runID)
		if err != nil {
			return fmt.Errorf("poll run: %w", err)
		}
		d.debugf("poll %d/%d: status=%s", attempt, d.maxPolls, run.Status)

		switch run.Status {
		case assistant.StatusCompleted:
			return nil
		case assistant.StatusRequiresAction:
			if err := d.submitToolOutputs(run); err != nil {
				return err
			}
		case assistant.StatusFailed, assistant.StatusCancelled, assistant.StatusExpired:
			detail := fmt.Sprintf("Run %s", run.Status)
			if run.LastError != "" {
				detail += ": " + run.LastError
			}
			loggerpkg.Error(d.logger, "run ended without completing", map[string]any{
				"run_id": runID,
				"detail": detail,
			})
			return d.injectFallback(errorFallback)
		}

		if d.pollInterval > 0 {
			time.Sleep(d.pollInterval)
		}
	}

	loggerpkg.Warn(d.logger, "run timed out", map[string]any{
		"run_id": runID,
		"polls":  d.maxPolls,
	})
	return d.injectFallback(timeoutFallback)
}

func (d *Driver) submitToolOutputs(run assistant.Run) error {
	outputs := make([]assistant.ToolOutput, 0, len(run.ToolCalls))
	for _, call := range run.ToolCalls {
		result := d.tools.Execute(call)
		d.debugf("tool %s (%s) -> %d bytes", call.Name, call.ID, len(result))
		outputs = append(outputs, assistant.ToolOutput{CallID: call.ID, Output: result})
	}
	if err := d.svc.SubmitToolOutputs(d.ctx, d.threadID, run.ID, outputs); err != nil {
		return fmt.Errorf("submit tool outputs: %w", err)
	}
	return nil
}

func (d *Driver) injectFallback(text string) error {
	if err := d.svc.AddMessage(d.ctx, d.threadID, assistant.RoleAssistant, text); err != nil {
		return fmt.Errorf("append fallback message: %w", err)
	}
	return nil
}

// latestAssistantReply scans the transcript, newest first, for the most
// recent assistant message. An assistant message with no readable text stops
// the scan and yields the generic fallback.
func (d *Driver) latestAssistantReply() (string, error) {
	messages, err := d.svc.ListMessages(d.ctx, d.threadID)
	if err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Role != assistant.RoleAssistant {
			continue
		}
		if msg.Text == "" {
			break
		}
		return msg.Text, nil
	}
	return noReplyFallback, nil
}

func (d *Driver) debugf(format string, args ...any) {
	loggerpkg.Debugf(d.verbose, d.logger, format, args...)
}
