// Package tools holds the function tools the assistant can call and the
// registry that dispatches remote tool calls to them by name.
package tools

import (
	"fmt"

	"github.com/sgorecki/utility-agent/pkg/assistant"
	loggerpkg "github.com/sgorecki/utility-agent/pkg/logger"
	"github.com/sgorecki/utility-agent/pkg/lookup"
)

type tool interface {
	name() string
	definition() assistant.ToolDefinition
	execute(argText string) string
}

// Registry holds registered tools and handles execution.
type Registry struct {
	registry map[string]tool
	defs     []assistant.ToolDefinition
	verbose  bool
	logger   loggerpkg.Logger
}

// New builds a registry with the built-in lookup tools.
func New(lookups *lookup.Client, verbose bool, logger loggerpkg.Logger) *Registry {
	if logger == nil {
		logger = loggerpkg.NopLogger{}
	}
	r := &Registry{
		registry: make(map[string]tool),
		verbose:  verbose,
		logger:   logger,
	}

	r.register(&weatherTool{lookups: lookups})
	r.register(&stockTool{lookups: lookups})
	return r
}

func (r *Registry) register(impl tool) {
	r.registry[impl.name()] = impl
	r.defs = append(r.defs, impl.definition())
	loggerpkg.Debugf(r.verbose, r.logger, "registered tool: %s", impl.name())
}

// Definitions returns the tool schemas for assistant creation.
func (r *Registry) Definitions() []assistant.ToolDefinition {
	return r.defs
}

// Execute dispatches call by name. The result is always a string fit for
// submission as the call's output; unknown names and bad arguments produce
// inline error text so the run can continue.
func (r *Registry) Execute(call assistant.ToolCall) string {
	impl, ok := r.registry[call.Name]
	if !ok {
		loggerpkg.Debugf(r.verbose, r.logger, "unknown tool requested: %s", call.Name)
		return fmt.Sprintf("Error: Unknown function %s", call.Name)
	}
	return impl.execute(call.Arguments)
}
