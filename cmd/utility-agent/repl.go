package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	loggerpkg "github.com/sgorecki/utility-agent/pkg/logger"
)

// turnRunner is the surface of the conversation driver the REPL needs.
type turnRunner interface {
	RunTurn(input string) (string, error)
}

// replOptions configures REPL behavior.
type replOptions struct {
	Verbose bool
	Logger  loggerpkg.Logger
}

// runREPL reads user lines and forwards each non-empty one to the driver.
// Empty lines are skipped; "exit", "quit", and "bye" (any case) end the
// session. Per-turn errors are printed and the loop continues.
func runREPL(app turnRunner, opts replOptions, in io.Reader, out io.Writer) error {
	if app == nil {
		return fmt.Errorf("conversation driver is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	if opts.Verbose && opts.Logger != nil {
		loggerpkg.Debug(opts.Verbose, opts.Logger, "repl start", nil)
	}

	scanner := bufio.NewScanner(in)
	printWelcome(out)

	for {
		_, _ = fmt.Fprintf(out, "\n%s ", promptStyle.Render("You:"))
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit", "bye":
			_, _ = fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		reply, err := app.RunTurn(input)
		if err != nil {
			_, _ = fmt.Fprintf(out, "\n%s %v\n", errorStyle.Render("Error:"), err)
			_, _ = fmt.Fprintln(out, "Please try again.")
			continue
		}

		_, _ = fmt.Fprintf(out, "\n%s %s\n", agentStyle.Render("Agent:"), reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, bannerStyle.Render("Welcome to the Utility Agent!"))
	_, _ = fmt.Fprintln(out, "You can ask about weather (e.g., 'What's the weather in London?')")
	_, _ = fmt.Fprintln(out, "Or stock prices (e.g., 'What's the current price of AAPL?')")
	_, _ = fmt.Fprintln(out, "Type 'exit' to quit.")
	_, _ = fmt.Fprintln(out, dimStyle.Render(strings.Repeat("-", 50)))
}
