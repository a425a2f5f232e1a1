package main

import (
	"errors"
	"strings"
	"testing"
)

// stubRunner records forwarded inputs and plays back canned replies.
type stubRunner struct {
	calls   []string
	reply   string
	errOnce error
}

func (s *stubRunner) RunTurn(input string) (string, error) {
	s.calls = append(s.calls, input)
	if s.errOnce != nil {
		err := s.errOnce
		s.errOnce = nil
		return "", err
	}
	return s.reply, nil
}

func TestREPLExitWithoutTurn(t *testing.T) {
	stub := &stubRunner{}
	var out strings.Builder

	if err := runREPL(stub, replOptions{}, strings.NewReader("exit\n"), &out); err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if len(stub.calls) != 0 {
		t.Fatalf("expected no driver calls, got %d", len(stub.calls))
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Fatalf("expected farewell in output, got %q", out.String())
	}
}

func TestREPLExitTokensCaseInsensitive(t *testing.T) {
	for _, token := range []string{"EXIT", "Quit", "bYe"} {
		stub := &stubRunner{}
		var out strings.Builder
		if err := runREPL(stub, replOptions{}, strings.NewReader(token+"\n"), &out); err != nil {
			t.Fatalf("runREPL(%q): %v", token, err)
		}
		if len(stub.calls) != 0 {
			t.Fatalf("token %q: expected no driver calls, got %d", token, len(stub.calls))
		}
		if !strings.Contains(out.String(), "Goodbye!") {
			t.Fatalf("token %q: expected farewell, got %q", token, out.String())
		}
	}
}

func TestREPLSkipsEmptyLines(t *testing.T) {
	stub := &stubRunner{}
	var out strings.Builder

	if err := runREPL(stub, replOptions{}, strings.NewReader("\n   \nquit\n"), &out); err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if len(stub.calls) != 0 {
		t.Fatalf("expected empty lines to be ignored, got %d calls", len(stub.calls))
	}
}

func TestREPLForwardsInputAndPrintsReply(t *testing.T) {
	stub := &stubRunner{reply: "It's sunny in London."}
	var out strings.Builder

	input := "What's the weather in London?\nexit\n"
	if err := runREPL(stub, replOptions{}, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if len(stub.calls) != 1 || stub.calls[0] != "What's the weather in London?" {
		t.Fatalf("unexpected forwarded inputs: %#v", stub.calls)
	}
	if !strings.Contains(out.String(), "It's sunny in London.") {
		t.Fatalf("expected reply in output, got %q", out.String())
	}
}

func TestREPLContinuesAfterTurnError(t *testing.T) {
	stub := &stubRunner{reply: "ok", errOnce: errors.New("boom")}
	var out strings.Builder

	if err := runREPL(stub, replOptions{}, strings.NewReader("hi\nhello\nbye\n"), &out); err != nil {
		t.Fatalf("runREPL: %v", err)
	}
	if len(stub.calls) != 2 {
		t.Fatalf("expected loop to continue after error, got %d calls", len(stub.calls))
	}
	if !strings.Contains(out.String(), "Please try again.") {
		t.Fatalf("expected retry hint after error, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Fatalf("expected farewell, got %q", out.String())
	}
}

func TestREPLEndOfInput(t *testing.T) {
	stub := &stubRunner{}
	var out strings.Builder
	if err := runREPL(stub, replOptions{}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("runREPL on EOF: %v", err)
	}
}
