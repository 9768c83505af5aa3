package errors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eirikvaa/jlox/internal/token"
)

func TestCompileErrorFormatting(t *testing.T) {
	err := CompileError{Line: 3, Message: "Unexpected character."}
	want := "[line 3] Error: Unexpected character."
	if got := err.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRuntimeErrorFormatting(t *testing.T) {
	tok := token.New(token.PLUS, "+", nil, 7)
	err := NewRuntimeError(tok, TypeMismatch, "Operands must be numbers.")
	if !strings.Contains(err.Error(), "Operands must be numbers.") {
		t.Fatalf("error text missing message: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "line 7") {
		t.Fatalf("error text missing line: %q", err.Error())
	}
}

func TestNewRuntimeErrorf(t *testing.T) {
	tok := token.New(token.IDENTIFIER, "x", nil, 1)
	err := NewRuntimeErrorf(tok, UndefinedVariable, "Undefined variable '%s'.", "x")
	if err.Message != "Undefined variable 'x'." {
		t.Fatalf("got message %q", err.Message)
	}
	if err.Kind != UndefinedVariable {
		t.Fatalf("got kind %q, want %q", err.Kind, UndefinedVariable)
	}
}

func TestTextReporterTracksHadErrorFlags(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	if r.HadCompileError() || r.HadRuntimeError() {
		t.Fatalf("fresh reporter should have no errors")
	}

	r.ReportCompile(CompileError{Line: 1, Message: "bad syntax"})
	if !r.HadCompileError() {
		t.Fatalf("expected HadCompileError after ReportCompile")
	}

	tok := token.New(token.SLASH, "/", nil, 2)
	r.ReportRuntime(NewRuntimeError(tok, DivisionByZero, "Division by zero."))
	if !r.HadRuntimeError() {
		t.Fatalf("expected HadRuntimeError after ReportRuntime")
	}

	out := buf.String()
	if !strings.Contains(out, "bad syntax") || !strings.Contains(out, "Division by zero.") {
		t.Fatalf("expected both messages in output, got %q", out)
	}

	r.Reset()
	if r.HadCompileError() || r.HadRuntimeError() {
		t.Fatalf("expected Reset to clear both flags")
	}
}
