// Package errors defines the Language's compile-time and runtime error
// records and the Reporter sink the core emits them to. The core only
// emits; the host (the CLI, in this module) decides how to format and
// exit.
package errors

import (
	"fmt"
	"io"

	"github.com/eirikvaa/jlox/internal/token"
)

// RuntimeErrorKind is a closed enumeration of the runtime error kinds the
// interpreter can raise.
type RuntimeErrorKind string

const (
	TypeMismatch             RuntimeErrorKind = "TypeMismatch"
	DivisionByZero           RuntimeErrorKind = "DivisionByZero"
	UndefinedVariable        RuntimeErrorKind = "UndefinedVariable"
	UndefinedProperty        RuntimeErrorKind = "UndefinedProperty"
	NotCallable              RuntimeErrorKind = "NotCallable"
	ArityMismatch            RuntimeErrorKind = "ArityMismatch"
	SuperclassNotClass       RuntimeErrorKind = "SuperclassNotClass"
	FieldAccessOnNonInstance RuntimeErrorKind = "FieldAccessOnNonInstance"
)

// CompileError is a scanner, parser, or resolver error, keyed by source
// line.
type CompileError struct {
	Line    int
	Message string
}

func (e CompileError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// RuntimeError carries the token at which evaluation failed, so the
// reporter can show source location and lexeme context.
type RuntimeError struct {
	Token   token.Token
	Kind    RuntimeErrorKind
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// NewRuntimeError constructs a RuntimeError for the given token and kind.
func NewRuntimeError(tok token.Token, kind RuntimeErrorKind, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Kind: kind, Message: message}
}

// NewRuntimeErrorf is NewRuntimeError with fmt.Sprintf-style formatting.
func NewRuntimeErrorf(tok token.Token, kind RuntimeErrorKind, format string, args ...interface{}) *RuntimeError {
	return NewRuntimeError(tok, kind, fmt.Sprintf(format, args...))
}

// Reporter is the sink the scanner, parser, and resolver emit diagnostics
// to; the interpreter returns its RuntimeError to the host, which passes it
// to ReportRuntime. A Reporter tracks whether any compile or runtime error
// has been reported so a host can decide process exit codes after a run.
type Reporter interface {
	ReportCompile(err CompileError)
	ReportRuntime(err *RuntimeError)
	HadCompileError() bool
	HadRuntimeError() bool
	Reset()
}

// TextReporter writes each error as human-readable text to an io.Writer
// and tracks the had-error flags a CLI uses to pick an exit code.
type TextReporter struct {
	w               io.Writer
	hadCompileError bool
	hadRuntimeError bool
}

// NewTextReporter creates a Reporter that writes formatted error text to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) ReportCompile(err CompileError) {
	fmt.Fprintln(r.w, err.Error())
	r.hadCompileError = true
}

func (r *TextReporter) ReportRuntime(err *RuntimeError) {
	fmt.Fprintln(r.w, err.Error())
	r.hadRuntimeError = true
}

func (r *TextReporter) HadCompileError() bool { return r.hadCompileError }
func (r *TextReporter) HadRuntimeError() bool { return r.hadRuntimeError }

func (r *TextReporter) Reset() {
	r.hadCompileError = false
	r.hadRuntimeError = false
}
