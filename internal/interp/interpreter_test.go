package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eirikvaa/jlox/internal/errors"
	"github.com/eirikvaa/jlox/internal/parser"
	"github.com/eirikvaa/jlox/internal/resolver"
	"github.com/eirikvaa/jlox/internal/scanner"
)

// run wires the full scanner -> parser -> resolver -> interpreter pipeline
// over src and returns everything the interpreter printed plus any
// reported errors.
func run(t *testing.T, src string) (string, *errors.TextReporter, *errors.RuntimeError) {
	t.Helper()
	reporter := errors.NewTextReporter(&bytes.Buffer{})
	toks := scanner.New(src, reporter).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadCompileError() {
		return "", reporter, nil
	}

	var out bytes.Buffer
	in := New(&out)
	resolver.New(in, reporter).ResolveProgram(stmts)
	if reporter.HadCompileError() {
		return "", reporter, nil
	}

	runtimeErr := in.Run(stmts)
	return out.String(), reporter, runtimeErr
}

func TestArithmeticAndPrint(t *testing.T) {
	out, _, rerr := run(t, `print 1 + 2 * 3;`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if strings.TrimSpace(out) != "7" {
		t.Fatalf("got %q, want 7", out)
	}
}

func TestIntegralFloatPrintsWithoutTrailingZero(t *testing.T) {
	out, _, rerr := run(t, `print 6 / 2;`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("got %q, want 3", out)
	}
}

func TestStringConcatenation(t *testing.T) {
	out, _, rerr := run(t, `print "foo" + "bar";`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if strings.TrimSpace(out) != "foobar" {
		t.Fatalf("got %q, want foobar", out)
	}
}

func TestDivisionByZeroIsARuntimeError(t *testing.T) {
	_, _, rerr := run(t, `print 1 / 0;`)
	if rerr == nil {
		t.Fatalf("expected a runtime error for division by zero")
	}
	if rerr.Kind != errors.DivisionByZero {
		t.Fatalf("got kind %v, want DivisionByZero", rerr.Kind)
	}
}

func TestStringPlusNumberConcatenates(t *testing.T) {
	out, _, rerr := run(t, `print "n=" + 3;`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if strings.TrimSpace(out) != "n=3" {
		t.Fatalf("got %q, want n=3", out)
	}
}

func TestNumberPlusStringIsATypeMismatch(t *testing.T) {
	_, _, rerr := run(t, `print 1 + "x";`)
	if rerr == nil {
		t.Fatalf("expected a runtime error")
	}
	if rerr.Kind != errors.TypeMismatch {
		t.Fatalf("got kind %v, want TypeMismatch", rerr.Kind)
	}
}

func TestClosureCounter(t *testing.T) {
	out, _, rerr := run(t, `
		fun makeCounter() {
			var i = 0;
			fun counter() {
				i = i + 1;
				return i;
			}
			return counter;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if got := strings.Fields(out); strings.Join(got, ",") != "1,2,3" {
		t.Fatalf("got %q, want lines 1 2 3", out)
	}
}

func TestIfElseBranching(t *testing.T) {
	out, _, rerr := run(t, `
		if (1 < 2) print "yes"; else print "no";
	`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if strings.TrimSpace(out) != "yes" {
		t.Fatalf("got %q, want yes", out)
	}
}

func TestForLoopDesugaring(t *testing.T) {
	out, _, rerr := run(t, `
		for (var i = 0; i < 3; i = i + 1) print i;
	`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	if got := strings.Fields(out); strings.Join(got, ",") != "0,1,2" {
		t.Fatalf("got %q, want lines 0 1 2", out)
	}
}

func TestBreakExitsOnlyInnermostLoop(t *testing.T) {
	out, _, rerr := run(t, `
		for (var i = 0; i < 2; i = i + 1) {
			for (var j = 0; j < 5; j = j + 1) {
				if (j == 1) break;
				print j;
			}
			print "outer " + i;
		}
	`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	want := "0,outer 0,0,outer 1"
	if got := strings.Split(strings.TrimSpace(out), "\n"); strings.Join(got, ",") != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestLogicalOperatorsShortCircuitAndReturnOperand(t *testing.T) {
	out, _, rerr := run(t, `
		print false or "fallback";
		print "first" and "second";
	`)
	if rerr != nil {
		t.Fatalf("unexpected runtime error: %v", rerr)
	}
	want := "fallback,second"
	if got := strings.Split(strings.TrimSpace(out), "\n"); strings.Join(got, ",") != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestUndefinedVariableIsARuntimeError(t *testing.T) {
	_, _, rerr := run(t, `print nope;`)
	if rerr == nil || rerr.Kind != errors.UndefinedVariable {
		t.Fatalf("expected UndefinedVariable error, got %v", rerr)
	}
}

func TestCallingNonCallableIsARuntimeError(t *testing.T) {
	_, _, rerr := run(t, `var x = 1; x();`)
	if rerr == nil || rerr.Kind != errors.NotCallable {
		t.Fatalf("expected NotCallable error, got %v", rerr)
	}
}

func TestArityMismatchIsARuntimeError(t *testing.T) {
	_, _, rerr := run(t, `fun f(a, b) { return a + b; } f(1);`)
	if rerr == nil || rerr.Kind != errors.ArityMismatch {
		t.Fatalf("expected ArityMismatch error, got %v", rerr)
	}
}
