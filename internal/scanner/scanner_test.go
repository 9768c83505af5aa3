package scanner

import (
	"testing"

	"github.com/eirikvaa/jlox/internal/errors"
	"github.com/eirikvaa/jlox/internal/token"
)

func typesOf(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	reporter := errors.NewTextReporter(&discard{})
	s := New("(){},.-+;*/ ! != = == > >= < <=", reporter)
	toks := s.ScanTokens()

	want := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.STAR, token.SLASH,
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL,
		token.EOF,
	}
	got := typesOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if reporter.HadCompileError() {
		t.Fatalf("unexpected compile error")
	}
}

func TestScanLineComment(t *testing.T) {
	reporter := errors.NewTextReporter(&discard{})
	s := New("// comment\nprint 1;", reporter)
	toks := s.ScanTokens()
	if toks[0].Type != token.PRINT || toks[0].Line != 2 {
		t.Fatalf("expected PRINT on line 2, got %+v", toks[0])
	}
}

func TestScanString(t *testing.T) {
	reporter := errors.NewTextReporter(&discard{})
	s := New(`"hello\nworld"`, reporter)
	toks := s.ScanTokens()
	if toks[0].Type != token.STRING {
		t.Fatalf("expected STRING token, got %v", toks[0].Type)
	}
	if toks[0].Literal != `hello\nworld` {
		t.Fatalf("literal = %q", toks[0].Literal)
	}
}

func TestScanMultiLineString(t *testing.T) {
	reporter := errors.NewTextReporter(&discard{})
	s := New("\"line1\nline2\"\nprint 1;", reporter)
	toks := s.ScanTokens()
	if toks[0].Type != token.STRING {
		t.Fatalf("expected STRING, got %v", toks[0].Type)
	}
	// the PRINT token after the multi-line string must be on line 3
	for _, tk := range toks {
		if tk.Type == token.PRINT {
			if tk.Line != 3 {
				t.Fatalf("print line = %d, want 3", tk.Line)
			}
			return
		}
	}
	t.Fatal("no PRINT token found")
}

func TestUnterminatedStringReportsError(t *testing.T) {
	reporter := errors.NewTextReporter(&discard{})
	s := New(`"unterminated`, reporter)
	toks := s.ScanTokens()
	if !reporter.HadCompileError() {
		t.Fatalf("expected compile error for unterminated string")
	}
	if len(toks) != 1 || toks[0].Type != token.EOF {
		t.Fatalf("expected only EOF token, got %v", toks)
	}
}

func TestScanNumber(t *testing.T) {
	reporter := errors.NewTextReporter(&discard{})
	s := New("123 3.14 1.", reporter)
	toks := s.ScanTokens()
	if toks[0].Literal != float64(123) {
		t.Fatalf("toks[0].Literal = %v", toks[0].Literal)
	}
	if toks[1].Literal != 3.14 {
		t.Fatalf("toks[1].Literal = %v", toks[1].Literal)
	}
	// "1." -- trailing dot with no fractional digit is NOT consumed as part
	// of the number; it scans as NUMBER(1) followed by DOT.
	if toks[2].Literal != float64(1) || toks[2].Type != token.NUMBER {
		t.Fatalf("toks[2] = %+v, want NUMBER(1)", toks[2])
	}
	if toks[3].Type != token.DOT {
		t.Fatalf("toks[3] = %+v, want DOT", toks[3])
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	reporter := errors.NewTextReporter(&discard{})
	s := New("var x = foo_bar and class", reporter)
	toks := s.ScanTokens()
	want := []token.Type{token.VAR, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER, token.AND, token.CLASS, token.EOF}
	got := typesOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnexpectedCharacterContinuesScanning(t *testing.T) {
	reporter := errors.NewTextReporter(&discard{})
	s := New("@ print 1;", reporter)
	toks := s.ScanTokens()
	if !reporter.HadCompileError() {
		t.Fatalf("expected a compile error for '@'")
	}
	if toks[0].Type != token.PRINT {
		t.Fatalf("expected scanning to continue past the bad character, got %v", toks[0].Type)
	}
}

type discard struct{}

func (d *discard) Write(p []byte) (int, error) { return len(p), nil }
