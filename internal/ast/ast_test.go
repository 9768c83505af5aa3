package ast

import (
	"testing"

	"github.com/eirikvaa/jlox/internal/token"
)

func ident(name string) token.Token {
	return token.New(token.IDENTIFIER, name, nil, 1)
}

func TestEveryNodeHasAStableID(t *testing.T) {
	a := NewLiteral(1.0)
	b := NewLiteral(1.0)
	if a.ID() == b.ID() {
		t.Fatalf("two distinct nodes should never share an id")
	}
	if a.ID() != a.ID() {
		t.Fatalf("a node's id must be stable across repeated calls")
	}
}

func TestLiteralAccept(t *testing.T) {
	lit := NewLiteral("hi")
	out, err := lit.Accept(NewPrinter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi" {
		t.Fatalf("got %v, want hi", out)
	}
}

func TestBinaryExprShape(t *testing.T) {
	left := NewLiteral(1.0)
	right := NewLiteral(2.0)
	op := token.New(token.PLUS, "+", nil, 1)
	bin := NewBinary(left, op, right)

	if bin.Left != left || bin.Right != right || bin.Operator.Lexeme != "+" {
		t.Fatalf("unexpected Binary fields: %+v", bin)
	}
}

func TestClassStmtCarriesSuperclassAndMethods(t *testing.T) {
	super := NewVariable(ident("Animal"))
	speak := NewFunctionStmt(ident("speak"), nil, nil)
	class := NewClassStmt(ident("Dog"), super, []*Function{speak})

	if class.Superclass != super {
		t.Fatalf("expected Superclass to be preserved")
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "speak" {
		t.Fatalf("unexpected methods: %+v", class.Methods)
	}
}

func TestPrinterRendersParenthesizedForm(t *testing.T) {
	expr := NewBinary(NewLiteral(1.0), token.New(token.PLUS, "+", nil, 1), NewLiteral(2.0))
	stmt := NewExpressionStmt(expr)

	got := NewPrinter().PrintProgram([]Stmt{stmt})
	want := "(; (+ 1 2))\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrinterRendersClassWithSuperclass(t *testing.T) {
	super := NewVariable(ident("A"))
	method := NewFunctionStmt(ident("greet"), []token.Token{ident("x")}, nil)
	class := NewClassStmt(ident("B"), super, []*Function{method})

	got := NewPrinter().PrintProgram([]Stmt{class})
	want := "(class B < A (fun greet(x)))\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
