package ast

import (
	"fmt"
	"strings"
)

// Printer renders an AST as a parenthesized, Lisp-like form for debugging
// (the CLI's `--dump-ast` flag). It implements both ExprVisitor and
// StmtVisitor so a single value can walk an entire program.
type Printer struct{}

// NewPrinter creates an AST Printer.
func NewPrinter() *Printer { return &Printer{} }

// PrintProgram renders every top-level statement, one per line.
func (p *Printer) PrintProgram(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		out, _ := s.Accept(p)
		fmt.Fprintln(&b, out)
	}
	return b.String()
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		out, _ := e.Accept(p)
		fmt.Fprint(&b, out)
	}
	b.WriteString(")")
	return b.String()
}

func (p *Printer) VisitLiteralExpr(e *Literal) (interface{}, error) {
	if e.Value == nil {
		return "nil", nil
	}
	return fmt.Sprintf("%v", e.Value), nil
}

func (p *Printer) VisitLogicalExpr(e *Logical) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitGroupingExpr(e *Grouping) (interface{}, error) {
	return p.parenthesize("group", e.Expression), nil
}

func (p *Printer) VisitUnaryExpr(e *Unary) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Right), nil
}

func (p *Printer) VisitBinaryExpr(e *Binary) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitVariableExpr(e *Variable) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (p *Printer) VisitAssignExpr(e *Assign) (interface{}, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value), nil
}

func (p *Printer) VisitCallExpr(e *Call) (interface{}, error) {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Args...)...), nil
}

func (p *Printer) VisitGetExpr(e *Get) (interface{}, error) {
	return p.parenthesize("get "+e.Name.Lexeme, e.Object), nil
}

func (p *Printer) VisitSetExpr(e *Set) (interface{}, error) {
	return p.parenthesize("set "+e.Name.Lexeme, e.Object, e.Value), nil
}

func (p *Printer) VisitThisExpr(e *This) (interface{}, error) {
	return "this", nil
}

func (p *Printer) VisitSuperExpr(e *Super) (interface{}, error) {
	return "(super ." + e.Method.Lexeme + ")", nil
}

func (p *Printer) VisitExpressionStmt(s *Expression) (interface{}, error) {
	return p.parenthesize(";", s.Expression), nil
}

func (p *Printer) VisitPrintStmt(s *Print) (interface{}, error) {
	return p.parenthesize("print", s.Expression), nil
}

func (p *Printer) VisitVarStmt(s *Var) (interface{}, error) {
	if s.Initializer == nil {
		return fmt.Sprintf("(var %s)", s.Name.Lexeme), nil
	}
	return p.parenthesize("var "+s.Name.Lexeme, s.Initializer), nil
}

func (p *Printer) VisitBlockStmt(s *Block) (interface{}, error) {
	var b strings.Builder
	b.WriteString("(block")
	for _, stmt := range s.Statements {
		out, _ := stmt.Accept(p)
		fmt.Fprintf(&b, " %v", out)
	}
	b.WriteString(")")
	return b.String(), nil
}

func (p *Printer) VisitIfStmt(s *If) (interface{}, error) {
	cond, _ := s.Condition.Accept(p)
	then, _ := s.ThenBranch.Accept(p)
	if s.ElseBranch == nil {
		return fmt.Sprintf("(if %v %v)", cond, then), nil
	}
	els, _ := s.ElseBranch.Accept(p)
	return fmt.Sprintf("(if %v %v %v)", cond, then, els), nil
}

func (p *Printer) VisitWhileStmt(s *While) (interface{}, error) {
	cond, _ := s.Condition.Accept(p)
	body, _ := s.Body.Accept(p)
	return fmt.Sprintf("(while %v %v)", cond, body), nil
}

func (p *Printer) VisitBreakStmt(s *Break) (interface{}, error) {
	return "(break)", nil
}

func (p *Printer) VisitFunctionStmt(s *Function) (interface{}, error) {
	names := make([]string, len(s.Params))
	for i, tok := range s.Params {
		names[i] = tok.Lexeme
	}
	return fmt.Sprintf("(fun %s(%s))", s.Name.Lexeme, strings.Join(names, ", ")), nil
}

func (p *Printer) VisitReturnStmt(s *Return) (interface{}, error) {
	if s.Value == nil {
		return "(return)", nil
	}
	return p.parenthesize("return", s.Value), nil
}

func (p *Printer) VisitClassStmt(s *Class) (interface{}, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "(class %s", s.Name.Lexeme)
	if s.Superclass != nil {
		fmt.Fprintf(&b, " < %s", s.Superclass.Name.Lexeme)
	}
	for _, m := range s.Methods {
		out, _ := m.Accept(p)
		fmt.Fprintf(&b, " %v", out)
	}
	b.WriteString(")")
	return b.String(), nil
}
