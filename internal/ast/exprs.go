package ast

import "github.com/eirikvaa/jlox/internal/token"

// Literal is a literal value embedded directly in source (number, string,
// bool, or nil).
type Literal struct {
	id    int
	Value interface{}
}

func NewLiteral(value interface{}) *Literal {
	return &Literal{id: newID(), Value: value}
}

func (e *Literal) ID() int { return e.id }
func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// Logical is `and`/`or`, which short-circuit and so cannot be modeled as a
// plain Binary.
type Logical struct {
	id       int
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogical(left Expr, operator token.Token, right Expr) *Logical {
	return &Logical{id: newID(), Left: left, Operator: operator, Right: right}
}

func (e *Logical) ID() int { return e.id }
func (e *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// Grouping is a parenthesized expression.
type Grouping struct {
	id         int
	Expression Expr
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{id: newID(), Expression: expression}
}

func (e *Grouping) ID() int { return e.id }
func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// Unary is a prefix `-` or `!` applied to an operand.
type Unary struct {
	id       int
	Operator token.Token
	Right    Expr
}

func NewUnary(operator token.Token, right Expr) *Unary {
	return &Unary{id: newID(), Operator: operator, Right: right}
}

func (e *Unary) ID() int { return e.id }
func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// Binary is an infix operator expression.
type Binary struct {
	id       int
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinary(left Expr, operator token.Token, right Expr) *Binary {
	return &Binary{id: newID(), Left: left, Operator: operator, Right: right}
}

func (e *Binary) ID() int { return e.id }
func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// Variable references a name; the resolver annotates it with a scope
// distance keyed by this node's identity.
type Variable struct {
	id   int
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{id: newID(), Name: name}
}

func (e *Variable) ID() int { return e.id }
func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// Assign writes a value to an existing binding.
type Assign struct {
	id    int
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{id: newID(), Name: name, Value: value}
}

func (e *Assign) ID() int { return e.id }
func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// Call invokes a callee with a list of argument expressions. Paren is the
// closing-paren token, used to report arity-mismatch errors at a sensible
// location.
type Call struct {
	id     int
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{id: newID(), Callee: callee, Paren: paren, Args: args}
}

func (e *Call) ID() int { return e.id }
func (e *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// Get reads a property (field or method) off an instance.
type Get struct {
	id     int
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{id: newID(), Object: object, Name: name}
}

func (e *Get) ID() int { return e.id }
func (e *Get) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGetExpr(e) }

// Set writes a field on an instance.
type Set struct {
	id     int
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{id: newID(), Object: object, Name: name, Value: value}
}

func (e *Set) ID() int { return e.id }
func (e *Set) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSetExpr(e) }

// This references the receiver inside a method body.
type This struct {
	id      int
	Keyword token.Token
}

func NewThis(keyword token.Token) *This {
	return &This{id: newID(), Keyword: keyword}
}

func (e *This) ID() int { return e.id }
func (e *This) Accept(v ExprVisitor) (interface{}, error) { return v.VisitThisExpr(e) }

// Super is an explicit `super.method` lookup.
type Super struct {
	id      int
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword token.Token, method token.Token) *Super {
	return &Super{id: newID(), Keyword: keyword, Method: method}
}

func (e *Super) ID() int { return e.id }
func (e *Super) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSuperExpr(e) }
