// Package interp evaluates a resolved AST directly, without compiling to
// any intermediate bytecode: every expression and statement node is
// walked and acted on immediately by an Interpreter, which implements
// both ast.ExprVisitor and ast.StmtVisitor.
package interp

import (
	"fmt"
	"io"

	"github.com/eirikvaa/jlox/internal/ast"
	"github.com/eirikvaa/jlox/internal/errors"
	"github.com/eirikvaa/jlox/internal/token"
)

// Interpreter walks a resolved program and executes it directly. It
// satisfies resolver.Resolvable so the resolver pass can record scope
// distances onto it before execution begins.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[int]int
	out     io.Writer
}

// New creates an Interpreter that writes print output to out.
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals)
	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[int]int),
		out:     out,
	}
}

// Resolve records that expr, wherever it is evaluated, should look up its
// name depth scopes out from the environment active at that time. Keyed by
// node identity (ast.Expr.ID()), not by the expression's value or source
// position.
func (in *Interpreter) Resolve(expr ast.Expr, depth int) {
	in.locals[expr.ID()] = depth
}

// Run executes every top-level statement in order, stopping at the first
// runtime error.
func (in *Interpreter) Run(stmts []ast.Stmt) *errors.RuntimeError {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			if re, ok := err.(*errors.RuntimeError); ok {
				return re
			}
			// a return/break signal escaping top-level code is a resolver
			// bug, not a user-facing error; surface it loudly rather than
			// swallowing it.
			panic(err)
		}
	}
	return nil
}

func (in *Interpreter) execute(s ast.Stmt) error {
	_, err := s.Accept(in)
	return err
}

func (in *Interpreter) evaluate(e ast.Expr) (Value, error) {
	return e.Accept(in)
}

func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := in.locals[expr.ID()]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

// --- StmtVisitor ---

func (in *Interpreter) VisitExpressionStmt(s *ast.Expression) (interface{}, error) {
	_, err := in.evaluate(s.Expression)
	return nil, err
}

func (in *Interpreter) VisitPrintStmt(s *ast.Print) (interface{}, error) {
	v, err := in.evaluate(s.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.out, Stringify(v))
	return nil, nil
}

func (in *Interpreter) VisitVarStmt(s *ast.Var) (interface{}, error) {
	var value Value
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return nil, err
		}
		value = v
	}
	in.env.Define(s.Name.Lexeme, value)
	return nil, nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.Block) (interface{}, error) {
	return nil, in.executeBlock(s.Statements, NewEnclosedEnvironment(in.env))
}

func (in *Interpreter) VisitIfStmt(s *ast.If) (interface{}, error) {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return nil, err
	}
	if IsTruthy(cond) {
		return nil, in.execute(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return nil, in.execute(s.ElseBranch)
	}
	return nil, nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.While) (interface{}, error) {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		if !IsTruthy(cond) {
			return nil, nil
		}
		if err := in.execute(s.Body); err != nil {
			if isBreak(err) {
				return nil, nil
			}
			return nil, err
		}
	}
}

func (in *Interpreter) VisitBreakStmt(s *ast.Break) (interface{}, error) {
	return nil, breakSignal{}
}

func (in *Interpreter) VisitFunctionStmt(s *ast.Function) (interface{}, error) {
	fn := NewLoxFunction(s, in.env, false)
	in.env.Define(s.Name.Lexeme, fn)
	return nil, nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.Return) (interface{}, error) {
	var value Value
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return nil, returnSignal{value: value}
}

func (in *Interpreter) VisitClassStmt(s *ast.Class) (interface{}, error) {
	var superclass *LoxClass
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return nil, err
		}
		sc, ok := v.(*LoxClass)
		if !ok {
			return nil, errors.NewRuntimeError(s.Superclass.Name, errors.SuperclassNotClass, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, nil)

	methodEnv := in.env
	if s.Superclass != nil {
		methodEnv = NewEnclosedEnvironment(in.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewLoxFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	class := NewLoxClass(s.Name.Lexeme, superclass, methods)
	return nil, in.env.Assign(s.Name, class)
}

// --- ExprVisitor ---

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return e.Value, nil
}

func (in *Interpreter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else if !IsTruthy(left) {
		return left, nil
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return in.evaluate(e.Expression)
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, errors.TypeMismatch, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !IsTruthy(right), nil
	}
	return nil, nil
}

func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS, token.SLASH, token.STAR, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, errors.NewRuntimeError(e.Operator, errors.TypeMismatch, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case token.MINUS:
			return ln - rn, nil
		case token.SLASH:
			if rn == 0 {
				return nil, errors.NewRuntimeError(e.Operator, errors.DivisionByZero, "Division by zero.")
			}
			return ln / rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.GREATER:
			return ln > rn, nil
		case token.GREATER_EQUAL:
			return ln >= rn, nil
		case token.LESS:
			return ln < rn, nil
		case token.LESS_EQUAL:
			return ln <= rn, nil
		}
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
			if rn, ok := right.(float64); ok {
				return ls + Stringify(rn), nil
			}
		}
		return nil, errors.NewRuntimeError(e.Operator, errors.TypeMismatch, "Operands must be two numbers, two strings, or a string followed by a number.")
	case token.BANG_EQUAL:
		return !IsEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	}
	return nil, nil
}

func (in *Interpreter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	return in.lookUpVariable(e.Name, e)
}

func (in *Interpreter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[e.ID()]; ok {
		in.env.AssignAt(distance, e.Name, value)
		return value, nil
	}
	if err := in.globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, errors.NewRuntimeError(e.Paren, errors.NotCallable, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, errors.NewRuntimeErrorf(e.Paren, errors.ArityMismatch, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) VisitGetExpr(e *ast.Get) (interface{}, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*LoxInstance)
	if !ok {
		return nil, errors.NewRuntimeError(e.Name, errors.FieldAccessOnNonInstance, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (in *Interpreter) VisitSetExpr(e *ast.Set) (interface{}, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*LoxInstance)
	if !ok {
		return nil, errors.NewRuntimeError(e.Name, errors.FieldAccessOnNonInstance, "Only instances have fields.")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

func (in *Interpreter) VisitThisExpr(e *ast.This) (interface{}, error) {
	return in.lookUpVariable(e.Keyword, e)
}

func (in *Interpreter) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	distance := in.locals[e.ID()]
	superclass := in.env.GetAt(distance, "super").(*LoxClass)
	instance := in.env.GetAt(distance-1, "this").(*LoxInstance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, errors.NewRuntimeErrorf(e.Method, errors.UndefinedProperty, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
