// Package resolver implements a static pass over the parsed AST: it walks
// every statement once, computes a scope distance for each
// Variable/Assign/This/Super expression, and rejects the handful of
// statically-invalid programs (bad return/this/super/break placement,
// self-inheriting classes, redeclaration, self-initialization).
//
// The resolver's scope-stack shape is kept in lock-step with the shape of
// Environment frames the interpreter builds at call time (a function scope
// per call, a `this`-defining scope per method invocation, and — when a
// superclass exists — an intervening `super`-defining scope), so that
// distances computed here always match hops taken there.
package resolver

import (
	"github.com/eirikvaa/jlox/internal/ast"
	"github.com/eirikvaa/jlox/internal/errors"
	"github.com/eirikvaa/jlox/internal/token"
)

// Resolvable is the subset of the Interpreter the resolver needs: a place
// to record each resolved expression's scope distance.
type Resolvable interface {
	Resolve(expr ast.Expr, depth int)
}

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Resolver performs the static scope-resolution pass.
type Resolver struct {
	interp     Resolvable
	reporter   errors.Reporter
	scopes     []map[string]bool
	currentFn  functionKind
	currentCls classKind
	loopDepth  int
}

// New creates a Resolver that records distances on interp and reports
// static errors to reporter.
func New(interp Resolvable, reporter errors.Reporter) *Resolver {
	return &Resolver{interp: interp, reporter: reporter}
}

// ResolveProgram resolves every top-level statement.
func (r *Resolver) ResolveProgram(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	_, _ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.reporter.ReportCompile(errors.CompileError{
			Line:    name.Line,
			Message: "Already a variable with this name in this scope.",
		})
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.interp.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
	// not found in any scope: treat as a global reference.
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFn := r.currentFn
	r.currentFn = kind
	defer func() { r.currentFn = enclosingFn }()

	// a loop outside the function body does not make `break` legal inside it.
	enclosingLoopDepth := r.loopDepth
	r.loopDepth = 0
	defer func() { r.loopDepth = enclosingLoopDepth }()

	r.beginScope()
	defer r.endScope()

	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
}

// --- StmtVisitor ---

func (r *Resolver) VisitBlockStmt(s *ast.Block) (interface{}, error) {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitVarStmt(s *ast.Var) (interface{}, error) {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.Function) (interface{}, error) {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, fnFunction)
	return nil, nil
}

func (r *Resolver) VisitClassStmt(s *ast.Class) (interface{}, error) {
	enclosingCls := r.currentCls
	r.currentCls = classClass
	defer func() { r.currentCls = enclosingCls }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.reporter.ReportCompile(errors.CompileError{
				Line:    s.Superclass.Name.Line,
				Message: "A class can't inherit from itself.",
			})
		}
		r.currentCls = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}
	return nil, nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.Expression) (interface{}, error) {
	r.resolveExpr(s.Expression)
	return nil, nil
}

func (r *Resolver) VisitIfStmt(s *ast.If) (interface{}, error) {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(s *ast.Print) (interface{}, error) {
	r.resolveExpr(s.Expression)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(s *ast.Return) (interface{}, error) {
	if r.currentFn == fnNone {
		r.reporter.ReportCompile(errors.CompileError{Line: s.Keyword.Line, Message: "Can't return from top-level code."})
	}
	if s.Value != nil {
		if r.currentFn == fnInitializer {
			r.reporter.ReportCompile(errors.CompileError{Line: s.Keyword.Line, Message: "Can't return a value from an initializer."})
		}
		r.resolveExpr(s.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(s *ast.While) (interface{}, error) {
	r.resolveExpr(s.Condition)
	r.loopDepth++
	r.resolveStmt(s.Body)
	r.loopDepth--
	return nil, nil
}

func (r *Resolver) VisitBreakStmt(s *ast.Break) (interface{}, error) {
	if r.loopDepth == 0 {
		r.reporter.ReportCompile(errors.CompileError{Line: s.Keyword.Line, Message: "Can't use 'break' outside a loop."})
	}
	return nil, nil
}

// --- ExprVisitor ---

func (r *Resolver) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	if len(r.scopes) > 0 {
		if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
			r.reporter.ReportCompile(errors.CompileError{
				Line:    e.Name.Line,
				Message: "Can't read local variable in its own initializer.",
			})
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) (interface{}, error) {
	if r.currentCls == classNone {
		r.reporter.ReportCompile(errors.CompileError{Line: e.Keyword.Line, Message: "Can't use 'this' outside of a class."})
		return nil, nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *ast.Super) (interface{}, error) {
	switch r.currentCls {
	case classNone:
		r.reporter.ReportCompile(errors.CompileError{Line: e.Keyword.Line, Message: "Can't use 'super' outside of a class."})
	case classClass:
		r.reporter.ReportCompile(errors.CompileError{Line: e.Keyword.Line, Message: "Can't use 'super' in a class with no superclass."})
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) (interface{}, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}
