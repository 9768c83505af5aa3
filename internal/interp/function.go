package interp

import "github.com/eirikvaa/jlox/internal/ast"

// LoxFunction is a user-defined function or method: an AST declaration
// closed over the environment active at the point it was declared.
type LoxFunction struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewLoxFunction wraps a parsed function declaration with the environment
// it closes over. isInitializer marks a class's init method, which gets
// the implicit-return-of-this treatment at call time.
func NewLoxFunction(decl *ast.Function, closure *Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer}
}

// Bind returns a new LoxFunction whose closure is extended with `this`
// bound to instance. Each call to bind produces a fresh closure frame, so
// the same method looked up on two instances never shares a `this`.
func (f *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return &LoxFunction{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

func (f *LoxFunction) Arity() int {
	return len(f.declaration.Params)
}

func (f *LoxFunction) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, p := range f.declaration.Params {
		env.Define(p.Lexeme, args[i])
	}

	err := in.executeBlock(f.declaration.Body, env)
	if r, ok := asReturn(err); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return r.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *LoxFunction) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
