package interp

import (
	"github.com/eirikvaa/jlox/internal/errors"
	"github.com/eirikvaa/jlox/internal/token"
)

// Environment is a chained lexical scope frame: a mapping from name to
// Value, plus an optional enclosing Environment. Frames are shared by
// reference — a closure holds the frame captured at declaration time, and
// new scopes reference (never copy) their enclosing frame, so cycles
// through closures are expected and tolerated.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a new scope chained to outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: outer}
}

// Define unconditionally inserts or overwrites a binding in this frame.
// Redefinition of globals is permitted; in non-global frames the resolver
// is responsible for rejecting redeclaration; the runtime does not enforce
// it here.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get reads name from this frame, falling back to enclosing frames.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, errors.NewRuntimeErrorf(name, errors.UndefinedVariable, "Undefined variable '%s'.", name.Lexeme)
}

// Assign updates an existing binding, searching outward through enclosing
// frames; it fails if the name is not already defined anywhere in the
// chain.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return errors.NewRuntimeErrorf(name, errors.UndefinedVariable, "Undefined variable '%s'.", name.Lexeme)
}

// ancestor walks exactly distance enclosing links — never falling back to
// a shorter or longer chain — per the resolver invariant that every
// resolved reference has a frame waiting at exactly that distance.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the frame exactly distance hops out; it
// must succeed per the resolver invariant.
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// AssignAt writes value directly into the frame exactly distance hops out.
func (e *Environment) AssignAt(distance int, name token.Token, value Value) {
	e.ancestor(distance).values[name.Lexeme] = value
}
