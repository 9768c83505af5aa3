package interp

import (
	"github.com/eirikvaa/jlox/internal/errors"
	"github.com/eirikvaa/jlox/internal/token"
)

// LoxClass is a runtime class value: a name, an optional superclass, and
// its own method table. Method lookup walks up the superclass chain, so a
// subclass need only store methods it overrides or adds.
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	methods    map[string]*LoxFunction
}

// NewLoxClass creates a class with the given own methods. superclass may
// be nil.
func NewLoxClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{Name: name, Superclass: superclass, methods: methods}
}

// FindMethod looks up name in this class's own table, falling back to the
// superclass chain. It returns nil if no class in the chain defines it.
func (c *LoxClass) FindMethod(name string) *LoxFunction {
	if m, ok := c.methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the arity of init (found through the superclass chain), or 0 if
// no class in the chain defines one.
func (c *LoxClass) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance, running init (if declared) with args,
// and returns the instance itself regardless of what init returns.
func (c *LoxClass) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewLoxInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *LoxClass) String() string {
	return c.Name
}

// LoxInstance is a runtime object: a reference to its class plus its own
// mutable field map. Fields shadow methods of the same name when read.
type LoxInstance struct {
	class  *LoxClass
	fields map[string]Value
}

// NewLoxInstance creates an instance of class with no fields set.
func NewLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: make(map[string]Value)}
}

// Get reads a field, then (if no field by that name exists) a method bound
// to this instance. name is the property-access token, used for the error
// location when neither exists.
func (i *LoxInstance) Get(name token.Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if m := i.class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(i), nil
	}
	return nil, errors.NewRuntimeErrorf(name, errors.UndefinedProperty, "Undefined property '%s'.", name.Lexeme)
}

// Set unconditionally assigns a field, creating it if absent.
func (i *LoxInstance) Set(name token.Token, value Value) {
	i.fields[name.Lexeme] = value
}

func (i *LoxInstance) String() string {
	return i.class.Name + " instance"
}
