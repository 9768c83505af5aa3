package interp

// Callable is anything that can appear on the left of a call expression:
// user-defined functions and methods, bound methods, classes (whose call
// constructs an instance), and native functions like clock().
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
	String() string
}
