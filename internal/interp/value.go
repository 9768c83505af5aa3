package interp

import (
	"strconv"
	"strings"
)

// Value is a runtime Language value. The interpreter uses Go's own dynamic
// typing rather than a hand-rolled tagged union: nil, bool, float64, and
// string cover the primitive cases; Callable, *LoxClass, and *LoxInstance
// cover everything else.
type Value = interface{}

// IsTruthy applies the Language's truthiness rule: nil and false are falsy,
// everything else — including 0 and the empty string — is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual applies the Language's equality rule: nil equals only nil, and
// values of differing dynamic type are never equal (no implicit
// conversion between numbers and strings).
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a Value the way print and string concatenation do.
// Integral floats print without a trailing ".0"; functions, classes and
// instances print through their String method; any other dynamic type
// renders as "nil".
func Stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if strings.HasSuffix(s, ".0") {
			return strings.TrimSuffix(s, ".0")
		}
		return s
	case string:
		return x
	case *LoxInstance:
		return x.String()
	case *LoxClass:
		return x.String()
	case *LoxFunction:
		return x.String()
	case *NativeFunction:
		return x.String()
	default:
		return "nil"
	}
}
