// Package value defines the two scalar kinds a row's columns may hold.
package value

import "fmt"

// Kind tags which scalar a Value holds.
type Kind int

const (
	IntKind Kind = iota
	StringKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case StringKind:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a single row cell: either an int or a string. It is an
// immutable tagged union, never both at once.
type Value struct {
	kind Kind
	i    int64
	s    string
}

// Int wraps an integer as a Value.
func Int(v int64) Value {
	return Value{kind: IntKind, i: v}
}

// Str wraps a string as a Value.
func Str(v string) Value {
	return Value{kind: StringKind, s: v}
}

// Kind reports which scalar this Value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// AsInt returns the wrapped integer. ok is false if the Value holds a
// string; this is the only cast path callers use, mirroring the
// original executor's try/cast-or-skip pattern.
func (v Value) AsInt() (int64, bool) {
	if v.kind != IntKind {
		return 0, false
	}
	return v.i, true
}

// AsString returns the wrapped string. ok is false if the Value holds
// an int.
func (v Value) AsString() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.s, true
}

// String renders the value's raw contents for debug output; it never
// reveals the kind tag.
func (v Value) String() string {
	switch v.kind {
	case IntKind:
		return fmt.Sprintf("%d", v.i)
	case StringKind:
		return v.s
	default:
		return ""
	}
}
