// Package value defines the runtime value model of the calculator:
// a tagged Number/Boolean union, the builtin operator registry and the
// typed errors shared by the parser and the evaluator.
package value

import "strconv"

// Kind is the type tag of a Value.
type Kind int

const (
	Number Kind = iota
	Boolean
)

// String returns the kind name as used in error messages.
func (k Kind) String() string {
	if k == Number {
		return "number"
	}
	return "boolean"
}

// Value is an immutable Number or Boolean scalar. Every evaluation
// step produces a fresh Value.
type Value struct {
	kind Kind
	num  float64
	b    bool
}

// Num creates a Number value.
func Num(n float64) Value { return Value{kind: Number, num: n} }

// Bool creates a Boolean value.
func Bool(b bool) Value { return Value{kind: Boolean, b: b} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNum() bool  { return v.kind == Number }
func (v Value) IsBool() bool { return v.kind == Boolean }

// Num returns the numeric payload, failing when the value is a Boolean.
func (v Value) Num() (float64, error) {
	if v.kind != Number {
		return 0, &TypeMismatchError{Value: v, Want: Number}
	}
	return v.num, nil
}

// Bool returns the boolean payload, failing when the value is a Number.
func (v Value) Bool() (bool, error) {
	if v.kind != Boolean {
		return false, &TypeMismatchError{Value: v, Want: Boolean}
	}
	return v.b, nil
}

// Equal reports same-kind equality. NaN compares unequal to itself,
// following float64 semantics.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == Number {
		return v.num == o.num
	}
	return v.b == o.b
}

// SameKind fails with a TypeMismatchError when the two values have
// different kinds.
func (v Value) SameKind(o Value) error {
	if v.kind != o.kind {
		return &TypeMismatchError{Value: o, Want: v.kind}
	}
	return nil
}

func (v Value) String() string {
	if v.kind == Boolean {
		return strconv.FormatBool(v.b)
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}
