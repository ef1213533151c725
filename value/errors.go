package value

import "fmt"

// TypeMismatchError reports a value used where the other kind was
// required. Returned by Value accessors and by kind-checked operators.
type TypeMismatchError struct {
	Value Value
	Want  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s is not a %s", e.Value, e.Want)
}

// UndefinedSymbolError reports a reference to a variable or function
// that was never defined.
type UndefinedSymbolError struct {
	Kind string // "variable" or "function"
	Name string
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// RedefinitionError reports an attempt to define or assign a name that
// collides with a constant or a reserved word.
type RedefinitionError struct {
	Name string
}

func (e *RedefinitionError) Error() string {
	return fmt.Sprintf("cannot redefine reserved name %q", e.Name)
}

// ArityMismatchError reports a function call with the wrong number of
// arguments.
type ArityMismatchError struct {
	Name string
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("function %q expects %d argument(s), got %d", e.Name, e.Want, e.Got)
}

// StackOverflowError reports that the call-depth cap was exceeded.
// It aborts the in-flight statement only.
type StackOverflowError struct {
	Name string
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("call depth exceeded calling %q", e.Name)
}
