package eval

import (
	"go.creack.net/pcalc/ast"
	"go.creack.net/pcalc/value"
)

// frame holds the bindings of one function call: parameters plus any
// var defined inside the body.
type frame map[string]value.Value

// Environment is the mutable interpreter state: global variables,
// user functions, the `last` value and the call-frame stack. Builtin
// constants are resolved last and never stored here.
type Environment struct {
	vars   map[string]value.Value
	funcs  map[string]*ast.FunctionDef
	frames []frame
	last   value.Value
}

// NewEnvironment creates an empty environment with `last` seeded to 0.
func NewEnvironment() *Environment {
	return &Environment{
		vars:  map[string]value.Value{},
		funcs: map[string]*ast.FunctionDef{},
		last:  value.Num(0),
	}
}

// DefineVar inserts or overwrites a variable. With an active call
// frame the binding is frame-local and vanishes on return.
func (e *Environment) DefineVar(name string, v value.Value) error {
	if value.IsReserved(name) {
		return &value.RedefinitionError{Name: name}
	}
	if n := len(e.frames); n > 0 {
		e.frames[n-1][name] = v
		return nil
	}
	e.vars[name] = v
	return nil
}

// Assign updates an existing variable, innermost frame first.
func (e *Environment) Assign(name string, v value.Value) error {
	if value.IsReserved(name) {
		return &value.RedefinitionError{Name: name}
	}
	if n := len(e.frames); n > 0 {
		if _, ok := e.frames[n-1][name]; ok {
			e.frames[n-1][name] = v
			return nil
		}
	}
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return nil
	}
	return &value.UndefinedSymbolError{Kind: "variable", Name: name}
}

// Lookup resolves a name: `last`, then the innermost frame, then the
// globals, then the builtin constants. Only the innermost frame is
// visible, caller locals are not.
func (e *Environment) Lookup(name string) (value.Value, error) {
	if name == "last" {
		return e.last, nil
	}
	if n := len(e.frames); n > 0 {
		if v, ok := e.frames[n-1][name]; ok {
			return v, nil
		}
	}
	if v, ok := e.vars[name]; ok {
		return v, nil
	}
	if v, ok := value.Constant(name); ok {
		return v, nil
	}
	return value.Value{}, &value.UndefinedSymbolError{Kind: "variable", Name: name}
}

// DefineFn inserts or overwrites a function definition.
func (e *Environment) DefineFn(fn *ast.FunctionDef) error {
	if value.IsReserved(fn.Name) {
		return &value.RedefinitionError{Name: fn.Name}
	}
	e.funcs[fn.Name] = fn
	return nil
}

// Fn resolves a function by name.
func (e *Environment) Fn(name string) (*ast.FunctionDef, error) {
	fn, ok := e.funcs[name]
	if !ok {
		return nil, &value.UndefinedSymbolError{Kind: "function", Name: name}
	}
	return fn, nil
}

func (e *Environment) pushFrame(f frame) { e.frames = append(e.frames, f) }

func (e *Environment) popFrame() { e.frames = e.frames[:len(e.frames)-1] }

// Last returns the value of the most recent successful statement.
func (e *Environment) Last() value.Value { return e.last }

// SetLast records the value of a successful statement.
func (e *Environment) SetLast(v value.Value) { e.last = v }

// Reset drops all user variables, functions and frames, and reseeds
// `last`. Builtin constants are unaffected.
func (e *Environment) Reset() {
	e.vars = map[string]value.Value{}
	e.funcs = map[string]*ast.FunctionDef{}
	e.frames = nil
	e.last = value.Num(0)
}

// Vars returns a copy of the global variable table.
func (e *Environment) Vars() map[string]value.Value {
	out := make(map[string]value.Value, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}

// Funcs returns a copy of the function table.
func (e *Environment) Funcs() map[string]*ast.FunctionDef {
	out := make(map[string]*ast.FunctionDef, len(e.funcs))
	for k, v := range e.funcs {
		out[k] = v
	}
	return out
}
