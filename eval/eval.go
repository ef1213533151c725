// Package eval walks the expression tree against an Environment.
package eval

import (
	"fmt"
	"io"
	"os"

	"go.creack.net/pcalc/ast"
	"go.creack.net/pcalc/value"
)

// maxCallDepth bounds recursion. Exceeding it fails the in-flight
// statement with a StackOverflowError, the environment survives.
const maxCallDepth = 10_000

// Evaluator is a tree-walking interpreter. The output sink receives
// print/xprint text.
type Evaluator struct {
	out   io.Writer
	depth int
}

// New creates an Evaluator writing print output to out, defaulting to
// stdout when nil.
func New(out io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{out: out}
}

// Eval evaluates one statement tree. On error the environment keeps
// every mutation already applied, only call frames are unwound.
func (ev *Evaluator) Eval(node ast.Expr, env *Environment) (value.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return value.Num(n.Value), nil
	case *ast.BoolLiteral:
		return value.Bool(n.Value), nil
	case *ast.ConstantRef:
		v, ok := value.Constant(n.Name)
		if !ok {
			return value.Value{}, &value.UndefinedSymbolError{Kind: "variable", Name: n.Name}
		}
		return v, nil
	case *ast.VariableRef:
		return env.Lookup(n.Name)
	case *ast.VarDefine:
		v, err := ev.Eval(n.Init, env)
		if err != nil {
			return value.Value{}, err
		}
		if err := env.DefineVar(n.Name, v); err != nil {
			return value.Value{}, err
		}
		return v, nil
	case *ast.Assign:
		v, err := ev.Eval(n.Expr, env)
		if err != nil {
			return value.Value{}, err
		}
		if err := env.Assign(n.Name, v); err != nil {
			return value.Value{}, err
		}
		return v, nil
	case *ast.BinaryOp:
		return ev.evalBinary(n, env)
	case *ast.UnaryOp:
		fn, ok := value.Unary(n.Op)
		if !ok {
			return value.Value{}, &value.UndefinedSymbolError{Kind: "operator", Name: n.Op}
		}
		v, err := ev.Eval(n.Operand, env)
		if err != nil {
			return value.Value{}, err
		}
		return fn(v)
	case *ast.Conditional:
		return ev.evalConditional(n, env)
	case *ast.FunctionDef:
		if err := env.DefineFn(n); err != nil {
			return value.Value{}, err
		}
		return value.Bool(true), nil
	case *ast.FunctionCall:
		return ev.evalCall(n, env)
	case *ast.Sequence:
		var ret value.Value
		for _, stmt := range n.Stmts {
			v, err := ev.Eval(stmt, env)
			if err != nil {
				return value.Value{}, err
			}
			env.SetLast(v)
			ret = v
		}
		return ret, nil
	case *ast.Print:
		v, err := ev.Eval(n.Expr, env)
		if err != nil {
			return value.Value{}, err
		}
		fmt.Fprintln(ev.out, v)
		return v, nil
	default:
		return value.Value{}, fmt.Errorf("unsupported node %T", node)
	}
}

// evalBinary dispatches through the builtin table, except for and/or
// which short-circuit: the right operand is not evaluated when the
// left one decides.
func (ev *Evaluator) evalBinary(n *ast.BinaryOp, env *Environment) (value.Value, error) {
	if n.Op == value.And || n.Op == value.Or {
		lhs, err := ev.Eval(n.LHS, env)
		if err != nil {
			return value.Value{}, err
		}
		b, err := lhs.Bool()
		if err != nil {
			return value.Value{}, err
		}
		if n.Op == value.And && !b {
			return value.Bool(false), nil
		}
		if n.Op == value.Or && b {
			return value.Bool(true), nil
		}
		rhs, err := ev.Eval(n.RHS, env)
		if err != nil {
			return value.Value{}, err
		}
		rb, err := rhs.Bool()
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(rb), nil
	}

	fn, ok := value.Binary(n.Op)
	if !ok {
		return value.Value{}, &value.UndefinedSymbolError{Kind: "operator", Name: n.Op}
	}
	lhs, err := ev.Eval(n.LHS, env)
	if err != nil {
		return value.Value{}, err
	}
	rhs, err := ev.Eval(n.RHS, env)
	if err != nil {
		return value.Value{}, err
	}
	return fn(lhs, rhs)
}

// evalConditional requires a Boolean condition. A false condition
// without an else branch yields Boolean(false).
func (ev *Evaluator) evalConditional(n *ast.Conditional, env *Environment) (value.Value, error) {
	cond, err := ev.Eval(n.Cond, env)
	if err != nil {
		return value.Value{}, err
	}
	b, err := cond.Bool()
	if err != nil {
		return value.Value{}, err
	}
	if b {
		return ev.Eval(n.Then, env)
	}
	if n.Else == nil {
		return value.Bool(false), nil
	}
	return ev.Eval(n.Else, env)
}

// evalCall evaluates arguments in the caller's scope, then runs the
// body inside a fresh frame layered over the globals. The frame pops
// unconditionally, error or not.
func (ev *Evaluator) evalCall(n *ast.FunctionCall, env *Environment) (value.Value, error) {
	fn, err := env.Fn(n.Name)
	if err != nil {
		return value.Value{}, err
	}
	if len(n.Args) != len(fn.Params) {
		return value.Value{}, &value.ArityMismatchError{
			Name: n.Name,
			Want: len(fn.Params),
			Got:  len(n.Args),
		}
	}

	binds := make(frame, len(fn.Params))
	for i, arg := range n.Args {
		v, err := ev.Eval(arg, env)
		if err != nil {
			return value.Value{}, err
		}
		binds[fn.Params[i]] = v
	}

	if ev.depth >= maxCallDepth {
		return value.Value{}, &value.StackOverflowError{Name: n.Name}
	}
	ev.depth++
	env.pushFrame(binds)
	defer func() {
		env.popFrame()
		ev.depth--
	}()

	var ret value.Value
	for _, stmt := range fn.Body {
		v, err := ev.Eval(stmt, env)
		if err != nil {
			return value.Value{}, err
		}
		ret = v
	}
	return ret, nil
}
