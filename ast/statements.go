package ast

import (
	"fmt"
	"strings"
)

// VarDefine is `var name expr`. Inside a function body the binding
// lands in the call frame, otherwise in the global table.
type VarDefine struct {
	Name string
	Init Expr
}

func (*VarDefine) expr() {}

func (v *VarDefine) Dump() string {
	return fmt.Sprintf("var %s %s", v.Name, v.Init.Dump())
}

// Assign is `= name expr`. The name must already be defined.
type Assign struct {
	Name string
	Expr Expr
}

func (*Assign) expr() {}

func (a *Assign) Dump() string {
	return fmt.Sprintf("= %s %s", a.Name, a.Expr.Dump())
}

// FunctionDef is `def name params... begin body end`. The node itself
// is registered in the environment's function table.
type FunctionDef struct {
	Name   string
	Params []string
	Body   []Expr
}

func (*FunctionDef) expr() {}

func (f *FunctionDef) Dump() string {
	parts := append([]string{"def", f.Name}, f.Params...)
	parts = append(parts, "begin")
	for i, stmt := range f.Body {
		if i > 0 {
			parts = append(parts, ";")
		}
		parts = append(parts, stmt.Dump())
	}
	parts = append(parts, "end")
	return strings.Join(parts, " ")
}

// FunctionCall is `call name args... cend`.
type FunctionCall struct {
	Name string
	Args []Expr
}

func (*FunctionCall) expr() {}

func (f *FunctionCall) Dump() string {
	parts := []string{"call", f.Name}
	for _, arg := range f.Args {
		parts = append(parts, arg.Dump())
	}
	parts = append(parts, "cend")
	return strings.Join(parts, " ")
}

// Sequence is a `;`-joined statement list evaluated left to right.
type Sequence struct {
	Stmts []Expr
}

func (*Sequence) expr() {}

func (s *Sequence) Dump() string {
	parts := make([]string, 0, len(s.Stmts))
	for _, stmt := range s.Stmts {
		parts = append(parts, stmt.Dump())
	}
	return strings.Join(parts, " ; ")
}

// Print is `print expr` or `xprint expr`: evaluate, write the value to
// the output sink, return it unchanged.
type Print struct {
	Kind string // "print" or "xprint".
	Expr Expr
}

func (*Print) expr() {}

func (p *Print) Dump() string {
	return fmt.Sprintf("%s %s", p.Kind, p.Expr.Dump())
}
