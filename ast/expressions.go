package ast

import (
	"fmt"
	"strconv"
)

// NumberLiteral is a numeric literal, e.g. `-12.5`.
type NumberLiteral struct {
	Value float64
}

func (*NumberLiteral) expr() {}

func (n *NumberLiteral) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Value bool
}

func (*BoolLiteral) expr() {}

func (b *BoolLiteral) Dump() string { return strconv.FormatBool(b.Value) }

// ConstantRef references a builtin constant such as `pi`.
type ConstantRef struct {
	Name string
}

func (*ConstantRef) expr() {}

func (c *ConstantRef) Dump() string { return c.Name }

// VariableRef references a user variable.
type VariableRef struct {
	Name string
}

func (*VariableRef) expr() {}

func (v *VariableRef) Dump() string { return v.Name }

// BinaryOp applies a two-operand builtin, e.g. `+ 1 2`.
type BinaryOp struct {
	Op  string
	LHS Expr
	RHS Expr
}

func (*BinaryOp) expr() {}

func (b *BinaryOp) Dump() string {
	return fmt.Sprintf("%s %s %s", b.Op, b.LHS.Dump(), b.RHS.Dump())
}

// UnaryOp applies a one-operand builtin, e.g. `sqrt 2`.
type UnaryOp struct {
	Op      string
	Operand Expr
}

func (*UnaryOp) expr() {}

func (u *UnaryOp) Dump() string {
	return fmt.Sprintf("%s %s", u.Op, u.Operand.Dump())
}

// Conditional is `if cond ? then [: else] fi`. Else is nil when the
// branch was omitted.
type Conditional struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*Conditional) expr() {}

func (c *Conditional) Dump() string {
	if c.Else == nil {
		return fmt.Sprintf("if %s ? %s fi", c.Cond.Dump(), c.Then.Dump())
	}
	return fmt.Sprintf("if %s ? %s : %s fi", c.Cond.Dump(), c.Then.Dump(), c.Else.Dump())
}
