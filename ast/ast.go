// Package ast defines the expression tree of the prefix calculator.
// Everything is an expression: statements like var or def are nodes
// that yield a value too.
package ast

// Expr is implemented by every node of the tree.
type Expr interface {
	// Dump renders the node back as prefix-notation source.
	Dump() string
	expr()
}
