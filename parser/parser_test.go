package parser

import (
	"errors"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/pcalc/ast"
	"go.creack.net/pcalc/lexer"
	"go.creack.net/pcalc/value"
)

// parseOne is a helper for single-line statements.
func parseOne(t *testing.T, input string) ast.Expr {
	t.Helper()
	expr, err := New().Parse(input)
	require.NoError(t, err)
	require.NotNil(t, expr)
	return expr
}

func TestParserRoundTrip(t *testing.T) {
	// Dump renders canonical prefix source, so parse->Dump is a cheap
	// structural check.
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "binary", input: "+ 1 2", want: "+ 1 2"},
		{name: "nested", input: "* 2 + x 20", want: "* 2 + x 20"},
		{name: "unary", input: "sqrt + ^ 3 2 ^ 4 2", want: "sqrt + ^ 3 2 ^ 4 2"},
		{name: "negative literal", input: "neg -12.5", want: "neg -12.5"},
		{name: "bool literal", input: "and true false", want: "and true false"},
		{name: "constant", input: "* 2 pi", want: "* 2 pi"},
		{name: "var define", input: "var x 5", want: "var x 5"},
		{name: "assign", input: "= x + x 1", want: "= x + x 1"},
		{name: "if no else", input: "if > x 10 ? x fi", want: "if > x 10 ? x fi"},
		{name: "if else", input: "if > x 10 ? x : 10 fi", want: "if > x 10 ? x : 10 fi"},
		{name: "def", input: "def f2c f begin / * - f 32 5 9 end", want: "def f2c f begin / * - f 32 5 9 end"},
		{name: "def multi stmt", input: "def g a begin var b * a a ; + b 1 end", want: "def g a begin var b * a a ; + b 1 end"},
		{name: "call", input: "call f2c 54 cend", want: "call f2c 54 cend"},
		{name: "call nested arg", input: "+ 1 call add + 2 3 1 cend", want: "+ 1 call add + 2 3 1 cend"},
		{name: "print", input: "print + 1 2", want: "print + 1 2"},
		{name: "xprint", input: "xprint last", want: "xprint last"},
		{name: "sequence", input: "var x 1 ; = x 2 ; x", want: "var x 1 ; = x 2 ; x"},
		{name: "glued semicolons", input: "var x 1;= x 2", want: "var x 1 ; = x 2"},
		{name: "trailing semicolon", input: "+ 1 2;", want: "+ 1 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseOne(t, tc.input).Dump())
		})
	}
}

func TestParserTree(t *testing.T) {
	got := parseOne(t, "if > x 10 ? call f x cend : var y 1 fi")
	want := &ast.Conditional{
		Cond: &ast.BinaryOp{
			Op:  ">",
			LHS: &ast.VariableRef{Name: "x"},
			RHS: &ast.NumberLiteral{Value: 10},
		},
		Then: &ast.FunctionCall{
			Name: "f",
			Args: []ast.Expr{&ast.VariableRef{Name: "x"}},
		},
		Else: &ast.VarDefine{
			Name: "y",
			Init: &ast.NumberLiteral{Value: 1},
		},
	}
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Fatalf("tree mismatch:\n%s", pretty.Sprint(diff))
	}
}

func TestParserPendingDef(t *testing.T) {
	p := New()

	expr, err := p.Parse("def dist x y begin")
	require.NoError(t, err)
	assert.Nil(t, expr)
	assert.True(t, p.Pending())

	expr, err = p.Parse("var dx2 ^ x 2")
	require.NoError(t, err)
	assert.Nil(t, expr)
	assert.True(t, p.Pending())

	expr, err = p.Parse("sqrt + dx2 ^ y 2 end")
	require.NoError(t, err)
	require.NotNil(t, expr)
	assert.False(t, p.Pending())

	def, ok := expr.(*ast.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "dist", def.Name)
	assert.Equal(t, []string{"x", "y"}, def.Params)
	assert.Len(t, def.Body, 2)
}

func TestParserSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing operand", input: "+ 1"},
		{name: "trailing operand", input: "+ 1 2 3"},
		{name: "missing question", input: "if true 1 fi"},
		{name: "missing fi", input: "if true ? 1 : 2"},
		{name: "missing cend", input: "call f 1 2"},
		{name: "empty body", input: "def f begin end"},
		{name: "stray keyword", input: "fi"},
		{name: "stray colon", input: ": 1"},
		{name: "bad call name", input: "call 5 cend"},
		{name: "missing var name", input: "var"},
		{name: "numeric var name", input: "var 5 1"},
		{name: "empty sequence part", input: "; 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New()
			expr, err := p.Parse(tc.input)
			require.Error(t, err)
			assert.Nil(t, expr)

			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr), "want SyntaxError, got %T: %v", err, err)
			// Errors drop the buffered tokens.
			assert.False(t, p.Pending())
		})
	}
}

func TestParserRedefinitionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "var constant", input: "var pi 3", want: "pi"},
		{name: "var keyword", input: "var def 1", want: "def"},
		{name: "var operator", input: "var sqrt 1", want: "sqrt"},
		{name: "var last", input: "var last 1", want: "last"},
		{name: "assign constant", input: "= e 3", want: "e"},
		{name: "def constant name", input: "def tau begin 1 end", want: "tau"},
		{name: "param constant", input: "def f pi begin 1 end", want: "pi"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New().Parse(tc.input)
			require.Error(t, err)

			var redefErr *value.RedefinitionError
			require.True(t, errors.As(err, &redefErr), "want RedefinitionError, got %T: %v", err, err)
			assert.Equal(t, tc.want, redefErr.Name)
		})
	}
}

func TestParserLexErrorPropagates(t *testing.T) {
	p := New()
	_, err := p.Parse("+ 1.2.3 4")
	require.Error(t, err)

	var lexErr *lexer.LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, "1.2.3", lexErr.Lexeme)
	assert.False(t, p.Pending())
}

func TestParserBlankLine(t *testing.T) {
	p := New()
	expr, err := p.Parse("   ")
	require.NoError(t, err)
	assert.Nil(t, expr)
	assert.False(t, p.Pending())
}
