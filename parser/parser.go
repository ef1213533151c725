// Package parser builds expression trees from prefix-notation input.
// Fixed-arity operators self-terminate, so there is no precedence to
// resolve: each construct knows exactly how many operands to consume.
package parser

import (
	"fmt"

	"go.creack.net/pcalc/ast"
	"go.creack.net/pcalc/lexer"
	"go.creack.net/pcalc/value"
)

// SyntaxError reports malformed input: a missing operand, a missing
// terminator or an unexpected token.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return e.Msg }

func syntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// Parser turns lines of input into statement trees. Tokens accumulate
// across lines so a `def` can span several of them.
type Parser struct {
	lex *lexer.Lexer
}

// New creates an empty Parser.
func New() *Parser {
	return &Parser{lex: lexer.New()}
}

// Pending reports whether a partial statement is buffered, waiting for
// more input. The REPL switches to its continuation prompt on it.
func (p *Parser) Pending() bool { return !p.lex.IsEmpty() }

// Parse tokenizes one line and builds its statement tree. It returns
// (nil, nil) for blank input and for an incomplete `def ... end` that
// needs more lines. Any error drops the buffered tokens.
func (p *Parser) Parse(input string) (ast.Expr, error) {
	if err := p.lex.Tokenize(input); err != nil {
		p.lex.Clear()
		return nil, err
	}
	if p.lex.IsEmpty() {
		return nil, nil
	}
	if p.lex.StartsWith(lexer.TokKeyword, value.KwDef) && !p.lex.EndsWith(lexer.TokKeyword, value.KwEnd) {
		return nil, nil
	}

	expr, err := p.parseStatement()
	if err != nil {
		p.lex.Clear()
		return nil, err
	}
	return expr, nil
}

// parseStatement parses `expr (';' expr)*`, wrapping multiple parts in
// a Sequence. A trailing ';' is tolerated.
func (p *Parser) parseStatement() (ast.Expr, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.lex.PeekToken().Type != lexer.TokSemicolon {
		if tok := p.lex.NextToken(); tok.Type != lexer.TokEOF {
			return nil, syntaxErrorf("unexpected token %s after statement", tok)
		}
		return expr, nil
	}

	stmts := []ast.Expr{expr}
	for p.lex.PeekToken().Type == lexer.TokSemicolon {
		p.lex.NextToken()
		if p.lex.IsEmpty() {
			break
		}
		stmt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if tok := p.lex.NextToken(); tok.Type != lexer.TokEOF {
		return nil, syntaxErrorf("unexpected token %s after statement", tok)
	}
	if len(stmts) == 1 {
		return stmts[0], nil
	}
	return &ast.Sequence{Stmts: stmts}, nil
}

// expectKeyword consumes the next token, requiring the given keyword.
func (p *Parser) expectKeyword(kw string) error {
	tok := p.lex.NextToken()
	if !tok.Is(lexer.TokKeyword, kw) {
		return syntaxErrorf("expected %q, got %s", kw, tok)
	}
	return nil
}

// bindName consumes a name about to be defined. Constants, operators
// and reserved words are not valid targets.
func (p *Parser) bindName(kind string) (string, error) {
	tok := p.lex.NextToken()
	switch tok.Type {
	case lexer.TokIdentifier:
		if value.IsReserved(tok.Value) {
			return "", &value.RedefinitionError{Name: tok.Value}
		}
		return tok.Value, nil
	case lexer.TokKeyword, lexer.TokOperator:
		return "", &value.RedefinitionError{Name: tok.Value}
	case lexer.TokEOF:
		return "", syntaxErrorf("missing %s name", kind)
	default:
		return "", syntaxErrorf("invalid %s name %s", kind, tok)
	}
}
