package parser

import (
	"strconv"

	"go.creack.net/pcalc/ast"
	"go.creack.net/pcalc/lexer"
	"go.creack.net/pcalc/value"
)

func (p *Parser) parseExpr() (ast.Expr, error) {
	tok := p.lex.NextToken()
	switch tok.Type {
	case lexer.TokEOF:
		return nil, syntaxErrorf("unexpected end of input")
	case lexer.TokNumber:
		n, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, syntaxErrorf("invalid number %s", tok)
		}
		return &ast.NumberLiteral{Value: n}, nil
	case lexer.TokIdentifier:
		if value.IsConstant(tok.Value) {
			return &ast.ConstantRef{Name: tok.Value}, nil
		}
		return &ast.VariableRef{Name: tok.Value}, nil
	case lexer.TokOperator:
		return p.parseOperator(tok.Value)
	case lexer.TokKeyword:
		return p.parseKeyword(tok.Value)
	default:
		return nil, syntaxErrorf("unexpected token %s", tok)
	}
}

// parseOperator consumes as many operands as the registry says the
// operator takes.
func (p *Parser) parseOperator(op string) (ast.Expr, error) {
	if value.IsBinaryOp(op) {
		lhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Op: op, LHS: lhs, RHS: rhs}, nil
	}
	operand, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{Op: op, Operand: operand}, nil
}

func (p *Parser) parseKeyword(kw string) (ast.Expr, error) {
	switch kw {
	case value.KwTrue:
		return &ast.BoolLiteral{Value: true}, nil
	case value.KwFalse:
		return &ast.BoolLiteral{Value: false}, nil
	case value.KwVar:
		name, err := p.bindName("variable")
		if err != nil {
			return nil, err
		}
		init, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.VarDefine{Name: name, Init: init}, nil
	case value.KwAssign:
		name, err := p.bindName("variable")
		if err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Name: name, Expr: expr}, nil
	case value.KwIf:
		return p.parseConditional()
	case value.KwDef:
		return p.parseFunctionDef()
	case value.KwCall:
		return p.parseCall()
	case value.KwPrint, value.KwXPrint:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Print{Kind: kw, Expr: expr}, nil
	default:
		// fi, begin, end, cend outside their construct.
		return nil, syntaxErrorf("unexpected keyword %q", kw)
	}
}

// parseConditional parses `if cond ? then [: else] fi`.
func (p *Parser) parseConditional() (ast.Expr, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.lex.NextToken(); tok.Type != lexer.TokQuestion {
		return nil, syntaxErrorf("expected '?' in conditional, got %s", tok)
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	switch tok := p.lex.NextToken(); {
	case tok.Type == lexer.TokColon:
		els, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword(value.KwFi); err != nil {
			return nil, err
		}
		return &ast.Conditional{Cond: cond, Then: then, Else: els}, nil
	case tok.Is(lexer.TokKeyword, value.KwFi):
		return &ast.Conditional{Cond: cond, Then: then}, nil
	default:
		return nil, syntaxErrorf("expected ':' or %q in conditional, got %s", value.KwFi, tok)
	}
}

// parseFunctionDef parses `def name params... begin stmts end`. Body
// statements may be separated by ';' or plain juxtaposition.
func (p *Parser) parseFunctionDef() (ast.Expr, error) {
	name, err := p.bindName("function")
	if err != nil {
		return nil, err
	}

	var params []string
	for !p.lex.PeekToken().Is(lexer.TokKeyword, value.KwBegin) {
		if p.lex.IsEmpty() {
			return nil, syntaxErrorf("missing %q in function definition", value.KwBegin)
		}
		param, err := p.bindName("parameter")
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	p.lex.NextToken() // Consume 'begin'.

	var body []ast.Expr
	for {
		if p.lex.IsEmpty() {
			return nil, syntaxErrorf("missing %q in function definition", value.KwEnd)
		}
		if p.lex.PeekToken().Is(lexer.TokKeyword, value.KwEnd) {
			p.lex.NextToken()
			break
		}
		stmt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		if p.lex.PeekToken().Type == lexer.TokSemicolon {
			p.lex.NextToken()
		}
	}
	if len(body) == 0 {
		return nil, syntaxErrorf("empty body in function %q", name)
	}
	return &ast.FunctionDef{Name: name, Params: params, Body: body}, nil
}

// parseCall parses `call name args... cend`.
func (p *Parser) parseCall() (ast.Expr, error) {
	tok := p.lex.NextToken()
	if tok.Type != lexer.TokIdentifier {
		return nil, syntaxErrorf("invalid function name %s in call", tok)
	}
	name := tok.Value

	var args []ast.Expr
	for !p.lex.PeekToken().Is(lexer.TokKeyword, value.KwCend) {
		if p.lex.IsEmpty() {
			return nil, syntaxErrorf("missing %q in call to %q", value.KwCend, name)
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.lex.NextToken() // Consume 'cend'.
	return &ast.FunctionCall{Name: name, Args: args}, nil
}
