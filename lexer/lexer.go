// Package lexer provides the lexical analyzer for the prefix calculator
// language. Input is whitespace separated, with ';', '?' and ':' always
// forming standalone tokens even when glued to a word.
package lexer

import (
	"fmt"

	"go.creack.net/pcalc/value"
)

// LexError reports a word that matches no token class, carrying the
// offending substring and its byte offset within the scanned line.
type LexError struct {
	Lexeme string
	Pos    int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid token %q at offset %d", e.Lexeme, e.Pos)
}

// Lexer accumulates tokens across Tokenize calls so a statement can
// span multiple input lines. The parser drains the queue.
type Lexer struct {
	tokens []Token
}

// New creates an empty Lexer.
func New() *Lexer {
	return &Lexer{}
}

// Tokenize scans one line of input and appends its tokens to the
// queue. On error the queue is left untouched.
func (l *Lexer) Tokenize(input string) error {
	toks := l.tokens
	for i := 0; i < len(input); {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == ';':
			toks = append(toks, Token{Type: TokSemicolon, Value: ";", Pos: i})
			i++
		case c == '?':
			toks = append(toks, Token{Type: TokQuestion, Value: "?", Pos: i})
			i++
		case c == ':':
			toks = append(toks, Token{Type: TokColon, Value: ":", Pos: i})
			i++
		default:
			start := i
			for i < len(input) && !isDelim(input[i]) {
				i++
			}
			tok, err := classify(input[start:i], start)
			if err != nil {
				return err
			}
			toks = append(toks, tok)
		}
	}
	l.tokens = toks
	return nil
}

// NextToken pops the next token off the queue, returning an EOF token
// when the queue is drained.
func (l *Lexer) NextToken() Token {
	if len(l.tokens) == 0 {
		return Token{Type: TokEOF, Value: "EOF"}
	}
	tok := l.tokens[0]
	l.tokens = l.tokens[1:]
	return tok
}

// PeekToken returns the next token without consuming it.
func (l *Lexer) PeekToken() Token {
	if len(l.tokens) == 0 {
		return Token{Type: TokEOF, Value: "EOF"}
	}
	return l.tokens[0]
}

// IsEmpty reports whether the queue is drained.
func (l *Lexer) IsEmpty() bool { return len(l.tokens) == 0 }

// Clear drops any queued tokens.
func (l *Lexer) Clear() { l.tokens = l.tokens[:0] }

// StartsWith reports whether the first queued token matches.
func (l *Lexer) StartsWith(tt TokenType, val string) bool {
	return len(l.tokens) > 0 && l.tokens[0].Is(tt, val)
}

// EndsWith reports whether the last queued token matches.
func (l *Lexer) EndsWith(tt TokenType, val string) bool {
	return len(l.tokens) > 0 && l.tokens[len(l.tokens)-1].Is(tt, val)
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ';', '?', ':':
		return true
	}
	return false
}

// classify matches a word against the static tables first, then the
// numeral and identifier grammars.
func classify(word string, pos int) (Token, error) {
	switch {
	case value.IsKeyword(word):
		return Token{Type: TokKeyword, Value: word, Pos: pos}, nil
	case value.IsOperator(word):
		return Token{Type: TokOperator, Value: word, Pos: pos}, nil
	case looksNumeric(word):
		if !isNumber(word) {
			return Token{}, &LexError{Lexeme: word, Pos: pos}
		}
		return Token{Type: TokNumber, Value: word, Pos: pos}, nil
	case isIdentifier(word):
		return Token{Type: TokIdentifier, Value: word, Pos: pos}, nil
	}
	return Token{}, &LexError{Lexeme: word, Pos: pos}
}

// looksNumeric reports whether a word is committed to the numeral
// grammar: it starts with a digit, or with '-'/'.' followed by more.
// '-' alone is the subtract operator and never reaches this point.
func looksNumeric(word string) bool {
	c := word[0]
	return isDigit(c) || c == '-' || c == '.'
}

// isNumber validates an optional leading '-', digits and at most one
// decimal point. "1.2.3" and "12a" are rejected.
func isNumber(word string) bool {
	s := word
	if s[0] == '-' {
		s = s[1:]
	}
	digits, dot := 0, false
	for i := 0; i < len(s); i++ {
		switch {
		case isDigit(s[i]):
			digits++
		case s[i] == '.':
			if dot {
				return false
			}
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// isIdentifier validates a letter followed by letters, digits or '_'.
func isIdentifier(word string) bool {
	if !isAlpha(word[0]) {
		return false
	}
	for i := 1; i < len(word); i++ {
		if !isAlpha(word[i]) && !isDigit(word[i]) && word[i] != '_' {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
