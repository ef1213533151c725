package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals + identifiers.
	TokNumber
	TokIdentifier

	// Reserved words: var = if fi def begin end call cend print xprint true false.
	TokKeyword

	// Builtin operator names: + - * / % ^ max min == != < <= > >= and or
	// and the unary table (sqrt, ln, neg, ...).
	TokOperator

	// Punctuation, always standalone.
	TokSemicolon // ';'.
	TokQuestion  // '?'.
	TokColon     // ':'.

	// End of tokens.
	FinalToken
)

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:     "NUMBER",
	TokIdentifier: "IDENTIFIER",
	TokKeyword:    "KEYWORD",
	TokOperator:   "OPERATOR",

	TokSemicolon: "SEMICOLON",
	TokQuestion:  "QUESTION",
	TokColon:     "COLON",
}

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents one lexical token of a statement. Pos is the byte
// offset of the token within the line it was scanned from.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

func (t Token) String() string {
	if t.Type == TokEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos, t.Value)
}

// Is reports whether the token has the given type and value.
func (t Token) Is(tt TokenType, value string) bool {
	return t.Type == tt && t.Value == value
}
