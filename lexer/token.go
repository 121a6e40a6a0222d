package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	offset int
	line   int
	col    int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, offset int, line int, col int) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		offset: offset,
		line:   line,
		col:    col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Offset returns the 0-based byte offset where the lexical unit starts
func (t Token) Offset() int {
	return t.offset
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(%v, %q)", t.tt, t.lexeme)
}
