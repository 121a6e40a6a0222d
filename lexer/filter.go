package lexer

import (
	"strings"
)

// Filter returns the tokens for which keep returns true, in order. The input
// slice is not modified.
func Filter(tokens []Token, keep func(Token) bool) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if keep(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// WithoutWhitespace drops whitespace tokens. Tokenize never does this on its
// own.
func WithoutWhitespace(tokens []Token) []Token {
	return Filter(tokens, func(tok Token) bool {
		return !tok.Is(TokenWhitespace)
	})
}

// Join concatenates the text of all tokens. For the output of a successful
// Tokenize call it reproduces the original input.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text())
	}
	return sb.String()
}
