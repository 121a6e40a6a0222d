package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "NUMBER", TokenNumber.String())
	assert.Equal(t, "LPAREN", TokenLeftParen.String())
	assert.Equal(t, "RPAREN", TokenRightParen.String())
	assert.Equal(t, "INVALID", TokenInvalid.String())
	assert.Equal(t, "INVALID", TokenType(200).String())
}

func TestTokenString(t *testing.T) {
	tok := NewToken(TokenIdentifier, "my_variable", 0, 1, 1)

	assert.Equal(t, `(IDENTIFIER, "my_variable")`, tok.String())
	assert.True(t, tok.Is(TokenIdentifier))
	assert.False(t, tok.Is(TokenNumber))
}

func TestFilter(t *testing.T) {
	tokens, err := Tokenize(`1 + 2`)
	assert.NoError(t, err)

	filtered := WithoutWhitespace(tokens)
	assert.Equal(t, []TokenType{TokenNumber, TokenPlus, TokenNumber}, getTokenTypes(filtered))
	assert.Len(t, tokens, 5)
	assert.Equal(t, "1+2", Join(filtered))

	numbers := Filter(tokens, func(tok Token) bool {
		return tok.Is(TokenNumber)
	})
	assert.Equal(t, []string{"1", "2"}, getTokenTexts(numbers))
}
