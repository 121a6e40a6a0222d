package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var defaultLexer = New()

// Lexer splits text into tokens using an ordered, read-only rule table. A
// Lexer is safe for concurrent use.
type Lexer struct {
	rules []Rule
}

// New initializes a Lexer over the given rules, tried in the order given. The
// default rule table is used when no rules are passed.
func New(rules ...Rule) *Lexer {
	if len(rules) == 0 {
		rules = defaultRules
	}
	return &Lexer{
		rules: append([]Rule(nil), rules...),
	}
}

// Tokenize returns all the tokens within in, or an error if some character
// can't be identified. No tokens are returned on error.
func (lx *Lexer) Tokenize(in string) ([]Token, error) {
	tokens := []Token{}

	line, col := 1, 1
	for i := 0; i < len(in); {
		rule, n := lx.match(in[i:])
		if n < 0 {
			r, _ := utf8.DecodeRuneInString(in[i:])
			return nil, &InvalidCharacterError{
				Position:  i,
				Line:      line,
				Column:    col,
				Character: r,
			}
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: %v at position %d", ErrEmptyMatch, rule.tt, i)
		}

		lexeme := in[i : i+n]
		tokens = append(tokens, NewToken(rule.tt, lexeme, i, line, col))

		if nl := strings.Count(lexeme, "\n"); nl > 0 {
			line += nl
			col = 1 + utf8.RuneCountInString(lexeme[strings.LastIndexByte(lexeme, '\n')+1:])
		} else {
			col += utf8.RuneCountInString(lexeme)
		}
		i += n
	}

	return tokens, nil
}

// match returns the first rule matching at the start of s and the length of
// the matched text, or -1 if no rule matches.
func (lx *Lexer) match(s string) (Rule, int) {
	for _, rule := range lx.rules {
		if n := rule.match(s); n >= 0 {
			return rule, n
		}
	}
	return Rule{}, -1
}

// Tokenize splits in using the default rule table.
func Tokenize(in string) ([]Token, error) {
	return defaultLexer.Tokenize(in)
}

// TokenizeBytes takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func TokenizeBytes(in []byte) ([]Token, error) {
	return defaultLexer.Tokenize(string(in))
}
