package lexer

import (
	"regexp"
)

// Rule pairs a token type with the pattern that recognizes it.
type Rule struct {
	tt TokenType
	re *regexp.Regexp
}

// NewRule compiles pattern anchored at the start of the text, so the rule can
// only match at the current scan offset. It panics if pattern is invalid.
func NewRule(tt TokenType, pattern string) Rule {
	return Rule{
		tt: tt,
		re: regexp.MustCompile(`\A(?:` + pattern + `)`),
	}
}

// Type returns the token type produced by the rule
func (r Rule) Type() TokenType {
	return r.tt
}

// match returns the length of the text matched at the start of s, or -1. A
// zero Rule never matches.
func (r Rule) match(s string) int {
	if r.re == nil {
		return -1
	}
	loc := r.re.FindStringIndex(s)
	if loc == nil {
		return -1
	}
	return loc[1]
}

// defaultRules is the rule table in priority order. The first rule that
// matches wins, not the longest match.
var defaultRules = []Rule{
	NewRule(TokenNumber, `[0-9]+`),
	NewRule(TokenIdentifier, `[A-Za-z_][A-Za-z0-9_]*`),
	NewRule(TokenPlus, `\+`),
	NewRule(TokenMinus, `-`),
	NewRule(TokenTimes, `\*`),
	NewRule(TokenDivide, `/`),
	NewRule(TokenLeftParen, `\(`),
	NewRule(TokenRightParen, `\)`),
	NewRule(TokenWhitespace, `[\t\n\v\f\r ]+`),
	NewRule(TokenEquals, `=`),
}

// DefaultRules returns a copy of the default rule table.
func DefaultRules() []Rule {
	return append([]Rule(nil), defaultRules...)
}
