package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenNumber               // Decimal digits: "0"-"9"
	TokenIdentifier           // Letter or underscore followed by letters, digits or underscores
	TokenPlus                 // Plus sign: "+"
	TokenMinus                // Minus sign: "-"
	TokenTimes                // Asterisk: "*"
	TokenDivide               // Slash: "/"
	TokenLeftParen            // Open parenthesis: "("
	TokenRightParen           // Close parenthesis: ")"
	TokenWhitespace           // Space, tab, newline, vertical tab, form feed or carriage return
	TokenEquals               // Equals sign: "="
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "INVALID",
	TokenNumber:     "NUMBER",
	TokenIdentifier: "IDENTIFIER",
	TokenPlus:       "PLUS",
	TokenMinus:      "MINUS",
	TokenTimes:      "TIMES",
	TokenDivide:     "DIVIDE",
	TokenLeftParen:  "LPAREN",
	TokenRightParen: "RPAREN",
	TokenWhitespace: "WHITESPACE",
	TokenEquals:     "EQUALS",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}
