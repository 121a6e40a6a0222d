package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrEmptyMatch       = errors.New("rule matched empty text")
)

// InvalidCharacterError is returned when no rule matches at Position. Line
// and Column are 1-based.
type InvalidCharacterError struct {
	Position  int
	Line      int
	Column    int
	Character rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%v at position %d: %q", ErrInvalidCharacter, e.Position, e.Character)
}

// Pos returns the line and column of the offending character
func (e *InvalidCharacterError) Pos() (int, int) {
	return e.Line, e.Column
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
