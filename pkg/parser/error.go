package parser

import (
	"fmt"

	"rua/pkg/lexer"
)

// UnexpectedTokenError reports the actual token and, when a specific
// alternative was anticipated, a description of what was expected.
type UnexpectedTokenError struct {
	Actual   lexer.Token
	Expected string
}

func (e *UnexpectedTokenError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("unexpected token %s", e.Actual)
	}
	return fmt.Sprintf("expected token %s but got %s", e.Expected, e.Actual)
}

func unexpected(actual lexer.Token, expected string) error {
	return &UnexpectedTokenError{Actual: actual, Expected: expected}
}
