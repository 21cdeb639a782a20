package lexer_test

import (
	"testing"

	"rua/pkg/lexer"
)

// Comments are tokens: the lexer reports them and the compiler decides
// to skip them.
func TestComments(t *testing.T) {
	input := `-- leading comment
local a = 1 -- trailing comment
-- final comment without newline`

	expected := []lexer.TokenType{
		lexer.COMMENT,
		lexer.LOCAL, lexer.NAME, lexer.ASSIGN, lexer.INTEGER,
		lexer.COMMENT,
		lexer.COMMENT,
		lexer.EOF,
	}

	tokens := collect(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Errorf("Token %d: expected %s, got %s", i, typ, tokens[i])
		}
	}
}

// "--5" is a comment, not two subtraction tokens: comments are tried
// before numeric literals.
func TestCommentBeforeOperators(t *testing.T) {
	tokens := collect(t, "--5\nx")

	expected := []lexer.TokenType{lexer.COMMENT, lexer.NAME, lexer.EOF}
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Errorf("Token %d: expected %s, got %s", i, typ, tokens[i])
		}
	}
}
