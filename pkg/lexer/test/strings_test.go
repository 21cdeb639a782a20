package lexer_test

import (
	"bytes"
	"testing"

	"rua/pkg/lexer"
)

func TestStringDecoding(t *testing.T) {
	tests := []struct {
		input       string
		expected    []byte
		description string
	}{
		{`"hello"`, []byte("hello"), "verbatim"},
		{`""`, nil, "empty string"},
		{`"\n"`, []byte{'\n'}, "newline escape"},
		{`"\r\t"`, []byte{'\r', '\t'}, "cr and tab"},
		{`"\a\b\v\f"`, []byte{0x07, 0x08, 0x0B, 0x0C}, "control escapes"},
		{`"\\"`, []byte{'\\'}, "backslash escape"},
		{`"\'"`, []byte{'\''}, "single quote escape"},
		{`"\""`, []byte{'"'}, "double quote escape"},
		{`"\x41"`, []byte{0x41}, "hex escape"},
		{`"\xff"`, []byte{0xFF}, "hex escape high byte"},
		{`"\x4"`, []byte{0x04}, "one-digit hex escape"},
		{`"\65"`, []byte{65}, "decimal escape"},
		{`"\0"`, []byte{0}, "single-digit decimal escape"},
		{`"\255"`, []byte{255}, "max decimal escape"},
		{`"\0659"`, []byte{65, '9'}, "decimal escape stops at three digits"},
		{"\"a\\ \n \tb\"", []byte("ab"), "escaped whitespace is discarded"},
		{`"mix\x41\66c"`, []byte("mixABc"), "mixed escapes"},
		{`"this literal is longer than twenty-three bytes"`,
			[]byte("this literal is longer than twenty-three bytes"), "long literal"},
	}

	for _, test := range tests {
		l := lexer.New(test.input)
		tok, err := l.NextToken()
		if err != nil {
			t.Errorf("Input %s (%s): unexpected error %v", test.input, test.description, err)
			continue
		}
		if tok.Type != lexer.STRING {
			t.Errorf("Input %s (%s): expected string, got %s", test.input, test.description, tok)
			continue
		}
		if !bytes.Equal(tok.Str, test.expected) {
			t.Errorf("Input %s (%s): expected %q, got %q", test.input, test.description, test.expected, tok.Str)
		}
	}
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		input       string
		description string
	}{
		{`"no closing quote`, "unterminated literal"},
		{`"dangling \`, "unterminated escape"},
		{`"\q"`, "unknown escape"},
		{`"\256"`, "decimal escape out of range"},
		{`"\xg"`, "hex escape with no digits"},
	}

	for _, test := range tests {
		l := lexer.New(test.input)
		if _, err := l.NextToken(); err == nil {
			t.Errorf("Input %s (%s): expected error, got none", test.input, test.description)
		}
	}
}
