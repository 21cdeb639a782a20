package lexer_test

import (
	"testing"

	"rua/pkg/lexer"
)

func TestIntegers(t *testing.T) {
	tests := []struct {
		input       string
		expected    int64
		description string
	}{
		{"42", 42, "integer"},
		{"0", 0, "zero"},
		{"-7", -7, "negative integer"},
		{"1000000", 1000000, "large integer"},
		{"9223372036854775807", 9223372036854775807, "max int64"},
	}

	for _, test := range tests {
		l := lexer.New(test.input)
		tok, err := l.NextToken()
		if err != nil {
			t.Errorf("Input %s (%s): unexpected error %v", test.input, test.description, err)
			continue
		}
		if tok.Type != lexer.INTEGER {
			t.Errorf("Input %s (%s): expected integer, got %s", test.input, test.description, tok)
			continue
		}
		if tok.Int != test.expected {
			t.Errorf("Input %s (%s): expected %d, got %d", test.input, test.description, test.expected, tok.Int)
		}
	}
}

func TestFloats(t *testing.T) {
	tests := []struct {
		input       string
		expected    float64
		description string
	}{
		{"3.14", 3.14, "simple float"},
		{"0.5", 0.5, "float starting with zero"},
		{".5", 0.5, "float starting with dot"},
		{"42.", 42.0, "float ending with dot"},
		{"123.456", 123.456, "multi-digit float"},
		{"1e5", 1e5, "scientific notation"},
		{"1e+5", 1e5, "scientific notation with plus"},
		{"1e-5", 1e-5, "scientific notation with minus"},
		{"2.5e10", 2.5e10, "float with exponent"},
		{"3.14E-2", 3.14e-2, "uppercase exponent"},
		{".5e2", 50.0, "dot float with exponent"},
	}

	for _, test := range tests {
		l := lexer.New(test.input)
		tok, err := l.NextToken()
		if err != nil {
			t.Errorf("Input %s (%s): unexpected error %v", test.input, test.description, err)
			continue
		}
		if tok.Type != lexer.FLOAT {
			t.Errorf("Input %s (%s): expected float, got %s", test.input, test.description, tok)
			continue
		}
		if tok.Float != test.expected {
			t.Errorf("Input %s (%s): expected %g, got %g", test.input, test.description, test.expected, tok.Float)
		}
	}
}

// A decimal point must keep the whole literal together: "42.5" is one
// float token, never "42" followed by ".5".
func TestFloatTakesPrecedence(t *testing.T) {
	l := lexer.New("42.5 ")

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != lexer.FLOAT || tok.Float != 42.5 {
		t.Fatalf("expected Float(42.5), got %s", tok)
	}

	tok, err = l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != lexer.EOF {
		t.Fatalf("expected <eof>, got %s", tok)
	}
}
