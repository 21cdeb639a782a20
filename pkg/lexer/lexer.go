package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Lexer produces tokens on demand. There is no token buffer; the only
// state is the cursor into the remaining input.
type Lexer struct {
	input    string
	length   int
	position int
	line     int // current line number for error reporting
	column   int // current column number for error reporting
}

// SyntaxError is a non-recoverable lexing failure: the whole
// compilation aborts on the first one.
type SyntaxError struct {
	Msg string
	Pos Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos)
}

// New creates a lexer over the given source text.
func New(s string) *Lexer {
	return &Lexer{
		input:  s,
		length: len(s),
		line:   1,
		column: 1,
	}
}

// NextToken consumes leading whitespace and returns the next token.
// Alternatives are tried in priority order: string literal, comment,
// float, integer, word, operator, end of input. An unrecognized
// character is a SyntaxError.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	pos := l.currentPosition()

	if l.position >= l.length {
		return Token{Type: EOF, Pos: pos}, nil
	}

	remaining := l.input[l.position:]

	if remaining[0] == '"' {
		return l.lexString(pos)
	}

	if strings.HasPrefix(remaining, "--") {
		return l.lexComment(pos), nil
	}

	if match := floatRegex.FindString(remaining); match != "" {
		f, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return Token{}, &SyntaxError{Msg: fmt.Sprintf("malformed float literal %q", match), Pos: pos}
		}
		l.advance(len(match))
		return Token{Type: FLOAT, Float: f, Pos: pos}, nil
	}

	if match := intRegex.FindString(remaining); match != "" {
		i, err := strconv.ParseInt(match, 10, 64)
		if err != nil {
			return Token{}, &SyntaxError{Msg: fmt.Sprintf("malformed integer literal %q", match), Pos: pos}
		}
		l.advance(len(match))
		return Token{Type: INTEGER, Int: i, Pos: pos}, nil
	}

	if match := wordRegex.FindString(remaining); match != "" {
		l.advance(len(match))
		if keyword, ok := IsKeyword(match); ok {
			return Token{Type: keyword, Pos: pos}, nil
		}
		return Token{Type: NAME, Name: match, Pos: pos}, nil
	}

	for _, op := range operators {
		if strings.HasPrefix(remaining, op.text) {
			l.advance(len(op.text))
			return Token{Type: op.typ, Pos: pos}, nil
		}
	}

	return Token{}, &SyntaxError{Msg: fmt.Sprintf("unrecognized character %q", remaining[0]), Pos: pos}
}

// lexComment consumes a "--" comment through the next newline, or to
// the end of input when the final line has no newline.
func (l *Lexer) lexComment(pos Position) Token {
	for l.position < l.length {
		ch := l.input[l.position]
		l.advance(1)
		if ch == '\n' {
			break
		}
	}

	return Token{Type: COMMENT, Pos: pos}
}

// Skip whitespace between tokens, tracking line and column
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		switch l.input[l.position] {
		case ' ', '\t', '\n', '\r':
			l.advance(1)
		default:
			return
		}
	}
}

// Advance the cursor by n bytes
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position++
	}
}

func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}
