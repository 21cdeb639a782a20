package lexer

import "fmt"

// lexString decodes a double-quoted string literal starting at the
// current cursor. The result is a raw byte sequence, not necessarily
// valid text: escapes can produce arbitrary bytes and callers render
// the bytes lossily for display.
//
// The literal is consumed as a sequence of fragments:
//   - a maximal run containing neither '\' nor '"', copied verbatim
//   - a backslash escape producing exactly one byte
//   - a backslash followed by whitespace, discarded entirely
//
// Recognized escapes:
//
//	\a  bell            \b  back space
//	\f  form feed       \n  newline
//	\r  carriage return  \t  horizontal tab
//	\v  vertical tab    \\  backslash
//	\'  single quote    \"  double quote
//	\nnn  decimal byte (1-3 digits, 0-255)
//	\xhh  hex byte (1-2 digits)
func (l *Lexer) lexString(pos Position) (Token, error) {
	l.advance(1) // opening quote

	var buf []byte
	for {
		if l.position >= l.length {
			return Token{}, &SyntaxError{Msg: "unterminated string literal", Pos: pos}
		}

		switch l.input[l.position] {
		case '"':
			l.advance(1)
			return Token{Type: STRING, Str: buf, Pos: pos}, nil

		case '\\':
			l.advance(1)
			b, skip, err := l.decodeEscape(pos)
			if err != nil {
				return Token{}, err
			}
			if !skip {
				buf = append(buf, b)
			}

		default:
			start := l.position
			for l.position < l.length {
				ch := l.input[l.position]
				if ch == '"' || ch == '\\' {
					break
				}
				l.advance(1)
			}
			buf = append(buf, l.input[start:l.position]...)
		}
	}
}

// decodeEscape consumes one escape body (the backslash is already
// consumed) and returns the decoded byte, or skip=true for escaped
// whitespace which contributes no bytes.
func (l *Lexer) decodeEscape(pos Position) (b byte, skip bool, err error) {
	if l.position >= l.length {
		return 0, false, &SyntaxError{Msg: "unterminated string literal", Pos: pos}
	}

	ch := l.input[l.position]
	switch ch {
	case 'n':
		l.advance(1)
		return '\n', false, nil
	case 'r':
		l.advance(1)
		return '\r', false, nil
	case 't':
		l.advance(1)
		return '\t', false, nil
	case 'a':
		l.advance(1)
		return '\a', false, nil
	case 'b':
		l.advance(1)
		return '\b', false, nil
	case 'v':
		l.advance(1)
		return '\v', false, nil
	case 'f':
		l.advance(1)
		return '\f', false, nil
	case '\\', '\'', '"':
		l.advance(1)
		return ch, false, nil
	case 'x':
		l.advance(1)
		return l.decodeHexByte(pos)
	case ' ', '\t', '\n', '\r':
		for l.position < l.length && isWhitespace(l.input[l.position]) {
			l.advance(1)
		}
		return 0, true, nil
	}

	if isDigit(ch) {
		return l.decodeDecByte(pos)
	}

	return 0, false, &SyntaxError{Msg: fmt.Sprintf("invalid escape sequence \\%c", ch), Pos: pos}
}

// decodeDecByte consumes 1-3 decimal digits as a single byte.
func (l *Lexer) decodeDecByte(pos Position) (byte, bool, error) {
	n := 0
	digits := 0
	for digits < 3 && l.position < l.length && isDigit(l.input[l.position]) {
		n = n*10 + int(l.input[l.position]-'0')
		l.advance(1)
		digits++
	}

	if n > 255 {
		return 0, false, &SyntaxError{Msg: fmt.Sprintf("decimal escape \\%d out of range", n), Pos: pos}
	}

	return byte(n), false, nil
}

// decodeHexByte consumes 1-2 hex digits as a single byte.
func (l *Lexer) decodeHexByte(pos Position) (byte, bool, error) {
	n := 0
	digits := 0
	for digits < 2 && l.position < l.length {
		d, ok := hexDigit(l.input[l.position])
		if !ok {
			break
		}
		n = n*16 + d
		l.advance(1)
		digits++
	}

	if digits == 0 {
		return 0, false, &SyntaxError{Msg: "hexadecimal escape with no digits", Pos: pos}
	}

	return byte(n), false, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}
