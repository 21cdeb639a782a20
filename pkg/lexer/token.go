package lexer

import (
	"fmt"
	"strconv"
)

type TokenType int

// Token is one lexical unit. Literal payloads live in dedicated fields;
// fixed keywords and operators carry no payload.
type Token struct {
	Type  TokenType
	Int   int64    // INTEGER payload
	Float float64  // FLOAT payload
	Str   []byte   // STRING payload, already escape-decoded
	Name  string   // NAME payload
	Pos   Position // position of the token's first character
}

const (
	EOF TokenType = iota

	// keywords
	AND
	BREAK
	DO
	ELSE
	ELSEIF
	END
	FALSE
	FOR
	FUNCTION
	GOTO
	IF
	IN
	LOCAL
	NIL
	NOT
	OR
	REPEAT
	RETURN
	THEN
	TRUE
	UNTIL
	WHILE

	// operators and punctuation
	ADD       // +
	SUB       // -
	MUL       // *
	DIV       // /
	MOD       // %
	POW       // ^
	LEN       // #
	BITAND    // &
	BITXOR    // ~
	BITOR     // |
	SHIFTL    // <<
	SHIFTR    // >>
	IDIV      // //
	EQUAL     // ==
	NOTEQ     // ~=
	LESEQ     // <=
	GREEQ     // >=
	LESS      // <
	GREATER   // >
	ASSIGN    // =
	PARL      // (
	PARR      // )
	CURLYL    // {
	CURLYR    // }
	SQURL     // [
	SQURR     // ]
	DOUBCOLON // ::
	SEMICOLON // ;
	COLON     // :
	COMMA     // ,
	DOT       // .
	CONCAT    // ..
	DOTS      // ...

	// literals and names
	INTEGER
	FLOAT
	STRING
	NAME

	// comments are tokens; the compiler decides to skip them
	COMMENT
)

var Keywords = map[string]TokenType{
	"and":      AND,
	"break":    BREAK,
	"do":       DO,
	"else":     ELSE,
	"elseif":   ELSEIF,
	"end":      END,
	"false":    FALSE,
	"for":      FOR,
	"function": FUNCTION,
	"goto":     GOTO,
	"if":       IF,
	"in":       IN,
	"local":    LOCAL,
	"nil":      NIL,
	"not":      NOT,
	"or":       OR,
	"repeat":   REPEAT,
	"return":   RETURN,
	"then":     THEN,
	"true":     TRUE,
	"until":    UNTIL,
	"while":    WHILE,
}

var spellings = map[TokenType]string{
	AND: "and", BREAK: "break", DO: "do", ELSE: "else", ELSEIF: "elseif",
	END: "end", FALSE: "false", FOR: "for", FUNCTION: "function",
	GOTO: "goto", IF: "if", IN: "in", LOCAL: "local", NIL: "nil",
	NOT: "not", OR: "or", REPEAT: "repeat", RETURN: "return",
	THEN: "then", TRUE: "true", UNTIL: "until", WHILE: "while",

	ADD: "+", SUB: "-", MUL: "*", DIV: "/", MOD: "%", POW: "^", LEN: "#",
	BITAND: "&", BITXOR: "~", BITOR: "|", SHIFTL: "<<", SHIFTR: ">>",
	IDIV: "//", EQUAL: "==", NOTEQ: "~=", LESEQ: "<=", GREEQ: ">=",
	LESS: "<", GREATER: ">", ASSIGN: "=", PARL: "(", PARR: ")",
	CURLYL: "{", CURLYR: "}", SQURL: "[", SQURR: "]", DOUBCOLON: "::",
	SEMICOLON: ";", COLON: ":", COMMA: ",", DOT: ".", CONCAT: "..",
	DOTS: "...",

	EOF: "<eof>", COMMENT: "<comment>",
}

// IsKeyword checks whether a word is a reserved keyword and returns its type.
func IsKeyword(word string) (TokenType, bool) {
	t, ok := Keywords[word]
	return t, ok
}

// String returns a readable rendering of the token, payload included.
func (t Token) String() string {
	switch t.Type {
	case INTEGER:
		return fmt.Sprintf("Integer(%d)", t.Int)
	case FLOAT:
		return fmt.Sprintf("Float(%s)", strconv.FormatFloat(t.Float, 'g', -1, 64))
	case STRING:
		return fmt.Sprintf("String(%q)", t.Str)
	case NAME:
		return fmt.Sprintf("Name(%s)", t.Name)
	default:
		return "`" + t.Type.String() + "`"
	}
}

// String returns the fixed spelling of the token type.
func (t TokenType) String() string {
	if s, ok := spellings[t]; ok {
		return s
	}

	switch t {
	case INTEGER:
		return "integer"
	case FLOAT:
		return "float"
	case STRING:
		return "string"
	case NAME:
		return "name"
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}
