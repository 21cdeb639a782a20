package lexer

import (
	"regexp"
)

// Literal patterns, anchored at the start of the remaining input.
//
// The float grammar covers three shapes: ".42", "42e42"/"42.42e42" and
// "42."/"42.42". It is tried before the integer grammar so that "42.5"
// is one token, never "42" followed by ".5". Only the integer grammar
// accepts a leading minus.
var (
	floatRegex = regexp.MustCompile(`^(\.[0-9]+([eE][+-]?[0-9]+)?|[0-9]+(\.[0-9]+)?[eE][+-]?[0-9]+|[0-9]+\.[0-9]*)`)
	intRegex   = regexp.MustCompile(`^-?[0-9]+`)
	wordRegex  = regexp.MustCompile(`^[0-9A-Za-z_]+`)
)

type opSpelling struct {
	text string
	typ  TokenType
}

// Operator spellings in match order: every multi-character operator
// comes before any of its single-character prefixes, and "..." before
// "..", so matching the first prefix hit is always the greedy match.
var operators = []opSpelling{
	{"...", DOTS},
	{"..", CONCAT},
	{"<<", SHIFTL},
	{">>", SHIFTR},
	{"//", IDIV},
	{"==", EQUAL},
	{"~=", NOTEQ},
	{"<=", LESEQ},
	{">=", GREEQ},
	{"::", DOUBCOLON},
	{"+", ADD},
	{"-", SUB},
	{"*", MUL},
	{"/", DIV},
	{"%", MOD},
	{"^", POW},
	{"#", LEN},
	{"&", BITAND},
	{"~", BITXOR},
	{"|", BITOR},
	{"<", LESS},
	{">", GREATER},
	{"=", ASSIGN},
	{"(", PARL},
	{")", PARR},
	{"{", CURLYL},
	{"}", CURLYR},
	{"[", SQURL},
	{"]", SQURR},
	{";", SEMICOLON},
	{":", COLON},
	{",", COMMA},
	{".", DOT},
}
