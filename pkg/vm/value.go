package vm

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type Kind int

const (
	KindNil Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindIdentifier
	KindFunction
)

// GoFunc is a host-provided callable. It reads its argument from the
// call's argument register via Arg and returns an integer result code,
// which the VM currently ignores.
type GoFunc func(*ExeState) int

// Value is the tagged union of runtime values. The zero Value is Nil,
// so a freshly grown stack slot or a missing global reads as nil.
//
// KindIdentifier carries a global variable's name inside the constant
// pool; it never appears on the execution stack.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   LossyStr
	Name  string
	Fn    GoFunc
}

func Nil() Value { return Value{} }

func Boolean(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

func Integer(i int64) Value { return Value{Kind: KindInteger, Int: i} }

func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

func String(b []byte) Value { return Value{Kind: KindString, Str: NewLossyStr(b)} }

func Identifier(name string) Value { return Value{Kind: KindIdentifier, Name: name} }

func Function(fn GoFunc) Value { return Value{Kind: KindFunction, Fn: fn} }

// Equal reports structural equality. The variant tag must match:
// Identifier("x") and String("x") are not equal. Functions compare by
// identity.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case KindNil:
		return true
	case KindBoolean:
		return v.Bool == other.Bool
	case KindInteger:
		return v.Int == other.Int
	case KindFloat:
		return v.Float == other.Float
	case KindString:
		return bytes.Equal(v.Str.Bytes(), other.Str.Bytes())
	case KindIdentifier:
		return v.Name == other.Name
	case KindFunction:
		return reflect.ValueOf(v.Fn).Pointer() == reflect.ValueOf(other.Fn).Pointer()
	}

	return false
}

// GlobalKey returns the global-table key a constant-pool entry names.
func (v Value) GlobalKey() (string, bool) {
	switch v.Kind {
	case KindIdentifier:
		return v.Name, true
	case KindString:
		return v.Str.String(), true
	}
	return "", false
}

// String renders the value in its observable textual form: this is
// what print produces and what runtime errors embed.
func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return formatFloat(v.Float)
	case KindString:
		return v.Str.String()
	case KindIdentifier:
		return v.Name
	case KindFunction:
		return fmt.Sprintf("function: 0x%x", reflect.ValueOf(v.Fn).Pointer())
	}

	return "<invalid>"
}

// formatFloat renders the shortest round-trip form, keeping a ".0"
// suffix on integral values so floats stay distinguishable from
// integers in output.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}
