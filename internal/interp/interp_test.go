package interp

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, source string) string {
	t.Helper()

	var buf bytes.Buffer
	if err := execute(source, &buf); err != nil {
		t.Fatalf("execution failed: %v", err)
	}
	return buf.String()
}

func TestPrint(t *testing.T) {
	source := "print(nil)\n" +
		"print(false)\n" +
		"print(123)\n" +
		"print(123456)\n" +
		"print(123456.0)\n"

	expected := "nil\nfalse\n123\n123456\n123456.0\n"
	if got := run(t, source); got != expected {
		t.Errorf("output = %q, want %q", got, expected)
	}
}

func TestLocalVariables(t *testing.T) {
	source := "local a = \"hello, local!\"\n" +
		"local b = a\n" +
		"print(b)\n" +
		"local print = print\n" +
		"print \"I'm local-print!\"\n"

	expected := "hello, local!\nI'm local-print!\n"
	if got := run(t, source); got != expected {
		t.Errorf("output = %q, want %q", got, expected)
	}
}

func TestPrintIsCallable(t *testing.T) {
	got := run(t, "print(print)\n")
	if !strings.HasPrefix(got, "function: 0x") {
		t.Errorf("output = %q, want a function token", got)
	}
}

func TestAssignment(t *testing.T) {
	source := "local a = 456\n" +
		"a = 123\n" +
		"print(a)\n" +
		"a = a\n" +
		"print(a)\n" +
		"a = g\n" +
		"print(a)\n" +
		"g = 123\n" +
		"print(g)\n" +
		"g = a\n" +
		"print(g)\n" +
		"g = g2\n" +
		"print(g)\n"

	expected := "123\n123\nnil\n123\nnil\nnil\n"
	if got := run(t, source); got != expected {
		t.Errorf("output = %q, want %q", got, expected)
	}
}

// Reading a global that was never assigned prints nil; it is not an
// error.
func TestUndefinedGlobalReadsNil(t *testing.T) {
	if got := run(t, "print(undefined_name)\n"); got != "nil\n" {
		t.Errorf("output = %q, want %q", got, "nil\n")
	}
}

func TestShadowedLocalResolvesToNewest(t *testing.T) {
	source := "local a = 1\nlocal a = 2\nprint(a)\n"
	if got := run(t, source); got != "2\n" {
		t.Errorf("output = %q, want %q", got, "2\n")
	}
}

func TestStringEscapes(t *testing.T) {
	source := "print(\"a\\x41\\66\\n\")\n"
	if got := run(t, source); got != "aAB\n\n" {
		t.Errorf("output = %q, want %q", got, "aAB\n\n")
	}
}

// Calling a non-function aborts execution; output printed before the
// failure stays, nothing is printed by the failing call.
func TestCallNonFunction(t *testing.T) {
	source := "print(1)\n" +
		"g = 10\n" +
		"g(2)\n" +
		"print(3)\n"

	var buf bytes.Buffer
	err := execute(source, &buf)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "10 is not a function") {
		t.Errorf("error = %q, want it to name the offending value", err)
	}
	if buf.String() != "1\n" {
		t.Errorf("output = %q, want only the pre-failure print", buf.String())
	}
}

func TestCompilationErrorProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	err := execute("print(1)\nlocal = 2\n", &buf)
	if err == nil {
		t.Fatal("expected a compilation error")
	}
	if buf.String() != "" {
		t.Errorf("output = %q, want none before a failed compilation", buf.String())
	}
}
