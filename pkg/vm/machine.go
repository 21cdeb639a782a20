package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// ExeState is the execution state for one chunk: a register stack, the
// global table and the base register of the call being dispatched. It
// is single-threaded and lives for exactly one Execute call; nothing
// persists across runs.
type ExeState struct {
	globals map[string]Value
	stack   []Value
	base    int // register of the callee while a host call is dispatched
	out     io.Writer
}

type Option func(*ExeState)

// WithWriter sets the output writer host callables print to.
func WithWriter(w io.Writer) Option {
	return func(s *ExeState) { s.out = w }
}

// New creates an execution state. The host is expected to register its
// builtins before Execute.
func New(opts ...Option) *ExeState {
	s := &ExeState{
		globals: make(map[string]Value),
		out:     os.Stdout,
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// RegisterGlobal pre-seeds a global before execution. Host callables
// are installed this way.
func (s *ExeState) RegisterGlobal(name string, v Value) {
	s.globals[name] = v
}

// Global reads a global. Missing names read as Nil, never an error.
func (s *ExeState) Global(name string) Value {
	return s.globals[name]
}

// Arg returns a host call's i-th argument, counted from the register
// after the callee.
func (s *ExeState) Arg(i int) Value {
	return s.stack[s.base+1+i]
}

// Output returns the writer host callables print to.
func (s *ExeState) Output() io.Writer {
	return s.out
}

// Execute interprets the program strictly in order; the instruction
// set has no jumps. The first runtime error aborts execution with no
// rollback of globals or already-performed side effects.
func (s *ExeState) Execute(prog *Program) error {
	for _, code := range prog.Codes {
		log.Debug("executing", "code", code)

		switch code.Op {
		case OpGetGlobal:
			key := s.globalKey(prog, int(code.B))
			s.setStack(code.A, s.globals[key])

		case OpMove:
			s.setStack(code.A, s.stack[code.B])

		case OpLoadNil:
			s.setStack(code.A, Nil())

		case OpLoadBool:
			s.setStack(code.A, Boolean(code.B != 0))

		case OpLoadInt:
			s.setStack(code.A, Integer(int64(code.B)))

		case OpLoadConst:
			s.setStack(code.A, prog.Constants[code.B])

		case OpCall:
			s.base = int(code.A)
			callee := s.stack[s.base]
			if callee.Kind != KindFunction {
				return fmt.Errorf("%s is not a function", callee)
			}
			callee.Fn(s)

		case OpSetGlobalConst:
			s.globals[s.globalKey(prog, int(code.A))] = prog.Constants[code.B]

		case OpSetGlobalLocal:
			s.globals[s.globalKey(prog, int(code.A))] = s.stack[code.B]

		case OpSetGlobalGlobal:
			rhs := s.globals[s.globalKey(prog, int(code.B))]
			s.globals[s.globalKey(prog, int(code.A))] = rhs
		}
	}

	return nil
}

// globalKey resolves a constant-pool index to a global name. The
// compiler only emits name indices pointing at Identifier constants,
// so a mismatch is a compiler bug.
func (s *ExeState) globalKey(prog *Program, idx int) string {
	key, ok := prog.Constants[idx].GlobalKey()
	if !ok {
		panic(fmt.Sprintf("constant %d is not a global name", idx))
	}
	return key
}

// setStack writes a register, growing the stack by exactly one slot
// when dst is the next unused one. Destinations must be contiguous
// from the stack top; a gapped write is a compiler bug, not a
// user-facing error.
func (s *ExeState) setStack(dst uint8, v Value) {
	switch {
	case int(dst) < len(s.stack):
		s.stack[dst] = v
	case int(dst) == len(s.stack):
		s.stack = append(s.stack, v)
	default:
		panic(fmt.Sprintf("non-contiguous stack write: register %d, top %d", dst, len(s.stack)))
	}
}
