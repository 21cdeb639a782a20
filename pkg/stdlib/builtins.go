package stdlib

import (
	"fmt"

	"rua/pkg/vm"
)

// Install pre-seeds an execution state's global table with the host
// builtins. Every builtin follows the same contract: read arguments
// from the call's argument registers, produce side effects, return an
// integer result code the VM ignores.
func Install(s *vm.ExeState) {
	s.RegisterGlobal("print", vm.Function(Print))
}

// Print renders its single argument and writes it, newline-terminated,
// to the state's output writer.
func Print(s *vm.ExeState) int {
	fmt.Fprintln(s.Output(), s.Arg(0))
	return 0
}
