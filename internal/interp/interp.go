package interp

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"rua/pkg/color"
	"rua/pkg/parser"
	"rua/pkg/stdlib"
	"rua/pkg/vm"
)

// Interp drives one compile-then-execute run of a source file.
type Interp struct {
	Help        bool   // Show help message
	Verbose     bool   // Enable verbose output
	Disassemble bool   // Print constants and bytecode before executing
	NoColor     bool   // Disable colored output
	SourceFile  string // Path to the source file
}

// Run processes the source file: compile, optionally disassemble, then
// execute against a fresh state seeded with the host builtins.
func (opts *Interp) Run() error {
	log.Info("Processing file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		log.Fatal("Failed to read file", "file", opts.SourceFile, "error", err)
	}

	prog, err := parser.New(string(input)).Parse()
	if err != nil {
		fmt.Println(color.BrightRedText("=== Compilation Error ==="))
		fmt.Println(err)
		return err
	}

	if opts.Disassemble || opts.Verbose {
		dump(prog)
	}

	state := vm.New()
	stdlib.Install(state)

	if err := state.Execute(prog); err != nil {
		fmt.Println(color.BrightRedText("=== Runtime Error ==="))
		fmt.Println(err)
		return err
	}

	return nil
}

// dump prints the constant pool and a numbered instruction listing.
func dump(prog *vm.Program) {
	fmt.Println(color.GreenText("=== Constants ==="))
	if len(prog.Constants) == 0 {
		fmt.Println(color.GrayText("No constants."))
	}
	for i, c := range prog.Constants {
		fmt.Printf("%s: %s\n", color.CyanText(strconv.Itoa(i)), color.YellowText(c.String()))
	}

	fmt.Println(color.GreenText("=== Bytecode ==="))
	if len(prog.Codes) == 0 {
		fmt.Println(color.GrayText("No code generated."))
	}
	for i, code := range prog.Codes {
		fmt.Printf("%s: %s\n", color.CyanText(strconv.Itoa(i)), color.YellowText(code.String()))
	}
}

// Execute compiles and runs a chunk of source text. Compiled state is
// ephemeral; nothing survives the call.
func Execute(source string) error {
	return execute(source, nil)
}

func execute(source string, w io.Writer) error {
	prog, err := parser.New(source).Parse()
	if err != nil {
		return err
	}

	var state *vm.ExeState
	if w != nil {
		state = vm.New(vm.WithWriter(w))
	} else {
		state = vm.New()
	}
	stdlib.Install(state)

	return state.Execute(prog)
}
