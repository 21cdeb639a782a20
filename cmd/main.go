package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"

	"rua/internal/interp"
	"rua/internal/logger"
	"rua/pkg/color"
)

const (
	historyFile = ".rua_history"
	prompt      = "> "
)

// Main entry point for the rua interpreter.
func main() {
	options := interp.Interp{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.Disassemble, "d", false, "Print constants and bytecode before executing")
	flag.BoolVar(&options.NoColor, "n", false, "No color")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] [file]\n", os.Args[0])
		fmt.Println("With no file, starts an interactive session.")
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		repl(&options)
		return
	}

	options.SourceFile = args[0]

	if err := options.Run(); err != nil {
		log.Fatal("Execution failed", "error", err)
	}
}

// repl reads lines interactively. Each line is compiled and executed
// against a fresh state; chunk state never persists across lines.
func repl(options *interp.Interp) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Println("rua interactive session. Ctrl+D or :quit to exit.")

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			// Ctrl+C or Ctrl+D
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			break
		}

		line.AppendHistory(input)

		if err := interp.Execute(input); err != nil {
			fmt.Println(color.BrightRedText(err.Error()))
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}
