package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/Weno-AceUI/Lambda/ace"
	"github.com/Weno-AceUI/Lambda/lambda"
)

// Exit codes follow sysexits where one applies: 64 usage, 65 bad input,
// 70 runtime failure. Plain I/O failures exit 1.
const (
	exitOK      = 0
	exitIO      = 1
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
)

//go:embed default.lam
var defaultScript string

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 1 {
		printUsage(stderr)
		return exitUsage
	}

	source := defaultScript
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf("lambda: %v", err)))
			return exitIO
		}
		source = string(data)
	}

	engine := lambda.NewEngine(lambda.Config{Output: stdout})

	script, err := engine.Compile(source)
	if err != nil {
		var compileErr *lambda.CompileError
		if errors.As(err, &compileErr) {
			for _, diag := range compileErr.Diagnostics {
				fmt.Fprintln(stderr, errorStyle.Render(diag.String()))
			}
		} else {
			fmt.Fprintln(stderr, errorStyle.Render(err.Error()))
		}
		return exitCompile
	}

	uiCap := ace.NewUICapability()
	opts := lambda.RunOptions{Capabilities: []lambda.CapabilityAdapter{uiCap}}
	if err := script.Run(context.Background(), opts); err != nil {
		fmt.Fprintln(stderr, errorStyle.Render(err.Error()))
		return exitRuntime
	}

	// The render step: any widgets the script created serialize to AceML
	// after the script's own output.
	if roots := uiCap.Roots(); len(roots) > 0 {
		io.WriteString(stdout, ace.RenderMarkup(roots))
	}
	return exitOK
}

func printUsage(w io.Writer) {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "Usage: %s [script]\n", prog)
	fmt.Fprintln(w, "Runs the given Lambda script, or the built-in desktop scene with no arguments.")
}
