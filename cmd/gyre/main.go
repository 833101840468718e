package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/gyre-lang/gyre"
	"github.com/gyre-lang/gyre/interp"
)

func main() {
	var code string
	var debug bool
	flag.StringVar(&code, "c", "", "evaluate the given code and exit")
	flag.BoolVar(&debug, "debug", false, "log debug traces to stderr")
	flag.Parse()

	colored := isatty.IsTerminal(os.Stderr.Fd())

	logger := zerolog.Nop()
	if debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	}

	diag := interp.NewDiagnostics(os.Stderr, colored)
	opts := []interp.Option{
		interp.WithLogger(logger),
		interp.WithDiagnostics(diag),
	}

	if code != "" {
		_, err := gyre.Eval(code, opts...)
		exitOnError(err, colored)
		return
	}

	if flag.NArg() == 0 {
		if err := runREPL(opts); err != nil {
			fatal(colored, "error: %v", err)
		}
		return
	}

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatal(colored, "error: %v", err)
	}
	_, err = gyre.Eval(string(source), opts...)
	exitOnError(err, colored)
}

// exitOnError terminates with a nonzero status on error. Evaluation errors
// were already reported by the diagnostics sink; anything else still needs
// printing.
func exitOnError(err error, colored bool) {
	if err == nil {
		return
	}
	var evalErr *interp.EvalError
	if !errors.As(err, &evalErr) {
		printError(colored, err)
	}
	os.Exit(1)
}

func printError(colored bool, err error) {
	red := color.New(color.FgRed)
	if colored {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	red.Fprintln(os.Stderr, err.Error())
}

func fatal(colored bool, format string, args ...interface{}) {
	printError(colored, fmt.Errorf(format, args...))
	os.Exit(1)
}
