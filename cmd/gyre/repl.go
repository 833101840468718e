package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/gyre-lang/gyre"
	"github.com/gyre-lang/gyre/interp"
)

// runREPL reads lines from the terminal and evaluates them against a single
// interpreter, so variables and canvas content persist between inputs.
func runREPL(opts []interp.Option) error {
	rl, err := readline.New("gyre> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("gyre - figures in the hyperbolic plane")
	fmt.Println(`type "exit" or press ctrl-d to leave`)

	i := interp.New(opts...)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		// Evaluation errors are reported by the diagnostics sink; syntax
		// errors surface here.
		if err := gyre.EvalWith(i, line); err != nil {
			var evalErr *interp.EvalError
			if !errors.As(err, &evalErr) {
				fmt.Println(err.Error())
			}
		}
	}
}
