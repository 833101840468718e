// Package gyre provides an embeddable entry point for evaluating gyre
// scripts: a small language for drawing figures in the hyperbolic plane.
//
// Example usage:
//
//	i, err := gyre.Eval("var p = Pol(r: 1, phi: 0)\nmark(center: p, radius: 0.05)")
//	if err != nil {
//	    // handle the error
//	}
//	svg := i.Canvas().SVGRepresentation()
package gyre

import (
	"github.com/gyre-lang/gyre/interp"
	"github.com/gyre-lang/gyre/parser"
)

// Eval parses and evaluates the given source code with a fresh interpreter.
// The interpreter is returned so the caller can inspect the canvas or keep
// evaluating more code against the same state.
func Eval(source string, opts ...interp.Option) (*interp.Interpreter, error) {
	i := interp.New(opts...)
	return i, EvalWith(i, source)
}

// EvalWith parses and evaluates the given source code on an existing
// interpreter, keeping its variables and canvas content.
func EvalWith(i *interp.Interpreter, source string) error {
	program, err := parser.Parse(source)
	if err != nil {
		return err
	}
	return i.Run(program)
}
