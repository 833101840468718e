package interp

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// ErrorKind classifies evaluation errors so callers and tests can react to
// the category without matching on message text.
type ErrorKind string

const (
	MissingArgument       ErrorKind = "missing argument"
	ExtraneousArgument    ErrorKind = "extraneous argument"
	TypeMismatch          ErrorKind = "type mismatch"
	UndefinedVariable     ErrorKind = "undefined variable"
	Redefinition          ErrorKind = "redefinition"
	UnknownFunction       ErrorKind = "unknown function"
	CannotCloseRootScope  ErrorKind = "cannot close root scope"
	InconsistentEndpoints ErrorKind = "inconsistent endpoints"
	NonPositiveStep       ErrorKind = "non-positive step"
	InvalidRange          ErrorKind = "invalid range"
	InvalidLoop           ErrorKind = "invalid loop"
	InvalidTriangle       ErrorKind = "invalid triangle"
	NumericalFailure      ErrorKind = "numerical failure"
	InvalidResolution     ErrorKind = "invalid resolution"
	SaveFailure           ErrorKind = "save failure"
)

// EvalError is an error raised while evaluating a program. Function names the
// built-in being evaluated when the error occurred, if any.
type EvalError struct {
	Kind     ErrorKind
	Function string
	message  string
}

func (e *EvalError) Error() string {
	return e.message
}

func newEvalError(kind ErrorKind, function, format string, args ...interface{}) *EvalError {
	message := fmt.Sprintf(format, args...)
	if function != "" {
		message = fmt.Sprintf("could not interpret '%s': %s", function, message)
	}
	return &EvalError{Kind: kind, Function: function, message: message}
}

// Diagnostics prints evaluation errors as they are detected. Each error is
// reported exactly once, at the point where it is raised; callers further up
// the stack only propagate.
type Diagnostics struct {
	mu  sync.Mutex
	out io.Writer
	red *color.Color
}

// NewDiagnostics creates a sink writing to out. When colored is true, errors
// are printed in red.
func NewDiagnostics(out io.Writer, colored bool) *Diagnostics {
	red := color.New(color.FgRed)
	if colored {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	return &Diagnostics{out: out, red: red}
}

// Report prints the error to the sink.
func (d *Diagnostics) Report(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.red.Fprintln(d.out, err.Error())
}
