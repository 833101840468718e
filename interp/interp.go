// Package interp evaluates gyre programs. The interpreter walks the AST,
// maintains a stack of variable scopes, dispatches function calls to
// built-ins, and accumulates drawable geometry on a canvas.
package interp

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gyre-lang/gyre/ast"
	"github.com/gyre-lang/gyre/canvas"
	"github.com/gyre-lang/gyre/object"
)

// Option configures an Interpreter created by New.
type Option func(*Interpreter)

// WithOutput sets the writer that print sends its messages to. The default
// is standard output.
func WithOutput(out io.Writer) Option {
	return func(i *Interpreter) {
		i.out = out
	}
}

// WithDiagnostics sets the sink that evaluation errors are reported to. The
// default sink writes to standard error without color.
func WithDiagnostics(diag *Diagnostics) Option {
	return func(i *Interpreter) {
		i.diag = diag
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger zerolog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// Interpreter evaluates programs against a scope stack and a canvas. A
// single interpreter can evaluate multiple programs in sequence, which is
// how the REPL keeps variables and canvas content across inputs.
type Interpreter struct {
	scopes   *ScopeStack
	canvas   *canvas.Canvas
	builtins map[string]builtinFunc
	out      io.Writer
	diag     *Diagnostics
	logger   zerolog.Logger
}

// New creates an interpreter with an empty canvas and a root scope that
// predefines M_PI.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		scopes: NewScopeStack(),
		canvas: canvas.New(),
		out:    os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.diag == nil {
		i.diag = NewDiagnostics(os.Stderr, false)
	}
	i.canvas.SetLogger(i.logger)
	i.scopes.DefineVariableWithValue("M_PI", object.NewFloat(math.Pi))
	i.registerBuiltins()
	return i
}

// Canvas returns the canvas the interpreter draws on.
func (i *Interpreter) Canvas() *canvas.Canvas {
	return i.canvas
}

// Run evaluates every statement of the program in order, stopping at the
// first error.
func (i *Interpreter) Run(program *ast.Program) error {
	for _, stmt := range program.Stmts {
		if err := i.evalStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// failf raises an evaluation error: it is reported to the diagnostics sink
// here, exactly once, and then returned for propagation.
func (i *Interpreter) failf(kind ErrorKind, function, format string, args ...interface{}) error {
	err := newEvalError(kind, function, format, args...)
	i.diag.Report(err)
	return err
}

func (i *Interpreter) evalStmt(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.Var:
		return i.evalVar(stmt)
	case *ast.Assign:
		return i.evalAssign(stmt)
	case *ast.For:
		return i.evalFor(stmt)
	case *ast.ExprStmt:
		_, err := i.evalExpr(stmt.Expr)
		return err
	default:
		return i.failf(TypeMismatch, "", "unexpected statement %q", stmt.String())
	}
}

func (i *Interpreter) evalVar(stmt *ast.Var) error {
	if i.scopes.DefinedInCurrentScope(stmt.Name) {
		return i.failf(Redefinition, "",
			"variable '%s' is already defined in this scope", stmt.Name)
	}
	value, err := i.evalExpr(stmt.Value)
	if err != nil {
		return err
	}
	i.logger.Debug().Str("name", stmt.Name).Str("value", value.Inspect()).Msg("defining variable")
	i.scopes.DefineVariableWithValue(stmt.Name, value)
	return nil
}

func (i *Interpreter) evalAssign(stmt *ast.Assign) error {
	value, err := i.evalExpr(stmt.Value)
	if err != nil {
		return err
	}
	if !i.scopes.Assign(stmt.Name, value) {
		return i.failf(UndefinedVariable, "",
			"cannot assign to undefined variable '%s'", stmt.Name)
	}
	return nil
}

// evalFor runs the loop body once per value of the loop variable, walking
// from the lower bound to the upper bound in steps of the given size. The
// loop variable lives in a scope of its own and the body may reassign it;
// the step is added to whatever value the variable has after the body ran.
func (i *Interpreter) evalFor(stmt *ast.For) error {
	lower, err := i.evalNumber(stmt.Lower)
	if err != nil {
		return err
	}
	step, err := i.evalNumber(stmt.Step)
	if err != nil {
		return err
	}
	upper, err := i.evalNumber(stmt.Upper)
	if err != nil {
		return err
	}
	if step <= 0.0 {
		return i.failf(InvalidLoop, "",
			"loop step must be positive, got %v", step)
	}

	i.scopes.OpenNewScope()
	defer i.scopes.CloseScope()

	scopeIndex := i.scopes.DefineVariableWithValue(stmt.Name, object.NewFloat(lower))

	for value := lower; value <= upper; {
		i.scopes.SetValueForVariable(stmt.Name, object.NewFloat(value), scopeIndex)
		for _, bodyStmt := range stmt.Body {
			if err := i.evalStmt(bodyStmt); err != nil {
				return err
			}
		}
		// The body may have reassigned the loop variable.
		current, _ := i.scopes.Lookup(stmt.Name)
		value, err = object.AsFloat(current)
		if err != nil {
			return i.failf(InvalidLoop, "",
				"loop variable '%s' is no longer a number", stmt.Name)
		}
		value += step
	}
	return nil
}

func (i *Interpreter) evalExpr(expr ast.Expr) (object.Object, error) {
	switch expr := expr.(type) {
	case *ast.Number:
		return object.NewFloat(expr.Value), nil
	case *ast.Bool:
		return object.NewBool(expr.Value), nil
	case *ast.String:
		return i.evalString(expr)
	case *ast.StringText:
		return object.NewString(expr.Value), nil
	case *ast.Ident:
		value, found := i.scopes.Lookup(expr.Name)
		if !found {
			return nil, i.failf(UndefinedVariable, "",
				"undefined variable '%s'", expr.Name)
		}
		return value, nil
	case *ast.Prefix:
		return i.evalPrefix(expr)
	case *ast.Infix:
		return i.evalInfix(expr)
	case *ast.Call:
		return i.evalCall(expr)
	default:
		return nil, i.failf(TypeMismatch, "", "unexpected expression %q", expr.String())
	}
}

// evalString concatenates the parts of an interpolated string, rendering
// embedded expression values the way print would.
func (i *Interpreter) evalString(expr *ast.String) (object.Object, error) {
	if expr.Parts == nil {
		return object.NewString(expr.Value), nil
	}
	var b strings.Builder
	for _, part := range expr.Parts {
		value, err := i.evalExpr(part)
		if err != nil {
			return nil, err
		}
		b.WriteString(stringRepresentation(value))
	}
	return object.NewString(b.String()), nil
}

// stringRepresentation renders a value for printing and interpolation.
// Strings appear without quotes; everything else uses its display form.
func stringRepresentation(value object.Object) string {
	if s, ok := value.(*object.String); ok {
		return s.Value()
	}
	return value.Inspect()
}

func (i *Interpreter) evalPrefix(expr *ast.Prefix) (object.Object, error) {
	right, err := i.evalExpr(expr.Right)
	if err != nil {
		return nil, err
	}
	value, err := object.AsFloat(right)
	if err != nil {
		return nil, i.failf(TypeMismatch, "",
			"operator '%s' expects a number (%s given)", expr.Operator, right.Type())
	}
	return object.NewFloat(-value), nil
}

func (i *Interpreter) evalInfix(expr *ast.Infix) (object.Object, error) {
	left, err := i.evalExpr(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(expr.Right)
	if err != nil {
		return nil, err
	}
	leftValue, err := object.AsFloat(left)
	if err != nil {
		return nil, i.failf(TypeMismatch, "",
			"operator '%s' expects numbers (%s given)", expr.Operator, left.Type())
	}
	rightValue, err := object.AsFloat(right)
	if err != nil {
		return nil, i.failf(TypeMismatch, "",
			"operator '%s' expects numbers (%s given)", expr.Operator, right.Type())
	}
	switch expr.Operator {
	case "+":
		return object.NewFloat(leftValue + rightValue), nil
	case "-":
		return object.NewFloat(leftValue - rightValue), nil
	case "*":
		return object.NewFloat(leftValue * rightValue), nil
	case "/":
		return object.NewFloat(leftValue / rightValue), nil
	default:
		return nil, i.failf(TypeMismatch, "", "unknown operator '%s'", expr.Operator)
	}
}

// evalNumber evaluates the expression and requires a numeric result.
func (i *Interpreter) evalNumber(expr ast.Expr) (float64, error) {
	value, err := i.evalExpr(expr)
	if err != nil {
		return 0, err
	}
	number, err := object.AsFloat(value)
	if err != nil {
		return 0, i.failf(TypeMismatch, "",
			"expected a number but found %s", value.Inspect())
	}
	return number, nil
}

func (i *Interpreter) evalCall(call *ast.Call) (object.Object, error) {
	fn, found := i.builtins[call.Name]
	if !found {
		return nil, i.failf(UnknownFunction, "",
			"unknown function '%s'", call.Name)
	}
	i.logger.Debug().Str("function", call.Name).Msg("interpreting call")
	return fn(call)
}

// Print writes the message to the interpreter's output writer.
func (i *Interpreter) print(message string) {
	fmt.Fprintln(i.out, message)
}
