package interp

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gyre-lang/gyre/object"
	"github.com/gyre-lang/gyre/parser"
)

func run(t *testing.T, src string) (*Interpreter, error) {
	t.Helper()
	program, err := parser.Parse(src)
	require.Nil(t, err)
	i := New(
		WithOutput(io.Discard),
		WithDiagnostics(NewDiagnostics(io.Discard, false)),
	)
	return i, i.Run(program)
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.NotNil(t, err)
	var evalErr *EvalError
	require.ErrorAs(t, err, &evalErr)
	require.Equal(t, kind, evalErr.Kind)
}

func lookupFloat(t *testing.T, i *Interpreter, name string) float64 {
	t.Helper()
	value, found := i.scopes.Lookup(name)
	require.True(t, found)
	number, err := object.AsFloat(value)
	require.Nil(t, err)
	return number
}

func TestVarAndArithmetic(t *testing.T) {
	i, err := run(t, "var a = 1 + 2 * 3\nvar b = (1 + 2) * 3\nvar c = -a + b\n")
	require.Nil(t, err)
	require.Equal(t, 7.0, lookupFloat(t, i, "a"))
	require.Equal(t, 9.0, lookupFloat(t, i, "b"))
	require.Equal(t, 2.0, lookupFloat(t, i, "c"))
}

func TestPredefinedPi(t *testing.T) {
	i, err := run(t, "var tau = 2 * M_PI\n")
	require.Nil(t, err)
	require.InDelta(t, 2*math.Pi, lookupFloat(t, i, "tau"), 1e-12)
}

func TestAssignment(t *testing.T) {
	i, err := run(t, "var a = 1\na = a + 1\n")
	require.Nil(t, err)
	require.Equal(t, 2.0, lookupFloat(t, i, "a"))
}

func TestUndefinedVariable(t *testing.T) {
	_, err := run(t, "var a = b\n")
	requireKind(t, err, UndefinedVariable)

	_, err = run(t, "a = 1\n")
	requireKind(t, err, UndefinedVariable)
}

func TestRedefinition(t *testing.T) {
	_, err := run(t, "var a = 1\nvar a = 2\n")
	requireKind(t, err, Redefinition)
}

func TestUnknownFunction(t *testing.T) {
	_, err := run(t, "frobnicate(x: 1)\n")
	requireKind(t, err, UnknownFunction)
}

func TestMathBuiltins(t *testing.T) {
	i, err := run(t, "var a = sin(x: 0)\nvar b = cos(x: 0)\nvar c = sqrt(x: 9)\n")
	require.Nil(t, err)
	require.Equal(t, 0.0, lookupFloat(t, i, "a"))
	require.Equal(t, 1.0, lookupFloat(t, i, "b"))
	require.Equal(t, 3.0, lookupFloat(t, i, "c"))
}

func TestArgumentErrors(t *testing.T) {
	_, err := run(t, "sin()\n")
	requireKind(t, err, MissingArgument)

	_, err = run(t, "sin(x: 1, y: 2)\n")
	requireKind(t, err, ExtraneousArgument)

	_, err = run(t, "sin(x: \"one\")\n")
	requireKind(t, err, TypeMismatch)

	_, err = run(t, "clear(x: 1)\n")
	requireKind(t, err, ExtraneousArgument)
}

func TestPolConstructorAndFields(t *testing.T) {
	i, err := run(t, "var p = Pol(r: 2, phi: 1)\n")
	require.Nil(t, err)

	value, found := i.scopes.Lookup("p")
	require.True(t, found)
	record, convErr := object.AsRecord(value)
	require.Nil(t, convErr)
	require.Equal(t, object.PolTypeName, record.TypeName())
	require.Equal(t, "Pol(r: 2, phi: 1)", record.Inspect())
}

func TestRotateTranslateDistance(t *testing.T) {
	i, err := run(t, strings.Join([]string{
		"var p = Pol(r: 1, phi: 0)",
		"var q = rotate(point: p, by: M_PI)",
		"var back = translate(point: q, by: 1)",
		"var d = distance(from: p, to: q)",
		"",
	}, "\n"))
	require.Nil(t, err)

	q, found := i.scopes.Lookup("q")
	require.True(t, found)
	point, convErr := polFromObject(q)
	require.Nil(t, convErr)
	require.InDelta(t, 1.0, point.R, 1e-12)
	require.InDelta(t, math.Pi, point.Phi, 1e-12)

	back, _ := i.scopes.Lookup("back")
	backPoint, convErr := polFromObject(back)
	require.Nil(t, convErr)
	require.InDelta(t, 0.0, backPoint.R, 1e-12)

	require.InDelta(t, 2.0, lookupFloat(t, i, "d"), 1e-9)
}

func TestRandomRange(t *testing.T) {
	i, err := run(t, "var a = random(from: 2, to: 2)\n")
	require.Nil(t, err)
	require.Equal(t, 2.0, lookupFloat(t, i, "a"))

	i, err = run(t, "var a = random(from: 0, to: 1)\n")
	require.Nil(t, err)
	a := lookupFloat(t, i, "a")
	require.GreaterOrEqual(t, a, 0.0)
	require.Less(t, a, 1.0)

	_, err = run(t, "random(from: 2, to: 1)\n")
	requireKind(t, err, InvalidRange)
}

func TestTheta(t *testing.T) {
	i, err := run(t, "var a = theta(r1: 1, r2: 1, R: 2)\n")
	require.Nil(t, err)
	require.InDelta(t, math.Pi, lookupFloat(t, i, "a"), 1e-9)

	_, err = run(t, "theta(r1: 3, r2: 1, R: 2)\n")
	requireKind(t, err, InvalidTriangle)

	_, err = run(t, "theta(r1: 0.5, r2: 0.5, R: 2)\n")
	requireKind(t, err, InvalidTriangle)
}

func TestSetResolution(t *testing.T) {
	i, err := run(t, "set_resolution(x: 50)\n")
	require.Nil(t, err)
	require.Equal(t, 50.0, i.Canvas().Resolution)

	program, parseErr := parser.Parse("set_resolution(x: -1)\n")
	require.Nil(t, parseErr)
	err = i.Run(program)
	requireKind(t, err, InvalidResolution)
	// The resolution stays untouched after the failed call.
	require.Equal(t, 50.0, i.Canvas().Resolution)
}

func TestDrawingAccumulatesOnCanvas(t *testing.T) {
	i, err := run(t, strings.Join([]string{
		"var o = Pol(r: 0, phi: 0)",
		"var p = Pol(r: 2, phi: 1)",
		"line(from: o, to: p)",
		"circle(center: o, radius: 1)",
		"mark(center: p, radius: 0.05)",
		"point(center: o, radius: 0.05)",
		"",
	}, "\n"))
	require.Nil(t, err)

	c := i.Canvas()
	require.Len(t, c.Paths, 2)
	require.Len(t, c.Marks, 2)
	require.True(t, c.Marks[0].IsFilled)

	program, parseErr := parser.Parse("clear()\n")
	require.Nil(t, parseErr)
	require.Nil(t, i.Run(program))
	require.Len(t, c.Paths, 0)
	require.Len(t, c.Marks, 0)
}

func TestForLoop(t *testing.T) {
	i, err := run(t, strings.Join([]string{
		"var sum = 0",
		"for k in [1, 1, 4] {",
		"	sum = sum + k",
		"}",
		"",
	}, "\n"))
	require.Nil(t, err)
	require.Equal(t, 10.0, lookupFloat(t, i, "sum"))

	// The loop variable is gone once the loop finished.
	_, found := i.scopes.Lookup("k")
	require.False(t, found)
}

func TestForLoopBodyMayAdvanceVariable(t *testing.T) {
	i, err := run(t, strings.Join([]string{
		"var count = 0",
		"for k in [0, 1, 10] {",
		"	count = count + 1",
		"	k = k + 1",
		"}",
		"",
	}, "\n"))
	require.Nil(t, err)
	// Each iteration advances k by 2 in total.
	require.Equal(t, 6.0, lookupFloat(t, i, "count"))
}

func TestForLoopInvalidStep(t *testing.T) {
	_, err := run(t, "for k in [0, 0, 10] { print(message: \"x\") }\n")
	requireKind(t, err, InvalidLoop)

	_, err = run(t, "for k in [0, -1, 10] { print(message: \"x\") }\n")
	requireKind(t, err, InvalidLoop)
}

func TestPrintAndInterpolation(t *testing.T) {
	var out bytes.Buffer
	i := New(WithOutput(&out), WithDiagnostics(NewDiagnostics(io.Discard, false)))

	program, err := parser.Parse("var a = 2\nprint(message: \"a is \\(a * 3)!\")\n")
	require.Nil(t, err)
	require.Nil(t, i.Run(program))
	require.Equal(t, "a is 6!\n", out.String())
}

func TestPrintRequiresString(t *testing.T) {
	_, err := run(t, "print(message: 42)\n")
	requireKind(t, err, TypeMismatch)
}

func TestDiagnosticsReportedOnce(t *testing.T) {
	var diag bytes.Buffer
	i := New(
		WithOutput(io.Discard),
		WithDiagnostics(NewDiagnostics(&diag, false)),
	)
	program, err := parser.Parse("var a = sin(x: missing)\n")
	require.Nil(t, err)
	require.NotNil(t, i.Run(program))

	output := strings.TrimSpace(diag.String())
	require.Contains(t, output, "missing")
	require.Equal(t, 1, strings.Count(output, "\n")+1)
}
