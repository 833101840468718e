package interp

import (
	"math"
	"math/rand"

	"github.com/gyre-lang/gyre/ast"
	"github.com/gyre-lang/gyre/canvas"
	"github.com/gyre-lang/gyre/geometry"
	"github.com/gyre-lang/gyre/object"
)

// builtinFunc evaluates one function call. Implementations evaluate their
// own arguments, which allows the curve functions to defer evaluation of
// expressions that depend on the hidden sample variable.
type builtinFunc func(call *ast.Call) (object.Object, error)

func (i *Interpreter) registerBuiltins() {
	i.builtins = map[string]builtinFunc{
		"Pol":            i.builtinPol,
		"circle":         i.builtinCircle,
		"clear":          i.builtinClear,
		"cos":            i.mathBuiltin(math.Cos),
		"cosh":           i.mathBuiltin(math.Cosh),
		"curve_angle":    i.builtinCurveAngle,
		"curve_distance": i.builtinCurveDistance,
		"distance":       i.builtinDistance,
		"exp":            i.mathBuiltin(math.Exp),
		"line":           i.builtinLine,
		"log":            i.mathBuiltin(math.Log),
		"mark":           i.builtinMark,
		"point":          i.builtinMark,
		"print":          i.builtinPrint,
		"random":         i.builtinRandom,
		"rotate":         i.builtinRotate,
		"save":           i.builtinSave,
		"set_resolution": i.builtinSetResolution,
		"sin":            i.mathBuiltin(math.Sin),
		"sinh":           i.mathBuiltin(math.Sinh),
		"sqrt":           i.mathBuiltin(math.Sqrt),
		"theta":          i.builtinTheta,
		"translate":      i.builtinTranslate,
	}
}

// mathBuiltin adapts a one-argument math function to a builtin taking the
// parameter 'x'.
func (i *Interpreter) mathBuiltin(fn func(float64) float64) builtinFunc {
	return func(call *ast.Call) (object.Object, error) {
		if err := i.checkParameters(call, "x"); err != nil {
			return nil, err
		}
		x, err := i.numberArg(call, "x")
		if err != nil {
			return nil, err
		}
		return object.NewFloat(fn(x)), nil
	}
}

// builtinPol constructs a polar point record: Pol(r: 1, phi: 0.5).
func (i *Interpreter) builtinPol(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "r", "phi"); err != nil {
		return nil, err
	}
	r, err := i.numberArg(call, "r")
	if err != nil {
		return nil, err
	}
	phi, err := i.numberArg(call, "phi")
	if err != nil {
		return nil, err
	}
	return polToObject(geometry.Pol{R: r, Phi: phi}), nil
}

func (i *Interpreter) builtinClear(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call); err != nil {
		return nil, err
	}
	i.canvas.Clear()
	return object.Nil, nil
}

func (i *Interpreter) builtinCircle(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "center", "radius"); err != nil {
		return nil, err
	}
	center, err := i.polArg(call, "center")
	if err != nil {
		return nil, err
	}
	radius, err := i.numberArg(call, "radius")
	if err != nil {
		return nil, err
	}
	path := canvas.PathForCircle(center, radius, i.canvas.Resolution)
	i.canvas.AddPath(path)
	return object.Nil, nil
}

func (i *Interpreter) builtinLine(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "from", "to"); err != nil {
		return nil, err
	}
	from, err := i.polArg(call, "from")
	if err != nil {
		return nil, err
	}
	to, err := i.polArg(call, "to")
	if err != nil {
		return nil, err
	}
	path := canvas.PathForLine(from, to, i.canvas.Resolution)
	i.canvas.AddPath(path)
	return object.Nil, nil
}

// builtinMark places a small filled circle at a point, with a display radius
// that is not a hyperbolic length.
func (i *Interpreter) builtinMark(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "center", "radius"); err != nil {
		return nil, err
	}
	center, err := i.polArg(call, "center")
	if err != nil {
		return nil, err
	}
	radius, err := i.numberArg(call, "radius")
	if err != nil {
		return nil, err
	}
	i.canvas.AddMark(canvas.Circle{Center: center, Radius: radius, IsFilled: true})
	return object.Nil, nil
}

func (i *Interpreter) builtinDistance(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "from", "to"); err != nil {
		return nil, err
	}
	from, err := i.polArg(call, "from")
	if err != nil {
		return nil, err
	}
	to, err := i.polArg(call, "to")
	if err != nil {
		return nil, err
	}
	return object.NewFloat(from.DistanceTo(to)), nil
}

func (i *Interpreter) builtinRotate(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "point", "by"); err != nil {
		return nil, err
	}
	point, err := i.polArg(call, "point")
	if err != nil {
		return nil, err
	}
	angle, err := i.numberArg(call, "by")
	if err != nil {
		return nil, err
	}
	return polToObject(point.RotateBy(angle)), nil
}

func (i *Interpreter) builtinTranslate(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "point", "by"); err != nil {
		return nil, err
	}
	point, err := i.polArg(call, "point")
	if err != nil {
		return nil, err
	}
	distance, err := i.numberArg(call, "by")
	if err != nil {
		return nil, err
	}
	return polToObject(point.TranslateHorizontallyBy(distance)), nil
}

func (i *Interpreter) builtinRandom(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "from", "to"); err != nil {
		return nil, err
	}
	from, err := i.numberArg(call, "from")
	if err != nil {
		return nil, err
	}
	to, err := i.numberArg(call, "to")
	if err != nil {
		return nil, err
	}
	if from > to {
		return nil, i.failf(InvalidRange, call.Name,
			"argument 'from' must not be larger than 'to'")
	}
	return object.NewFloat(from + rand.Float64()*(to-from)), nil
}

// builtinTheta computes the angle opposite the side of length R in a
// hyperbolic triangle with side lengths r1, r2 and R.
func (i *Interpreter) builtinTheta(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "r1", "r2", "R"); err != nil {
		return nil, err
	}
	r1, err := i.numberArg(call, "r1")
	if err != nil {
		return nil, err
	}
	r2, err := i.numberArg(call, "r2")
	if err != nil {
		return nil, err
	}
	R, err := i.numberArg(call, "R")
	if err != nil {
		return nil, err
	}
	if r1 > R || r2 > R {
		return nil, i.failf(InvalidTriangle, call.Name,
			"arguments 'r1' and 'r2' must not be larger than 'R' (r1 = %v, r2 = %v, R = %v)",
			r1, r2, R)
	}
	if r1+r2 < R {
		return nil, i.failf(InvalidTriangle, call.Name,
			"the sum of the arguments 'r1' and 'r2' must be at least 'R'")
	}
	angle, thetaErr := geometry.Theta(r1, r2, R)
	if thetaErr != nil {
		return nil, i.failf(NumericalFailure, call.Name,
			"the value could not be computed due to numerical issues")
	}
	return object.NewFloat(angle), nil
}

func (i *Interpreter) builtinPrint(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "message"); err != nil {
		return nil, err
	}
	message, err := i.stringArg(call, "message")
	if err != nil {
		return nil, err
	}
	i.print(message)
	return object.Nil, nil
}

func (i *Interpreter) builtinSave(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "file"); err != nil {
		return nil, err
	}
	fileName, err := i.stringArg(call, "file")
	if err != nil {
		return nil, err
	}
	if err := i.canvas.SaveToFile(fileName); err != nil {
		return nil, i.failf(SaveFailure, call.Name,
			"could not write '%s': %v", fileName, err)
	}
	return object.Nil, nil
}

func (i *Interpreter) builtinSetResolution(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "x"); err != nil {
		return nil, err
	}
	x, err := i.numberArg(call, "x")
	if err != nil {
		return nil, err
	}
	if x <= 0.0 {
		return nil, i.failf(InvalidResolution, call.Name,
			"cannot set non-positive resolution")
	}
	i.canvas.Resolution = x
	return object.Nil, nil
}
