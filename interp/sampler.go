package interp

import (
	"math"

	"github.com/gyre-lang/gyre/ast"
	"github.com/gyre-lang/gyre/canvas"
	"github.com/gyre-lang/gyre/geometry"
	"github.com/gyre-lang/gyre/object"
)

// hiddenPointName is the variable the curve functions bind to the current
// sample point while evaluating their deferred argument. The parser rejects
// assignments to names starting with '_', so scripts can read it but never
// rebind it.
const hiddenPointName = "_p"

// samplePoint rebinds the hidden variable to the given point and evaluates
// the deferred expression, requiring a numeric result. The record is reused
// across samples; only the scope slot with the given index is touched.
func (i *Interpreter) samplePoint(call *ast.Call, expr ast.Expr, point geometry.Pol,
	record *object.Record, scopeIndex int) (float64, error) {
	record.Set("r", object.NewFloat(point.R))
	record.Set("phi", object.NewFloat(point.Phi))
	i.scopes.SetValueForVariable(hiddenPointName, record, scopeIndex)

	value, err := i.evalExpr(expr)
	if err != nil {
		return 0, err
	}
	number, err := object.AsFloat(value)
	if err != nil {
		return 0, i.failf(TypeMismatch, call.Name,
			"the sampled expression must yield a number but yielded %s", value.Inspect())
	}
	return number, nil
}

// builtinCurveAngle draws a curve whose points deviate angularly from the
// radial line between from and to. At each sampled radius the angle argument
// is evaluated with _p bound to the point on the line, and the resulting
// angle is added to the line's angular coordinate.
func (i *Interpreter) builtinCurveAngle(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "from", "to", "angle"); err != nil {
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
	angleExpr, err := i.exprArg(call, "angle")
	if err != nil {
		return nil, err
	}

	if from.Phi != to.Phi {
		return nil, i.failf(InconsistentEndpoints, call.Name,
			"the angular coordinates of the two endpoints did not match: %v vs. %v",
			from.Phi, to.Phi)
	}

	// Walk outwards from the endpoint closer to the origin.
	if from.R > to.R {
		from, to = to, from
	}

	step := (to.R - from.R) / i.canvas.Resolution
	if !(step > 0) {
		return nil, i.failf(NonPositiveStep, call.Name,
			"invalid step size <= 0; make sure that 'to' and 'from' are not the same point")
	}

	// Close to the origin small radial steps cover large angular changes,
	// so the first few steps are subdivided.
	detailThreshold := 5.0 * step
	detailPoints := i.canvas.Resolution / 5.0
	additionalStep := step / detailPoints

	var radii []float64
	for radius := from.R; radius <= to.R; radius += step {
		radii = append(radii, radius)
		if radius < from.R+detailThreshold {
			for additional := radius + additionalStep; additional < radius+step; additional += additionalStep {
				radii = append(radii, additional)
			}
		}
	}

	i.scopes.OpenNewScope()
	defer i.scopes.CloseScope()

	record := polToObject(from)
	scopeIndex := i.scopes.DefineVariableWithValue(hiddenPointName, record)

	path := canvas.Path{IsClosed: false}
	for _, r := range radii {
		sample := geometry.Pol{R: r, Phi: from.Phi}
		angle, err := i.samplePoint(call, angleExpr, sample, record, scopeIndex)
		if err != nil {
			return nil, err
		}
		path.PushBack(geometry.Pol{R: r, Phi: from.Phi + angle})
	}

	i.canvas.AddPath(path)
	return object.Nil, nil
}

// builtinCurveDistance draws a curve whose points deviate perpendicularly
// from the geodesic line between from and to. The line is moved into a
// reference frame where it runs along the ray at angle 0 starting at the
// origin; there the perpendicular offset is applied and the movement is
// reversed to place the point relative to the original line.
func (i *Interpreter) builtinCurveDistance(call *ast.Call) (object.Object, error) {
	if err := i.checkParameters(call, "from", "to", "distance"); err != nil {
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
	distanceExpr, err := i.exprArg(call, "distance")
	if err != nil {
		return nil, err
	}

	step := from.DistanceTo(to) / i.canvas.Resolution
	if !(step > 0) {
		return nil, i.failf(NonPositiveStep, call.Name,
			"invalid step size <= 0; make sure that 'to' and 'from' are not the same point")
	}

	// The frame change: rotate from onto angle 0, translate it into the
	// origin, then rotate to onto angle 0.
	rotationAngle := -from.Phi
	translationDistance := -from.R
	translatedTo := to.RotateBy(rotationAngle).TranslateHorizontallyBy(translationDistance)
	secondRotationAngle := -translatedTo.Phi

	fromFrame := func(p geometry.Pol) geometry.Pol {
		return p.RotateBy(-secondRotationAngle).
			TranslateHorizontallyBy(-translationDistance).
			RotateBy(-rotationAngle)
	}

	var radii []float64
	for radius := 0.0; radius < translatedTo.R; radius += step {
		radii = append(radii, radius)
	}

	i.scopes.OpenNewScope()
	defer i.scopes.CloseScope()

	record := polToObject(from)
	scopeIndex := i.scopes.DefineVariableWithValue(hiddenPointName, record)

	path := canvas.Path{IsClosed: false}
	for _, r := range radii {
		// The sample point on the original line.
		onLine := fromFrame(geometry.Pol{R: r, Phi: 0.0})

		distance, err := i.samplePoint(call, distanceExpr, onLine, record, scopeIndex)
		if err != nil {
			return nil, err
		}

		// A negative distance places the point on the other side of the
		// line.
		offsetAngle := math.Pi / 2.0
		if distance < 0 {
			offsetAngle = 2.0*math.Pi - math.Pi/2.0
		}

		// Start perpendicular to the reference ray, slide along the ray to
		// the sample position, then leave the reference frame.
		offset := geometry.Pol{R: math.Abs(distance), Phi: offsetAngle}
		point := fromFrame(offset.TranslateHorizontallyBy(r))
		path.PushBack(point)
	}

	i.canvas.AddPath(path)
	return object.Nil, nil
}
