package interp

import (
	"github.com/gyre-lang/gyre/ast"
	"github.com/gyre-lang/gyre/geometry"
	"github.com/gyre-lang/gyre/object"
)

// checkParameters verifies that every argument of the call names one of the
// allowed parameters and that no parameter is supplied twice. It does not
// evaluate anything: some arguments are evaluated later, when the hidden
// sample variable exists.
func (i *Interpreter) checkParameters(call *ast.Call, allowed ...string) error {
	if len(allowed) == 0 && len(call.Args) > 0 {
		return i.failf(ExtraneousArgument, call.Name,
			"this function does not take any arguments")
	}
	seen := make(map[string]bool, len(call.Args))
	for _, arg := range call.Args {
		if seen[arg.Name] {
			return i.failf(ExtraneousArgument, call.Name,
				"parameter '%s' is supplied more than once", arg.Name)
		}
		seen[arg.Name] = true
		known := false
		for _, name := range allowed {
			if arg.Name == name {
				known = true
				break
			}
		}
		if !known {
			return i.failf(ExtraneousArgument, call.Name,
				"extraneous argument '%s'", arg.Name)
		}
	}
	return nil
}

// exprArg returns the unevaluated expression for the named parameter.
func (i *Interpreter) exprArg(call *ast.Call, name string) (ast.Expr, error) {
	expr, found := call.Arg(name)
	if !found {
		return nil, i.failf(MissingArgument, call.Name,
			"missing argument '%s'", name)
	}
	return expr, nil
}

// numberArg evaluates the named argument and requires a numeric value.
func (i *Interpreter) numberArg(call *ast.Call, name string) (float64, error) {
	expr, err := i.exprArg(call, name)
	if err != nil {
		return 0, err
	}
	value, err := i.evalExpr(expr)
	if err != nil {
		return 0, err
	}
	number, err := object.AsFloat(value)
	if err != nil {
		return 0, i.failf(TypeMismatch, call.Name,
			"argument '%s' must be a number but is %s", name, value.Inspect())
	}
	return number, nil
}

// stringArg evaluates the named argument and requires a string value.
func (i *Interpreter) stringArg(call *ast.Call, name string) (string, error) {
	expr, err := i.exprArg(call, name)
	if err != nil {
		return "", err
	}
	value, err := i.evalExpr(expr)
	if err != nil {
		return "", err
	}
	text, err := object.AsString(value)
	if err != nil {
		return "", i.failf(TypeMismatch, call.Name,
			"argument '%s' must be a string but is %s", name, value.Inspect())
	}
	return text, nil
}

// polArg evaluates the named argument and requires a Pol record, converting
// it to a geometric point.
func (i *Interpreter) polArg(call *ast.Call, name string) (geometry.Pol, error) {
	expr, err := i.exprArg(call, name)
	if err != nil {
		return geometry.Pol{}, err
	}
	value, err := i.evalExpr(expr)
	if err != nil {
		return geometry.Pol{}, err
	}
	point, convErr := polFromObject(value)
	if convErr != nil {
		return geometry.Pol{}, i.failf(TypeMismatch, call.Name,
			"argument '%s' must be a Pol but is %s", name, value.Inspect())
	}
	return point, nil
}

// polFromObject converts a Pol record into a geometric point.
func polFromObject(value object.Object) (geometry.Pol, error) {
	record, err := object.AsRecord(value)
	if err != nil {
		return geometry.Pol{}, err
	}
	if record.TypeName() != object.PolTypeName {
		return geometry.Pol{}, newEvalError(TypeMismatch, "",
			"expected a Pol record but found %s", record.TypeName())
	}
	rField, found := record.Get("r")
	if !found {
		return geometry.Pol{}, newEvalError(TypeMismatch, "", "Pol record has no field 'r'")
	}
	phiField, found := record.Get("phi")
	if !found {
		return geometry.Pol{}, newEvalError(TypeMismatch, "", "Pol record has no field 'phi'")
	}
	r, err := object.AsFloat(rField)
	if err != nil {
		return geometry.Pol{}, err
	}
	phi, err := object.AsFloat(phiField)
	if err != nil {
		return geometry.Pol{}, err
	}
	return geometry.Pol{R: r, Phi: phi}, nil
}

// polToObject converts a geometric point into a Pol record.
func polToObject(point geometry.Pol) *object.Record {
	record := object.NewRecord(object.PolTypeName)
	record.Set("r", object.NewFloat(point.R))
	record.Set("phi", object.NewFloat(point.Phi))
	return record
}
