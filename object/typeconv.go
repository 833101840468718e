package object

import (
	"fmt"
)

// AsFloat converts the given object to a float64, returning an error if the
// conversion is not possible.
func AsFloat(obj Object) (float64, error) {
	f, ok := obj.(*Float)
	if !ok {
		return 0.0, fmt.Errorf("type error: expected a number (%s given)", obj.Type())
	}
	return f.value, nil
}

// AsString converts the given object to a string, returning an error if the
// conversion is not possible.
func AsString(obj Object) (string, error) {
	s, ok := obj.(*String)
	if !ok {
		return "", fmt.Errorf("type error: expected a string (%s given)", obj.Type())
	}
	return s.value, nil
}

// AsBool converts the given object to a bool, returning an error if the
// conversion is not possible.
func AsBool(obj Object) (bool, error) {
	b, ok := obj.(*Bool)
	if !ok {
		return false, fmt.Errorf("type error: expected a bool (%s given)", obj.Type())
	}
	return b.value, nil
}

// AsRecord converts the given object to a *Record, returning an error if the
// conversion is not possible.
func AsRecord(obj Object) (*Record, error) {
	r, ok := obj.(*Record)
	if !ok {
		return nil, fmt.Errorf("type error: expected a record (%s given)", obj.Type())
	}
	return r, nil
}
