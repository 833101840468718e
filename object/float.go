package object

import (
	"strconv"
)

// Float wraps float64 and implements the Object interface. All numbers in
// gyre scripts are floats.
type Float struct {
	value float64
}

func (f *Float) Type() Type {
	return FLOAT
}

func (f *Float) Inspect() string {
	return strconv.FormatFloat(f.value, 'f', -1, 64)
}

func (f *Float) Value() float64 {
	return f.value
}

func (f *Float) Interface() interface{} {
	return f.value
}

func (f *Float) String() string {
	return f.Inspect()
}

func (f *Float) Equals(other Object) bool {
	otherFloat, ok := other.(*Float)
	if !ok {
		return false
	}
	return f.value == otherFloat.value
}

// NewFloat creates a new Float object from the given value.
func NewFloat(value float64) *Float {
	return &Float{value: value}
}
