package object

import (
	"fmt"
)

// String wraps a Go string and implements the Object interface.
type String struct {
	value string
}

func (s *String) Type() Type {
	return STRING
}

func (s *String) Inspect() string {
	return fmt.Sprintf("%q", s.value)
}

func (s *String) Value() string {
	return s.value
}

func (s *String) Interface() interface{} {
	return s.value
}

func (s *String) String() string {
	return s.value
}

func (s *String) Equals(other Object) bool {
	otherStr, ok := other.(*String)
	if !ok {
		return false
	}
	return s.value == otherStr.value
}

// NewString creates a new String object from the given value.
func NewString(value string) *String {
	return &String{value: value}
}
