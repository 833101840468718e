package object

import (
	"strconv"
)

// Bool wraps a Go bool and implements the Object interface. The two
// instances True and False are shared; use NewBool to pick one.
type Bool struct {
	value bool
}

func (b *Bool) Type() Type {
	return BOOL
}

func (b *Bool) Inspect() string {
	return strconv.FormatBool(b.value)
}

func (b *Bool) Value() bool {
	return b.value
}

func (b *Bool) Interface() interface{} {
	return b.value
}

func (b *Bool) String() string {
	return b.Inspect()
}

func (b *Bool) Equals(other Object) bool {
	return b == other
}

// NewBool returns either True or False depending on the given value.
func NewBool(value bool) *Bool {
	if value {
		return True
	}
	return False
}
