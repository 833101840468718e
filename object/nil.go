package object

// NilType represents the absence of a value. Statements that only have side
// effects (drawing, saving) evaluate to Nil.
type NilType struct{}

func (n *NilType) Type() Type {
	return NIL
}

func (n *NilType) Inspect() string {
	return "nil"
}

func (n *NilType) Interface() interface{} {
	return nil
}

func (n *NilType) String() string {
	return "nil"
}

func (n *NilType) Equals(other Object) bool {
	_, ok := other.(*NilType)
	return ok
}
