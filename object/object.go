// Package object provides the set of runtime value types for gyre scripts.
//
// A gyre value is one of: a float, a string, a bool, a structured record, or
// nil. External users will often type assert an object.Object to a specific
// type, such as *object.Float:
//
//	switch obj := obj.(type) {
//	case *object.String:
//		// do something with obj.Value()
//	case *object.Float:
//		// do something with obj.Value()
//	}
//
// The Type() method of each object may also be used to get a string
// name of the object type, such as "string" or "float".
package object

// Type of an object as a string.
type Type string

// Type constants
const (
	BOOL   Type = "bool"
	FLOAT  Type = "float"
	NIL    Type = "nil"
	RECORD Type = "record"
	STRING Type = "string"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface that all gyre value types must implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Equals returns true if the given object is equal to this object.
	Equals(other Object) bool
}
