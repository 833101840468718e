package object

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// PolTypeName is the type tag of records that represent polar coordinates.
const PolTypeName = "Pol"

// Record is a structured value: an ordered mapping from field name to Object,
// tagged with the name of the type it represents (e.g. "Pol"). Field order is
// the order of first assignment, so records print the way they were built.
type Record struct {
	typeName string
	fields   *linkedhashmap.Map
}

func (r *Record) Type() Type {
	return RECORD
}

// TypeName returns the type tag carried by this record.
func (r *Record) TypeName() string {
	return r.typeName
}

// Set assigns the field with the given name. Assigning an existing field
// keeps its original position.
func (r *Record) Set(name string, value Object) {
	r.fields.Put(name, value)
}

// Get returns the field with the given name.
func (r *Record) Get(name string) (Object, bool) {
	value, found := r.fields.Get(name)
	if !found {
		return nil, false
	}
	return value.(Object), true
}

// FieldNames returns the field names in insertion order.
func (r *Record) FieldNames() []string {
	keys := r.fields.Keys()
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, key.(string))
	}
	return names
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return r.fields.Size()
}

func (r *Record) Inspect() string {
	var b strings.Builder
	b.WriteString(r.typeName)
	b.WriteString("(")
	for i, name := range r.FieldNames() {
		if i > 0 {
			b.WriteString(", ")
		}
		value, _ := r.Get(name)
		fmt.Fprintf(&b, "%s: %s", name, value.Inspect())
	}
	b.WriteString(")")
	return b.String()
}

func (r *Record) String() string {
	return r.Inspect()
}

func (r *Record) Interface() interface{} {
	result := make(map[string]interface{}, r.Len())
	for _, name := range r.FieldNames() {
		value, _ := r.Get(name)
		result[name] = value.Interface()
	}
	return result
}

func (r *Record) Equals(other Object) bool {
	otherRecord, ok := other.(*Record)
	if !ok {
		return false
	}
	if r.typeName != otherRecord.typeName || r.Len() != otherRecord.Len() {
		return false
	}
	for _, name := range r.FieldNames() {
		value, _ := r.Get(name)
		otherValue, found := otherRecord.Get(name)
		if !found || !value.Equals(otherValue) {
			return false
		}
	}
	return true
}

// NewRecord creates an empty record tagged with the given type name.
func NewRecord(typeName string) *Record {
	return &Record{typeName: typeName, fields: linkedhashmap.New()}
}
