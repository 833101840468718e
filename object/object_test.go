package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatBasics(t *testing.T) {
	value := NewFloat(2.5)
	require.Equal(t, FLOAT, value.Type())
	require.Equal(t, 2.5, value.Value())
	require.Equal(t, "2.5", value.Inspect())
	require.Equal(t, 2.5, value.Interface())
	require.True(t, value.Equals(NewFloat(2.5)))
	require.False(t, value.Equals(NewFloat(2.0)))
	require.False(t, value.Equals(NewString("2.5")))
}

func TestStringBasics(t *testing.T) {
	value := NewString("abcd")
	require.Equal(t, STRING, value.Type())
	require.Equal(t, "abcd", value.Value())
	require.Equal(t, "abcd", value.String())
	require.Equal(t, `"abcd"`, value.Inspect())
	require.True(t, value.Equals(NewString("abcd")))
	require.False(t, value.Equals(NewString("abc")))
}

func TestBoolBasics(t *testing.T) {
	require.Same(t, True, NewBool(true))
	require.Same(t, False, NewBool(false))
	require.Equal(t, "true", True.Inspect())
	require.True(t, True.Equals(NewBool(true)))
	require.False(t, True.Equals(False))
}

func TestNilBasics(t *testing.T) {
	require.Equal(t, NIL, Nil.Type())
	require.Equal(t, "nil", Nil.Inspect())
	require.True(t, Nil.Equals(&NilType{}))
	require.False(t, Nil.Equals(False))
}

func TestRecordFieldOrder(t *testing.T) {
	r := NewRecord(PolTypeName)
	r.Set("r", NewFloat(1))
	r.Set("phi", NewFloat(0.5))
	require.Equal(t, []string{"r", "phi"}, r.FieldNames())
	require.Equal(t, "Pol(r: 1, phi: 0.5)", r.Inspect())

	// Overwriting keeps the original position.
	r.Set("r", NewFloat(2))
	require.Equal(t, []string{"r", "phi"}, r.FieldNames())
	value, found := r.Get("r")
	require.True(t, found)
	require.Equal(t, NewFloat(2), value)
}

func TestRecordEquals(t *testing.T) {
	a := NewRecord(PolTypeName)
	a.Set("r", NewFloat(1))
	a.Set("phi", NewFloat(2))

	b := NewRecord(PolTypeName)
	b.Set("r", NewFloat(1))
	b.Set("phi", NewFloat(2))
	require.True(t, a.Equals(b))

	b.Set("phi", NewFloat(3))
	require.False(t, a.Equals(b))

	c := NewRecord("Euc")
	c.Set("r", NewFloat(1))
	c.Set("phi", NewFloat(2))
	require.False(t, a.Equals(c))
}

func TestTypeConversions(t *testing.T) {
	f, err := AsFloat(NewFloat(3.25))
	require.NoError(t, err)
	require.Equal(t, 3.25, f)

	_, err = AsFloat(NewString("nope"))
	require.Error(t, err)
	require.Equal(t, "type error: expected a number (string given)", err.Error())

	s, err := AsString(NewString("hi"))
	require.NoError(t, err)
	require.Equal(t, "hi", s)

	_, err = AsString(NewFloat(1))
	require.Error(t, err)

	r := NewRecord(PolTypeName)
	got, err := AsRecord(r)
	require.NoError(t, err)
	require.Same(t, r, got)

	_, err = AsRecord(Nil)
	require.Error(t, err)
}
