package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gyre-lang/gyre/object"
)

func TestScopeDefineAndLookup(t *testing.T) {
	s := NewScopeStack()
	s.DefineVariableWithValue("a", object.NewFloat(1))

	value, found := s.Lookup("a")
	require.True(t, found)
	require.Equal(t, 1.0, value.(*object.Float).Value())

	_, found = s.Lookup("b")
	require.False(t, found)
}

func TestScopeShadowing(t *testing.T) {
	s := NewScopeStack()
	s.DefineVariableWithValue("a", object.NewFloat(1))

	s.OpenNewScope()
	s.DefineVariableWithValue("a", object.NewFloat(2))

	value, _ := s.Lookup("a")
	require.Equal(t, 2.0, value.(*object.Float).Value())

	require.Nil(t, s.CloseScope())

	value, _ = s.Lookup("a")
	require.Equal(t, 1.0, value.(*object.Float).Value())
}

func TestScopeAssignUpdatesInnermost(t *testing.T) {
	s := NewScopeStack()
	s.DefineVariableWithValue("a", object.NewFloat(1))
	s.OpenNewScope()

	// No local definition: assignment reaches the outer scope.
	require.True(t, s.Assign("a", object.NewFloat(5)))
	require.Nil(t, s.CloseScope())

	value, _ := s.Lookup("a")
	require.Equal(t, 5.0, value.(*object.Float).Value())

	require.False(t, s.Assign("missing", object.NewFloat(0)))
}

func TestScopeCloseRootFails(t *testing.T) {
	s := NewScopeStack()
	err := s.CloseScope()
	require.NotNil(t, err)

	var evalErr *EvalError
	require.ErrorAs(t, err, &evalErr)
	require.Equal(t, CannotCloseRootScope, evalErr.Kind)
	require.Equal(t, 1, s.Depth())
}

func TestScopeSetValueByIndex(t *testing.T) {
	s := NewScopeStack()
	s.OpenNewScope()
	index := s.DefineVariableWithValue("p", object.NewFloat(0))
	require.Equal(t, 1, index)

	// Shadow the variable in a deeper scope, then update by index: the
	// original slot changes, not the shadow.
	s.OpenNewScope()
	s.DefineVariableWithValue("p", object.NewFloat(99))
	require.True(t, s.SetValueForVariable("p", object.NewFloat(7), index))

	value, _ := s.Lookup("p")
	require.Equal(t, 99.0, value.(*object.Float).Value())

	require.Nil(t, s.CloseScope())
	value, _ = s.Lookup("p")
	require.Equal(t, 7.0, value.(*object.Float).Value())

	require.False(t, s.SetValueForVariable("p", object.NewFloat(0), 10))
}
