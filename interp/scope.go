package interp

import (
	"github.com/gyre-lang/gyre/object"
)

// ScopeStack is a stack of variable scopes. The bottom scope is the root
// scope and can never be closed. Name lookup walks from the innermost scope
// outwards, so inner definitions shadow outer ones.
type ScopeStack struct {
	scopes []map[string]object.Object
}

// NewScopeStack creates a stack containing only the root scope.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{
		scopes: []map[string]object.Object{{}},
	}
}

// Depth returns the number of open scopes, including the root scope.
func (s *ScopeStack) Depth() int {
	return len(s.scopes)
}

// OpenNewScope pushes a fresh scope onto the stack.
func (s *ScopeStack) OpenNewScope() {
	s.scopes = append(s.scopes, map[string]object.Object{})
}

// CloseScope pops the innermost scope, discarding its variables. Closing the
// root scope is an error.
func (s *ScopeStack) CloseScope() error {
	if len(s.scopes) == 1 {
		return newEvalError(CannotCloseRootScope, "",
			"cannot close scope as that would mean closing the root scope")
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
	return nil
}

// DefineVariableWithValue creates the variable in the innermost scope and
// returns the index of that scope, for later use with SetValueForVariable.
func (s *ScopeStack) DefineVariableWithValue(name string, value object.Object) int {
	index := len(s.scopes) - 1
	s.scopes[index][name] = value
	return index
}

// DefinedInCurrentScope reports whether the innermost scope already holds a
// variable with the given name.
func (s *ScopeStack) DefinedInCurrentScope(name string) bool {
	_, found := s.scopes[len(s.scopes)-1][name]
	return found
}

// SetValueForVariable updates the variable in the scope with the given
// index, without searching. This keeps rebinding cheap for variables that
// are updated once per sample or iteration.
func (s *ScopeStack) SetValueForVariable(name string, value object.Object, scopeIndex int) bool {
	if scopeIndex < 0 || scopeIndex >= len(s.scopes) {
		return false
	}
	s.scopes[scopeIndex][name] = value
	return true
}

// Assign updates the innermost definition of the variable. It returns false
// if the variable is not defined in any open scope.
func (s *ScopeStack) Assign(name string, value object.Object) bool {
	for index := len(s.scopes) - 1; index >= 0; index-- {
		if _, found := s.scopes[index][name]; found {
			s.scopes[index][name] = value
			return true
		}
	}
	return false
}

// Lookup returns the value of the innermost definition of the variable.
func (s *ScopeStack) Lookup(name string) (object.Object, bool) {
	for index := len(s.scopes) - 1; index >= 0; index-- {
		if value, found := s.scopes[index][name]; found {
			return value, true
		}
	}
	return nil, false
}
