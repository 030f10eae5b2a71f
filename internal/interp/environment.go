package interp

import (
	"fmt"
	"sort"

	"github.com/kolkov/ulox/internal/types"
)

// UndefinedError reports a read or assignment of a name that no frame in
// the chain defines.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment is one frame of variable bindings linked to its enclosing
// frame. Entering a block links a new frame to the current chain in
// constant time; leaving it simply drops the frame.
type Environment struct {
	vars   map[string]types.Value
	parent *Environment
}

// NewEnvironment creates a frame whose enclosing chain is parent.
// A nil parent makes a global frame.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]types.Value),
		parent: parent,
	}
}

// WithParent returns a new innermost frame enclosed by e.
func (e *Environment) WithParent() *Environment {
	return NewEnvironment(e)
}

// Parent returns the enclosing frame, or nil for the global frame.
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Depth returns the number of frames in the chain, 1 for the global frame.
func (e *Environment) Depth() int {
	n := 0
	for f := e; f != nil; f = f.parent {
		n++
	}
	return n
}

// Define binds name in this frame, replacing any existing binding here.
// Bindings of the same name in enclosing frames are shadowed.
func (e *Environment) Define(name string, v types.Value) {
	e.vars[name] = v
}

// Get looks name up from the innermost frame outward.
func (e *Environment) Get(name string) (types.Value, error) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, nil
		}
	}
	return types.Nil(), &UndefinedError{Name: name}
}

// Assign overwrites the binding of name in the nearest frame that defines
// it. It never creates a binding.
func (e *Environment) Assign(name string, v types.Value) error {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.vars[name]; ok {
			f.vars[name] = v
			return nil
		}
	}
	return &UndefinedError{Name: name}
}

// Names returns the names bound in this frame, sorted.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
