package executor

import "maps"

// Environment maps variable names to their current value. The last write
// wins, there is no scoping and no deletion.
//
// An Environment is not safe for concurrent use.
type Environment struct {
	vars map[string]float64
}

func NewEnvironment() *Environment {
	return &Environment{vars: map[string]float64{}}
}

func (e *Environment) Get(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, value float64) {
	e.vars[name] = value
}

func (e *Environment) Len() int { return len(e.vars) }

// Variables returns a copy of the current bindings.
func (e *Environment) Variables() map[string]float64 {
	return maps.Clone(e.vars)
}
