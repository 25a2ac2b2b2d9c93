package eval

import "sort"

// Environment maps variable names to their last-assigned values. One
// Environment belongs to exactly one Evaluator; there is no global state.
// Reading a name that was never assigned is an error, never a default.
type Environment struct {
	values map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{values: map[string]Value{}}
}

func (env *Environment) Get(name string) (Value, bool) {
	v, ok := env.values[name]
	return v, ok
}

func (env *Environment) Set(name string, value Value) {
	env.values[name] = value
}

// Names returns the defined variable names in sorted order, for stable
// environment dumps.
func (env *Environment) Names() []string {
	names := make([]string, 0, len(env.values))
	for name := range env.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot copies the current bindings so callers can render or serialize
// them without holding a reference to the live mapping.
func (env *Environment) Snapshot() map[string]Value {
	snapshot := make(map[string]Value, len(env.values))
	for name, value := range env.values {
		snapshot[name] = value
	}
	return snapshot
}
