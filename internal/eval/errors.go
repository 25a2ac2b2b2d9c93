package eval

import "fmt"

// UndefinedVariableError reports a read of a name that was never assigned.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable %s not defined", e.Name)
}

// UnsupportedNodeError reports a node outside the closed AST variant set.
// Unreachable through the parser, but dispatch fails loudly rather than
// silently ignoring an unknown node.
type UnsupportedNodeError struct {
	Node string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported node type: %s", e.Node)
}
