package ast

import "fmt"

// Statement is the closed set of statement nodes. The grammar has exactly
// one statement form, but the sealed interface keeps evaluator dispatch
// exhaustive if more are added.
type Statement interface {
	statementNode()
	String() string
}

// AssignStatement binds the value of an expression to a variable name. It is
// the only top-level construct in the language.
type AssignStatement struct {
	Target *Identifier
	Value  Expression
}

func (a *AssignStatement) statementNode() {}

func (a *AssignStatement) String() string {
	return fmt.Sprintf("Assign(%s, %s)", a.Target.String(), a.Value.String())
}
