package eval

import (
	"fmt"

	"Calcline/internal/ast"
)

// Evaluator walks AST nodes depth-first and owns the variable environment
// they mutate. One Evaluator serves one evaluation stream; concurrent use
// requires one Evaluator per stream.
type Evaluator struct {
	env *Environment
}

func NewEvaluator() *Evaluator {
	return &Evaluator{env: NewEnvironment()}
}

func (e *Evaluator) Env() *Environment {
	return e.env
}

// EvaluateStatement evaluates one top-level statement and returns its value.
// An assignment stores its result into the environment before returning it.
func (e *Evaluator) EvaluateStatement(stmt ast.Statement) (Value, error) {
	switch stmt := stmt.(type) {
	case *ast.AssignStatement:
		value, err := e.Evaluate(stmt.Value)
		if err != nil {
			return Value{}, err
		}
		e.env.Set(stmt.Target.Name, value)
		return value, nil
	default:
		return Value{}, &UnsupportedNodeError{Node: fmt.Sprintf("%T", stmt)}
	}
}

// Evaluate computes the value of an expression node. The left operand of a
// binary expression is evaluated before the right.
func (e *Evaluator) Evaluate(expr ast.Expression) (Value, error) {
	switch expr := expr.(type) {
	case *ast.NumberLiteral:
		return IntValue(expr.Value), nil
	case *ast.Identifier:
		value, ok := e.env.Get(expr.Name)
		if !ok {
			return Value{}, &UndefinedVariableError{Name: expr.Name}
		}
		return value, nil
	case *ast.BinaryExpression:
		left, err := e.Evaluate(expr.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := e.Evaluate(expr.Right)
		if err != nil {
			return Value{}, err
		}

		switch expr.Op {
		case "+":
			return add(left, right), nil
		case "-":
			return sub(left, right), nil
		case "*":
			return mul(left, right), nil
		case "/":
			return div(left, right)
		default:
			return Value{}, fmt.Errorf("unsupported binary operator: %s", expr.Op)
		}
	default:
		return Value{}, &UnsupportedNodeError{Node: fmt.Sprintf("%T", expr)}
	}
}
