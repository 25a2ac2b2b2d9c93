package ast

import "fmt"

// Expression is the closed set of expression nodes. The marker method keeps
// the set sealed to this package so the evaluator's dispatch stays
// exhaustive.
type Expression interface {
	expressionNode()
	String() string
}

type NumberLiteral struct {
	Value int64
}

func (n *NumberLiteral) expressionNode() {}

func (n *NumberLiteral) String() string {
	return fmt.Sprintf("Number(%d)", n.Value)
}

type Identifier struct {
	Name string
}

func (i *Identifier) expressionNode() {}

func (i *Identifier) String() string {
	return fmt.Sprintf("Identifier(%s)", i.Name)
}

type BinaryExpression struct {
	Left  Expression
	Op    string
	Right Expression
}

func (b *BinaryExpression) expressionNode() {}

func (b *BinaryExpression) String() string {
	return fmt.Sprintf("BinOp(%s, %s, %s)", b.Left.String(), b.Op, b.Right.String())
}
