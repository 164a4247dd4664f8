package ast

import (
	"fmt"
	"strconv"
)

// Grammar, lowest to highest precedence:
//
//	program    : (statement terminator)*
//	statement  : addExpr | assignExpr
//	assignExpr : IDENT '=' statement
//	addExpr    : mulExpr (('+'|'-') mulExpr)*
//	mulExpr    : powExpr (('*'|'/') powExpr)*
//	powExpr    : term ('^' term)*
//	term       : NUMBER | IDENT | ('+'|'-') term | '(' statement ')'

// Program represents the top-level program, one node per statement.
type Program struct {
	Statements []Node
}

func (p Program) Dump() string {
	result := ""
	for _, stmt := range p.Statements {
		result += fmt.Sprintf("%s\n", stmt.Dump())
	}
	return result
}

// Node is any expression node. Each node owns its children.
type Node interface {
	Dump() string
	node()
}

// NumberLiteral is a number from the source, already converted.
type NumberLiteral struct {
	Value float64
}

func (NumberLiteral) node() {}

func (n NumberLiteral) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// VariableRef reads a variable from the environment.
type VariableRef struct {
	Name string
}

func (VariableRef) node() {}

func (v VariableRef) Dump() string { return v.Name }

type UnaryOp struct {
	Operator UnaryOperator
	Operand  Node
}

func (UnaryOp) node() {}

func (u UnaryOp) Dump() string {
	return fmt.Sprintf("(%s%s)", u.Operator, u.Operand.Dump())
}

// BinaryOp is a left-associative arithmetic operation.
type BinaryOp struct {
	Operator BinaryOperator
	Left     Node
	Right    Node
}

func (BinaryOp) node() {}

func (b BinaryOp) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Operator, b.Right.Dump())
}

// Assignment binds Target to the value of Value and evaluates to it.
// Target always comes from an identifier token.
type Assignment struct {
	Target string
	Value  Node
}

func (Assignment) node() {}

func (a Assignment) Dump() string {
	return fmt.Sprintf("(%s = %s)", a.Target, a.Value.Dump())
}

// Depth returns the height of the tree rooted at n.
func Depth(n Node) int {
	switch n := n.(type) {
	case UnaryOp:
		return 1 + Depth(n.Operand)
	case BinaryOp:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case Assignment:
		return 1 + Depth(n.Value)
	case nil:
		return 0
	default:
		return 1
	}
}
