package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	tests := []struct {
		node     Node
		expected string
	}{
		{node: NumberLiteral{Value: 2.5}, expected: "2.5"},
		{node: NumberLiteral{Value: math.Inf(1)}, expected: "+Inf"},
		{node: VariableRef{Name: "x"}, expected: "x"},
		{node: UnaryOp{Operator: Negate, Operand: VariableRef{Name: "x"}}, expected: "(-x)"},
		{node: UnaryOp{Operator: Identity, Operand: NumberLiteral{Value: 1}}, expected: "(+1)"},
		{
			node: BinaryOp{
				Operator: Add,
				Left:     NumberLiteral{Value: 2},
				Right:    BinaryOp{Operator: Mul, Left: NumberLiteral{Value: 3}, Right: NumberLiteral{Value: 4}},
			},
			expected: "(2 + (3 * 4))",
		},
		{
			node:     Assignment{Target: "a", Value: Assignment{Target: "b", Value: NumberLiteral{Value: 3}}},
			expected: "(a = (b = 3))",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.node.Dump())
	}
}

func TestProgramDump(t *testing.T) {
	prog := Program{Statements: []Node{
		Assignment{Target: "x", Value: NumberLiteral{Value: 1}},
		BinaryOp{Operator: Pow, Left: VariableRef{Name: "x"}, Right: NumberLiteral{Value: 2}},
	}}
	assert.Equal(t, "(x = 1)\n(x ^ 2)\n", prog.Dump())
	assert.Equal(t, "", Program{}.Dump())
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "-", Sub.String())
	assert.Equal(t, "/", Div.String())
	assert.Equal(t, "?", BinaryOperator(0).String())
	assert.Equal(t, "?", UnaryOperator(0).String())
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth(nil))
	assert.Equal(t, 1, Depth(NumberLiteral{Value: 1}))
	assert.Equal(t, 3, Depth(BinaryOp{
		Operator: Sub,
		Left:     NumberLiteral{Value: 1},
		Right:    UnaryOp{Operator: Negate, Operand: VariableRef{Name: "y"}},
	}))
}
