// Package executor evaluates parsed programs against an Environment.
package executor

import (
	"fmt"
	"math"

	"go.creack.net/mathi/ast"
)

// ReferenceError reports a read of an unbound variable. It is not fatal:
// the read evaluates to 0 and evaluation goes on.
type ReferenceError struct {
	Name string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("variable %q not found, the value 0 was used instead", e.Name)
}

// Executor walks AST nodes. Variable reads and assignments go through Env.
type Executor struct {
	Env *Environment

	// Notify receives every non-fatal condition raised during evaluation,
	// such as *ReferenceError. It may be nil.
	Notify func(error)
}

func New(env *Environment, notify func(error)) *Executor {
	if env == nil {
		env = NewEnvironment()
	}
	return &Executor{Env: env, Notify: notify}
}

// Run evaluates the statements in order and returns their values.
// Bindings made by a statement are visible to the following ones. If a
// statement fails, the values of the previous ones are returned along with
// the error and their bindings are kept.
func (x *Executor) Run(prog ast.Program) ([]float64, error) {
	values := make([]float64, 0, len(prog.Statements))
	for i, stmt := range prog.Statements {
		v, err := x.Evaluate(stmt)
		if err != nil {
			return values, fmt.Errorf("statement %d: %w", i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Evaluate reduces node to a value. The left operand of a binary operation is
// fully evaluated before the right one. An error is only returned for
// malformed trees, which the parser never produces.
func (x *Executor) Evaluate(node ast.Node) (float64, error) {
	switch n := node.(type) {
	case ast.NumberLiteral:
		return n.Value, nil
	case ast.VariableRef:
		return x.lookup(n.Name), nil
	case ast.UnaryOp:
		return x.evaluateUnary(n)
	case ast.BinaryOp:
		return x.evaluateBinary(n)
	case ast.Assignment:
		v, err := x.Evaluate(n.Value)
		if err != nil {
			return 0, err
		}
		x.Env.Set(n.Target, v)
		return v, nil
	default:
		return 0, fmt.Errorf("unsupported node type %T", n)
	}
}

func (x *Executor) lookup(name string) float64 {
	if v, ok := x.Env.Get(name); ok {
		return v
	}
	if x.Notify != nil {
		x.Notify(&ReferenceError{Name: name})
	}
	return 0
}

func (x *Executor) evaluateUnary(n ast.UnaryOp) (float64, error) {
	v, err := x.Evaluate(n.Operand)
	if err != nil {
		return 0, err
	}
	switch n.Operator {
	case ast.Negate:
		return -v, nil
	case ast.Identity:
		return v, nil
	default:
		return 0, fmt.Errorf("unsupported unary operator %d", n.Operator)
	}
}

func (x *Executor) evaluateBinary(n ast.BinaryOp) (float64, error) {
	left, err := x.Evaluate(n.Left)
	if err != nil {
		return 0, err
	}
	right, err := x.Evaluate(n.Right)
	if err != nil {
		return 0, err
	}
	// Division by zero and friends follow IEEE 754, they are not errors.
	switch n.Operator {
	case ast.Add:
		return left + right, nil
	case ast.Sub:
		return left - right, nil
	case ast.Mul:
		return left * right, nil
	case ast.Div:
		return left / right, nil
	case ast.Pow:
		return math.Pow(left, right), nil
	default:
		return 0, fmt.Errorf("unsupported binary operator %d", n.Operator)
	}
}
