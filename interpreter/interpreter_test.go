package interpreter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/mathi/executor"
	"go.creack.net/mathi/parser"
)

func mustRead(t *testing.T, it *Interpreter, line string) Result {
	t.Helper()
	res, err := it.Read(line)
	require.NoError(t, err, "read %q", line)
	return res
}

func mustLast(t *testing.T, it *Interpreter, line string) float64 {
	t.Helper()
	v, ok := mustRead(t, it, line).Last()
	require.True(t, ok, "read %q produced no value", line)
	return v
}

func TestReadArithmetic(t *testing.T) {
	it := New()
	assert.Equal(t, 14.0, mustLast(t, it, "2 + 3 * 4"))
	assert.Equal(t, 20.0, mustLast(t, it, "(2 + 3) * 4"))
	assert.Equal(t, 64.0, mustLast(t, it, "2 ^ 3 ^ 2"))
	assert.NotEqual(t, 512.0, mustLast(t, it, "2 ^ 3 ^ 2"))
	assert.Equal(t, 4.0, mustLast(t, it, "-2^2"))
	assert.Equal(t, -4.0, mustLast(t, it, "-(2^2)"))
}

func TestReadVariables(t *testing.T) {
	it := New()
	assert.Equal(t, 5.0, mustLast(t, it, "x = 5"))
	assert.Equal(t, 6.0, mustLast(t, it, "x + 1"))
	assert.Equal(t, map[string]float64{"x": 5}, it.Variables())
}

func TestReadUnboundVariable(t *testing.T) {
	it := New()
	res := mustRead(t, it, "y + 1")
	v, ok := res.Last()
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	require.Len(t, res.Warnings, 1)
	var rerr *executor.ReferenceError
	require.ErrorAs(t, res.Warnings[0], &rerr)
	assert.Equal(t, "y", rerr.Name)
	assert.Empty(t, it.Variables())
}

func TestReadParseErrorLeavesEnvironment(t *testing.T) {
	it := New()
	mustRead(t, it, "a = 1")

	res, err := it.Read("(1 + 2")
	var uerr *parser.UnclosedParenthesisError
	require.ErrorAs(t, err, &uerr)
	assert.Empty(t, res.Values)
	assert.Equal(t, map[string]float64{"a": 1}, it.Variables())

	// Nothing of a failing line is evaluated, even the statements before the
	// error.
	_, err = it.Read("a = 2; b = 3; 1 +")
	var perr parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, map[string]float64{"a": 1}, it.Variables())
}

func TestReadEmpty(t *testing.T) {
	it := New()
	for _, line := range []string{"", "   ", ";", ";;\n;"} {
		res := mustRead(t, it, line)
		assert.Empty(t, res.Values, "line %q", line)
		_, ok := res.Last()
		assert.False(t, ok, "line %q", line)
	}
}

func TestReadIdempotentAssignment(t *testing.T) {
	it := New()
	mustRead(t, it, "x = 2")
	mustRead(t, it, "x = 2")
	assert.Equal(t, 2.0, it.Variables()["x"])
}

func TestReadMultipleStatements(t *testing.T) {
	it := New()
	res := mustRead(t, it, "a = 1; b = a + 1; a + b")
	assert.Equal(t, []float64{1, 2, 3}, res.Values)
	assert.Equal(t, map[string]float64{"a": 1, "b": 2}, it.Variables())
}

func TestVariablesIsSnapshot(t *testing.T) {
	it := New()
	mustRead(t, it, "x = 1")
	vars := it.Variables()
	vars["x"] = 10
	vars["y"] = 20
	assert.Equal(t, map[string]float64{"x": 1}, it.Variables())
}

func TestOptions(t *testing.T) {
	it := New(WithVariables(map[string]float64{"pi": 3.5}), WithMaxDepth(3))
	assert.Equal(t, 7.0, mustLast(t, it, "pi * 2"))

	_, err := it.Read("(((1)))")
	var nerr *parser.NestingError
	require.ErrorAs(t, err, &nerr)
}

func TestSeparateInterpreters(t *testing.T) {
	a, b := New(), New()
	mustRead(t, a, "x = 1")
	res := mustRead(t, b, "x")
	assert.Len(t, res.Warnings, 1)
	assert.Empty(t, b.Variables())
}

func TestReadLongChain(t *testing.T) {
	it := New()
	assert.Equal(t, 501.0, mustLast(t, it, strings.Repeat("1+", 500)+"1"))

	res, err := it.Read("x = " + strings.Repeat("1+", 1_000_000) + "1")
	var nerr *parser.NestingError
	require.ErrorAs(t, err, &nerr)
	assert.Empty(t, res.Values)
	assert.Empty(t, it.Variables())
}
