// Package interpreter ties the lexer, parser and executor together and owns
// the variable environment between lines.
package interpreter

import (
	"go.creack.net/mathi/ast"
	"go.creack.net/mathi/executor"
	"go.creack.net/mathi/parser"
)

// Interpreter evaluates lines of arithmetic. Bindings persist across calls
// to Read for the lifetime of the Interpreter.
//
// An Interpreter is not safe for concurrent use; callers sharing one must
// serialize calls to Read.
type Interpreter struct {
	env      *executor.Environment
	maxDepth int
}

type Option func(*Interpreter)

// WithMaxDepth sets the nesting limit of parsed expressions.
func WithMaxDepth(n int) Option {
	return func(i *Interpreter) { i.maxDepth = n }
}

// WithVariables preloads bindings into the environment.
func WithVariables(vars map[string]float64) Option {
	return func(i *Interpreter) {
		for name, v := range vars {
			i.env.Set(name, v)
		}
	}
}

// New returns an interpreter with an empty environment.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		env:      executor.NewEnvironment(),
		maxDepth: parser.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Result is the outcome of one line.
type Result struct {
	Values   []float64 // One per statement, in order.
	Warnings []error   // Non-fatal conditions, such as *executor.ReferenceError.
}

// Last returns the value of the final statement. ok is false for a line
// without statements.
func (r Result) Last() (value float64, ok bool) {
	if len(r.Values) == 0 {
		return 0, false
	}
	return r.Values[len(r.Values)-1], true
}

// Read tokenizes, parses and evaluates one line. A parse error is returned
// as a parser.Error and leaves the environment untouched, as nothing of the
// line is evaluated.
func (i *Interpreter) Read(line string) (Result, error) {
	prog, err := i.Parse(line)
	if err != nil {
		return Result{}, err
	}
	return i.Exec(prog)
}

// Parse parses line without evaluating it.
func (i *Interpreter) Parse(line string) (ast.Program, error) {
	return parser.ParseString(line, parser.WithMaxDepth(i.maxDepth))
}

// Exec evaluates an already parsed program against the environment.
// Bindings made before a failing statement are kept.
func (i *Interpreter) Exec(prog ast.Program) (Result, error) {
	var res Result
	x := executor.New(i.env, func(err error) {
		res.Warnings = append(res.Warnings, err)
	})
	values, err := x.Run(prog)
	res.Values = values
	return res, err
}

// Variables returns a snapshot of the current bindings. Iteration order is
// unspecified.
func (i *Interpreter) Variables() map[string]float64 {
	return i.env.Variables()
}
