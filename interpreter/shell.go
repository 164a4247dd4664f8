package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/kr/pretty"

	"go.creack.net/mathi/config"
)

// ErrLineFailed is returned by Shell.Run when at least one line failed.
var ErrLineFailed = errors.New("one or more lines failed")

// MaxLineSize is the longest line Shell.Run accepts.
const MaxLineSize = 64 << 20

// Shell runs an Interpreter over line oriented input and takes care of all
// the printing.
type Shell struct {
	Interp *Interpreter
	Config config.Config

	Stdout io.Writer
	Stderr io.Writer

	Interactive bool // Print a prompt before each line.
}

// NewShell creates a shell writing to stdout and stderr. Nil writers
// default to os.Stdout and os.Stderr.
func NewShell(interp *Interpreter, conf config.Config, stdout, stderr io.Writer) *Shell {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Shell{
		Interp: interp,
		Config: conf,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Run processes input until EOF or an exit command.
func (s *Shell) Run(input io.Reader) error {
	failed := false
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	for {
		if s.Interactive {
			fmt.Fprint(s.Stdout, s.Config.GetPrompt())
		}
		if !scanner.Scan() {
			break
		}
		ok, quit := s.Eval(scanner.Text())
		if !ok {
			failed = true
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if failed {
		return ErrLineFailed
	}
	return nil
}

// Eval handles one line: either a shell command or arithmetic.
func (s *Shell) Eval(line string) (ok, quit bool) {
	cmd := strings.Fields(line)
	if len(cmd) > 0 {
		switch cmd[0] {
		case "exit", "quit", "e":
			if len(cmd) == 1 {
				return true, true
			}
		case "show-vars", "sv":
			if len(cmd) == 1 {
				s.showVars()
				return true, false
			}
		case "save-vars":
			if len(cmd) != 2 {
				fmt.Fprintf(s.Stderr, "usage: save-vars <file>\n")
				return false, false
			}
			if err := s.saveVars(cmd[1]); err != nil {
				fmt.Fprintf(s.Stderr, "mathi: %s\n", err)
				return false, false
			}
			return true, false
		}
	}

	prog, err := s.Interp.Parse(line)
	if err != nil {
		fmt.Fprintf(s.Stderr, "ParseError: %s\n", err)
		return false, false
	}
	if s.Config.Echo {
		pretty.Fprintf(s.Stdout, "%# v\n", prog)
	}
	res, err := s.Interp.Exec(prog)
	for _, w := range res.Warnings {
		fmt.Fprintf(s.Stderr, "ReferenceError: %s\n", w)
	}
	for _, v := range res.Values {
		fmt.Fprintf(s.Stdout, s.Config.GetFormat()+"\n", v)
	}
	if err != nil {
		fmt.Fprintf(s.Stderr, "mathi: %s\n", err)
		return false, false
	}
	return true, false
}

func (s *Shell) showVars() {
	vars := s.Interp.Variables()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(s.Stdout, "%s = "+s.Config.GetFormat()+";\n", name, vars[name])
	}
}

func (s *Shell) saveVars(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := config.SaveVariables(f, s.Interp.Variables()); err != nil {
		_ = f.Close() // Best effort.
		return err
	}
	return f.Close()
}
