// Package config loads the settings of the command-line calculator.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"go.creack.net/mathi/lexer"
)

const (
	DefaultPrompt   = "> "
	DefaultFormat   = "%v"
	DefaultMaxDepth = 1000
)

// Config holds the settings of the line loop. The zero value is usable,
// accessors fall back to the defaults.
type Config struct {
	Prompt    string             `yaml:"prompt"`
	Format    string             `yaml:"format"`
	MaxDepth  int                `yaml:"max_depth"`
	Echo      bool               `yaml:"echo"`
	Variables map[string]float64 `yaml:"variables"`
}

func Default() Config {
	return Config{
		Prompt:   DefaultPrompt,
		Format:   DefaultFormat,
		MaxDepth: DefaultMaxDepth,
	}
}

func (c Config) GetPrompt() string {
	if c.Prompt == "" {
		return DefaultPrompt
	}
	return c.Prompt
}

func (c Config) GetFormat() string {
	if c.Format == "" {
		return DefaultFormat
	}
	return c.Format
}

func (c Config) GetMaxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("config: ")
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(" ")
	}
	b.WriteString("is invalid:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads a YAML configuration file. Unknown keys are rejected. Values
// missing from the file keep their defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer func() { _ = file.Close() }() // Best effort.

	conf, err := Decode(file)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = absPath
			return Config{}, verr
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", absPath, err)
	}
	return conf, nil
}

// Decode reads a YAML configuration from r. An empty document yields the
// defaults.
func Decode(r io.Reader) (Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	conf := Default()
	if err := decoder.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func (c Config) Validate() error {
	var errs ValidationError
	if c.MaxDepth < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_depth must be positive, got %d", c.MaxDepth))
	}
	if c.Format != "" && !IsNumberFormat(c.Format) {
		errs.Issues = append(errs.Issues, fmt.Sprintf("format %q does not print exactly one number", c.Format))
	}
	for _, name := range sortedNames(c.Variables) {
		if !IsIdentifier(name) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("variables: %q is not a valid identifier", name))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// IsNumberFormat reports whether format consumes exactly one float64
// argument without a formatting error.
func IsNumberFormat(format string) bool {
	return !strings.Contains(fmt.Sprintf(format, 1.0), "%!")
}

// IsIdentifier reports whether name would be read back as a single
// identifier.
func IsIdentifier(name string) bool {
	tokens := lexer.Tokenize(name)
	return len(tokens) == 2 && tokens[0].Type == lexer.TokIdentifier && tokens[0].Value == name
}

// SaveVariables writes vars as a configuration file holding only the
// variables section, so it can be loaded back with Load.
func SaveVariables(w io.Writer, vars map[string]float64) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(variablesFile{Variables: vars}); err != nil {
		return fmt.Errorf("config: encode variables: %w", err)
	}
	return encoder.Close()
}

type variablesFile struct {
	Variables map[string]float64 `yaml:"variables"`
}

func sortedNames(vars map[string]float64) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
