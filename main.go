package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.creack.net/mathi/config"
	"go.creack.net/mathi/interpreter"
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage:\n")
	fmt.Fprintf(out, "  %s [flags] <expression>...\n", os.Args[0])
	fmt.Fprintf(out, "  %s [flags] -loop\n\n", os.Args[0])
	fmt.Fprintf(out, "Expressions use + - * / ^, parentheses and assignments (x = 1),\n")
	fmt.Fprintf(out, "separated by ';'. In the loop, 'sv' shows variables, 'save-vars <file>'\n")
	fmt.Fprintf(out, "writes them as YAML and 'exit' quits.\n\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	var (
		confPath string
		loop     bool
		echo     bool
		format   string
		maxDepth int
	)
	flag.StringVar(&confPath, "config", "", "YAML configuration file")
	flag.BoolVar(&loop, "loop", false, "read lines from stdin until exit")
	flag.BoolVar(&echo, "echo", false, "print parse trees before evaluating")
	flag.StringVar(&format, "format", config.DefaultFormat, "result formatting verb")
	flag.IntVar(&maxDepth, "max-depth", config.DefaultMaxDepth, "maximum expression nesting")
	flag.Usage = usage
	flag.Parse()

	conf := config.Default()
	if confPath != "" {
		c, err := config.Load(confPath)
		if err != nil {
			log.Fatalf("Fail: %s.", err)
		}
		conf = c
	}
	// Flags set explicitly override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "echo":
			conf.Echo = echo
		case "format":
			conf.Format = format
		case "max-depth":
			conf.MaxDepth = maxDepth
		}
	})
	if err := conf.Validate(); err != nil {
		log.Fatalf("Fail: %s.", err)
	}

	interp := interpreter.New(
		interpreter.WithMaxDepth(conf.GetMaxDepth()),
		interpreter.WithVariables(conf.Variables),
	)
	sh := interpreter.NewShell(interp, conf, os.Stdout, os.Stderr)

	switch {
	case loop:
		sh.Interactive = true
		if err := sh.Run(os.Stdin); err != nil && !errors.Is(err, interpreter.ErrLineFailed) {
			log.Fatalf("Fail: %s.", err)
		}
	case flag.NArg() == 0:
		flag.Usage()
		os.Exit(2)
	default:
		if err := sh.Run(strings.NewReader(strings.Join(flag.Args(), "\n"))); err != nil {
			if !errors.Is(err, interpreter.ErrLineFailed) {
				log.Fatalf("Fail: %s.", err)
			}
			os.Exit(1)
		}
	}
}
