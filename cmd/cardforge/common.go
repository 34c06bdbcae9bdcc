package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jamesmills/cardforge/internal/textio"
	"github.com/spf13/pflag"
)

// ErrNoInput is returned when a command receives an empty input
// document. Calling scripts rely on the non-zero exit to detect that
// nothing was generated.
var ErrNoInput = errors.New("no input provided")

// commonFlags are the options every converter command shares.
type commonFlags struct {
	output  string
	verbose bool
}

func newFlagSet(name string, common *commonFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVarP(&common.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVarP(&common.verbose, "verbose", "v", false, "report generation counts on stderr")
	return fs
}

// readInput reads the whole input document from the first positional
// argument, or from the environment's stdin when no path was given.
func readInput(e *env, fs *pflag.FlagSet) (string, error) {
	if fs.NArg() > 0 {
		return textio.ReadInput(fs.Arg(0))
	}
	data, err := io.ReadAll(e.stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// openOutput resolves the output destination for a command: the -o path
// when set, otherwise the environment's stdout.
func openOutput(e *env, common commonFlags) (io.Writer, func() error, error) {
	if common.output == "" {
		return e.stdout, func() error { return nil }, nil
	}
	w, err := textio.OpenOutput(common.output)
	if err != nil {
		return nil, nil, err
	}
	return w, w.Close, nil
}
