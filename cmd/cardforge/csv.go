package main

import (
	"strings"

	"github.com/jamesmills/cardforge/internal/csvconv"
	"github.com/jamesmills/cardforge/internal/format"
)

// runCSV reformats delimited data as tab-separated import rows with
// per-field escaping and LaTeX conversion.
func runCSV(e *env, args []string) error {
	var common commonFlags
	fs := newFlagSet("csv", &common)
	delimiter := fs.StringP("delimiter", "d", ",", "input field delimiter")
	header := fs.Bool("header", false, "skip the first row as a header")
	noEscape := fs.Bool("no-escape", false, "disable HTML escaping")
	noLaTeX := fs.Bool("no-latex", false, "disable LaTeX conversion")
	noNewlines := fs.Bool("no-newlines", false, "disable newline to <br> conversion")
	if err := fs.Parse(args); err != nil {
		return err
	}

	delim, err := singleRune(*delimiter)
	if err != nil {
		return err
	}

	text, err := readInput(e, fs)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(e, common)
	if err != nil {
		return err
	}

	rows, err := csvconv.Convert(strings.NewReader(text), out, csvconv.Options{
		Delimiter:  delim,
		SkipHeader: *header,
		Format: format.Options{
			EscapeHTML:       !*noEscape,
			ConvertLaTeX:     !*noLaTeX,
			NewlinesToBreaks: !*noNewlines,
		},
	})
	if err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	if common.verbose {
		e.logger.Info("conversion complete", "rows", rows)
	}
	return nil
}
