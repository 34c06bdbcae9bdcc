package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jamesmills/cardforge/internal/cloze"
	"github.com/jamesmills/cardforge/internal/textio"
)

// runOverlap is the overlapping cloze generator: every line of input
// with delimiter-marked answers becomes 2^k - 1 cards, one per
// combination of hidden answers.
func runOverlap(e *env, args []string) error {
	var common commonFlags
	fs := newFlagSet("overlap", &common)
	delimFlag := fs.String("answer-delimiter", e.cfg.Cloze.Delimiter,
		"delimiter character marking answers in input text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	delimiter, err := singleRune(*delimFlag)
	if err != nil {
		return err
	}
	gen, err := cloze.NewGenerator(delimiter)
	if err != nil {
		return err
	}

	text, err := readInput(e, fs)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return ErrNoInput
	}

	cards, stats := gen.Text(text)

	out, closeOut, err := openOutput(e, common)
	if err != nil {
		return err
	}
	if err := textio.WriteCards(out, cards); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	if common.verbose {
		e.logger.Info("generation complete", "cards", stats.Cards, "lines", stats.Lines)
	}
	return nil
}

// singleRune validates that s is exactly one character.
func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("answer delimiter must be a single character, got %q", s)
	}
	return r, nil
}
