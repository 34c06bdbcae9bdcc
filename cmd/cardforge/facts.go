package main

import (
	"fmt"
	"strings"

	"github.com/jamesmills/cardforge/internal/facts"
	"github.com/jamesmills/cardforge/internal/textio"
)

// runFacts converts blank-line-separated fact records into cards of the
// requested types.
func runFacts(e *env, args []string) error {
	var common commonFlags
	fs := newFlagSet("facts", &common)
	typeNames := fs.StringSliceP("types", "t", []string{"basic"},
		"card types to generate: basic, list, example, formula, comparison")
	if err := fs.Parse(args); err != nil {
		return err
	}

	types, err := parseCardTypes(*typeNames)
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

	cards := facts.Convert(text, types)

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
		e.logger.Info("generation complete", "cards", len(cards), "types", *typeNames)
	}
	return nil
}

func parseCardTypes(names []string) ([]facts.CardType, error) {
	types := make([]facts.CardType, 0, len(names))
	for _, name := range names {
		match := false
		for _, known := range facts.CardTypes {
			if facts.CardType(name) == known {
				match = true
				break
			}
		}
		if !match {
			return nil, fmt.Errorf("unknown card type %q", name)
		}
		types = append(types, facts.CardType(name))
	}
	return types, nil
}
