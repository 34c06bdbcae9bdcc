package main

import (
	"github.com/jamesmills/cardforge/internal/markdown"
	"github.com/jamesmills/cardforge/internal/textio"
)

// runMarkdown extracts cards from a markdown document. Output is
// suppressed entirely when fewer than --min-cards cards were found, so
// batch runs over mixed directories skip card-poor files.
func runMarkdown(e *env, args []string) error {
	var common commonFlags
	fs := newFlagSet("markdown", &common)
	minCards := fs.Int("min-cards", 1, "minimum cards required to produce output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text, err := readInput(e, fs)
	if err != nil {
		return err
	}

	cards := markdown.Convert(text)
	if len(cards) < *minCards {
		if common.verbose {
			e.logger.Warn("below minimum card count, no output written",
				"cards", len(cards), "min_cards", *minCards)
		}
		return nil
	}

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
		e.logger.Info("generation complete", "cards", len(cards))
	}
	return nil
}
