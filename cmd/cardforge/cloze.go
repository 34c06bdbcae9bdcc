package main

import (
	"fmt"
	"strings"

	"github.com/jamesmills/cardforge/internal/cloze"
	"github.com/jamesmills/cardforge/internal/textio"
)

// runCloze generates {{cN::...}} cloze markup notes in one of several
// modes. By default notes are printed as plain blocks separated by a
// blank line; with --csv they are emitted as single-field rows under a
// "Text" header for the cloze note type importer.
func runCloze(e *env, args []string) error {
	var common commonFlags
	fs := newFlagSet("cloze", &common)
	mode := fs.StringP("mode", "m", "basic",
		"generation mode: basic, sentence, list, definition, incremental")
	keywords := fs.StringSliceP("keywords", "k", nil, "keywords to hide (basic mode)")
	chunkSize := fs.IntP("chunk-size", "c", 20, "words per chunk (incremental mode)")
	asCSV := fs.Bool("csv", false, "emit rows under a Text header")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text, err := readInput(e, fs)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrNoInput
	}

	var notes []string
	switch *mode {
	case "basic":
		if len(*keywords) == 0 {
			return fmt.Errorf("basic mode requires --keywords")
		}
		notes = cloze.MarkKeywords(text, *keywords)
	case "sentence":
		notes = cloze.MarkSentences(text)
	case "list":
		notes = cloze.MarkNumberedList(text)
	case "definition":
		notes = cloze.MarkDefinitions(text)
	case "incremental":
		notes = cloze.MarkIncremental(text, *chunkSize)
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}

	out, closeOut, err := openOutput(e, common)
	if err != nil {
		return err
	}
	defer closeOut()

	if *asCSV {
		if err := textio.WriteClozeNotes(out, notes); err != nil {
			return err
		}
	} else {
		for _, note := range notes {
			if _, err := fmt.Fprintf(out, "%s\n\n", note); err != nil {
				return fmt.Errorf("writing note: %w", err)
			}
		}
	}

	if common.verbose {
		e.logger.Info("generation complete", "notes", len(notes), "mode", *mode)
	}
	return nil
}
