package main

import (
	"fmt"

	"github.com/jamesmills/cardforge/internal/batch"
	"github.com/jamesmills/cardforge/internal/cloze"
	"github.com/jamesmills/cardforge/internal/domain"
	"github.com/jamesmills/cardforge/internal/facts"
	"github.com/jamesmills/cardforge/internal/markdown"
)

// runBatch converts many files in one run: positional arguments are
// files or directories, directories are expanded against --pattern.
func runBatch(e *env, args []string) error {
	var common commonFlags
	fs := newFlagSet("batch", &common)
	converter := fs.StringP("type", "t", "markdown",
		"converter to apply: markdown, fact, overlap")
	outputDir := fs.String("output-dir", ".", "directory for generated decks")
	pattern := fs.String("pattern", "*", "filename pattern for directory inputs")
	recursive := fs.Bool("recursive", false, "descend into subdirectories")
	merge := fs.Bool("merge", false, "merge all cards into a single output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("batch requires at least one file or directory argument")
	}

	delimiter, err := singleRune(e.cfg.Cloze.Delimiter)
	if err != nil {
		return err
	}
	gen, err := cloze.NewGenerator(delimiter)
	if err != nil {
		return err
	}

	p := batch.NewProcessor(*outputDir, *merge, e.logger)
	p.Register("markdown", func(text string) ([]domain.Card, error) {
		return markdown.Convert(text), nil
	})
	p.Register("fact", func(text string) ([]domain.Card, error) {
		return facts.Convert(text, []facts.CardType{facts.Basic}), nil
	})
	p.Register("overlap", func(text string) ([]domain.Card, error) {
		cards, _ := gen.Text(text)
		return cards, nil
	})

	files, err := batch.Expand(fs.Args(), *pattern, *recursive)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files matched pattern %q", *pattern)
	}

	report, err := p.Run(files, *converter)
	if err != nil {
		return err
	}

	failed := len(report.Results) - report.Succeeded()
	if common.verbose {
		e.logger.Info("batch complete",
			"run_id", report.RunID.String(),
			"files", len(report.Results),
			"failed", failed,
			"cards", report.TotalCards())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(report.Results))
	}
	return nil
}
