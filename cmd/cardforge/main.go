// Package main implements the cardforge command line tool, a suite of
// converters that turn plain text, markdown, CSV, and structured facts
// into flashcard decks for import into a spaced-repetition study
// application.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jamesmills/cardforge/internal/config"
	"github.com/jamesmills/cardforge/internal/platform/logger"
)

// env carries the process-level dependencies into each subcommand so
// the whole CLI can run against in-memory streams in tests.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// command is one subcommand: name, one-line help, and entry point.
type command struct {
	name    string
	summary string
	run     func(*env, []string) error
}

func commands() []command {
	return []command{
		{"overlap", "generate overlapping cloze cards from delimiter-marked text", runOverlap},
		{"cloze", "generate {{cN::...}} cloze markup notes", runCloze},
		{"markdown", "extract cards from markdown notes", runMarkdown},
		{"facts", "convert structured fact records to cards", runFacts},
		{"csv", "reformat delimited data as import-ready rows", runCSV},
		{"batch", "run a converter over many files or directories", runBatch},
		{"preview", "serve a generated deck as a local HTML page", runPreview},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	log := logger.Setup(cfg.Logging.Level, stderr)
	e := &env{cfg: cfg, logger: log, stdin: stdin, stdout: stdout, stderr: stderr}

	for _, cmd := range commands() {
		if cmd.name != args[0] {
			continue
		}
		if err := cmd.run(e, args[1:]); err != nil {
			log.Error("command failed", "command", cmd.name, "error", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stderr, "error: unknown command %q\n\n", args[0])
	usage(stderr)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: cardforge <command> [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, cmd := range commands() {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input is read from the positional file argument, or stdin when omitted.")
	fmt.Fprintln(w, "Card rows go to stdout (or -o); diagnostics go to stderr.")
}
