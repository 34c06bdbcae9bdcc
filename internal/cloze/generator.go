package cloze

import (
	"errors"
	"strings"

	"github.com/jamesmills/cardforge/internal/domain"
)

// DefaultDelimiter marks answer spans when no delimiter is configured.
const DefaultDelimiter = '%'

// Generator-specific validation errors
var (
	// ErrDelimiterEmpty is returned when the answer delimiter is the zero rune.
	ErrDelimiterEmpty = errors.New("answer delimiter cannot be empty")

	// ErrDelimiterWhitespace is returned when the answer delimiter is a
	// whitespace or newline character, which cannot bracket a span
	// unambiguously.
	ErrDelimiterWhitespace = errors.New("answer delimiter cannot be whitespace")
)

// Stats summarizes one generation run for diagnostic reporting.
type Stats struct {
	Lines int // input lines examined (blank lines included)
	Cards int // cards generated across all lines
}

// Generator drives the overlapping-cloze pipeline: Parse then Enumerate
// for each input line, with results concatenated in line order.
type Generator struct {
	delimiter rune
}

// NewGenerator creates a Generator using the given answer delimiter.
func NewGenerator(delimiter rune) (*Generator, error) {
	switch {
	case delimiter == 0:
		return nil, ErrDelimiterEmpty
	case delimiter == '\n' || delimiter == '\r' || delimiter == '\t' || delimiter == ' ':
		return nil, ErrDelimiterWhitespace
	}
	return &Generator{delimiter: delimiter}, nil
}

// Line generates all cards for a single input line. Leading and
// trailing whitespace is trimmed first; a blank line yields nil.
func (g *Generator) Line(line string) []domain.Card {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	return Enumerate(Parse(line, g.delimiter))
}

// Text generates cards for a whole input document, one record per line.
// Blank lines contribute no cards. Cards keep line order first, then
// the per-line enumeration order.
func (g *Generator) Text(text string) ([]domain.Card, Stats) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var cards []domain.Card
	for _, line := range lines {
		cards = append(cards, g.Line(line)...)
	}

	return cards, Stats{Lines: len(lines), Cards: len(cards)}
}
