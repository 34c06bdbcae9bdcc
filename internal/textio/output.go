package textio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jamesmills/cardforge/internal/domain"
)

// OpenOutput opens the output destination. An empty path means stdout;
// otherwise the file is created, along with any missing parent
// directories. The returned closer is a no-op for stdout.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// WriteCards serializes cards one per line as front, a single tab, and
// back. No header row and no quoting: embedded tabs or newlines in the
// source text pass through raw, which keeps output byte-identical with
// the historical card format. Callers that need safe embedding use
// WriteRows instead.
func WriteCards(w io.Writer, cards []domain.Card) error {
	for _, card := range cards {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", card.Front, card.Back); err != nil {
			return fmt.Errorf("writing card row: %w", err)
		}
	}
	return nil
}

// WriteRows serializes arbitrary rows as tab-separated CSV with minimal
// quoting, for converters that transform delimited data.
func WriteRows(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteClozeNotes serializes {{cN::...}} cloze notes as single-field
// rows under a "Text" header, the layout the study application expects
// when importing into its cloze note type.
func WriteClozeNotes(w io.Writer, notes []string) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write([]string{"Text"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, note := range notes {
		if err := cw.Write([]string{note}); err != nil {
			return fmt.Errorf("writing note row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
