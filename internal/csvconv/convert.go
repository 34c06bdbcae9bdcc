package csvconv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jamesmills/cardforge/internal/format"
	"github.com/jamesmills/cardforge/internal/textio"
)

// Options configures a CSV conversion.
type Options struct {
	// Delimiter separates input fields. Defaults to ','.
	Delimiter rune
	// SkipHeader drops the first input row.
	SkipHeader bool
	// Format selects the per-field text transformations.
	Format format.Options
}

// DefaultOptions reads comma-separated input with every formatting
// transformation enabled.
func DefaultOptions() Options {
	return Options{Delimiter: ',', Format: format.DefaultOptions()}
}

// Convert reads delimited rows from r, formats every field, and writes
// tab-separated rows to w. Returns the number of rows written.
func Convert(r io.Reader, w io.Writer, opts Options) (int, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = -1

	var rows [][]string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading csv: %w", err)
		}
		if first && opts.SkipHeader {
			first = false
			continue
		}
		first = false

		for i, field := range record {
			record[i] = format.Process(field, opts.Format)
		}
		rows = append(rows, record)
	}

	if err := textio.WriteRows(w, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
