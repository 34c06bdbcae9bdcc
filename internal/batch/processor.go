package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jamesmills/cardforge/internal/domain"
	"github.com/jamesmills/cardforge/internal/textio"
)

// ErrUnknownConverter is returned when a batch run names a converter
// that was never registered.
var ErrUnknownConverter = errors.New("unknown converter")

// Converter turns one input document into cards.
type Converter func(text string) ([]domain.Card, error)

// Result records the outcome of converting one input file.
type Result struct {
	Input     string
	Converter string
	Output    string
	Cards     int
	Err       error
}

// Report summarizes a whole batch run.
type Report struct {
	RunID   uuid.UUID
	Results []Result
}

// Succeeded counts the results without an error.
func (r Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// TotalCards sums the cards generated across all successful results.
func (r Report) TotalCards() int {
	n := 0
	for _, res := range r.Results {
		n += res.Cards
	}
	return n
}

// Processor dispatches input files to registered converters and writes
// the resulting decks under OutputDir.
type Processor struct {
	outputDir  string
	merge      bool
	logger     *slog.Logger
	converters map[string]Converter
}

// NewProcessor creates a Processor writing into outputDir. With merge
// set, all cards from one run land in a single output file instead of
// one file per input.
func NewProcessor(outputDir string, merge bool, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		outputDir:  outputDir,
		merge:      merge,
		logger:     logger,
		converters: make(map[string]Converter),
	}
}

// Register makes a converter available under name.
func (p *Processor) Register(name string, c Converter) {
	p.converters[name] = c
}

// Converters returns the registered converter names, sorted.
func (p *Processor) Converters() []string {
	names := make([]string, 0, len(p.converters))
	for name := range p.converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run converts every path with the named converter. Directory paths are
// expanded with Expand's defaults (non-recursive, all files). Merge
// mode concatenates all cards into merged_<converter>_cards.tsv.
func (p *Processor) Run(paths []string, converter string) (Report, error) {
	convert, ok := p.converters[converter]
	if !ok {
		return Report{}, fmt.Errorf("%w: %s", ErrUnknownConverter, converter)
	}

	report := Report{RunID: uuid.New()}
	logger := p.logger.With("run_id", report.RunID.String(), "converter", converter)
	logger.Info("batch run starting", "inputs", len(paths))

	var merged []domain.Card
	for _, path := range paths {
		result := Result{Input: path, Converter: converter}

		text, err := textio.ReadInput(path)
		if err != nil {
			result.Err = err
			logger.Error("input unreadable", "path", path, "error", err)
			report.Results = append(report.Results, result)
			continue
		}

		cards, err := convert(text)
		if err != nil {
			result.Err = fmt.Errorf("converting %s: %w", path, err)
			logger.Error("conversion failed", "path", path, "error", err)
			report.Results = append(report.Results, result)
			continue
		}
		result.Cards = len(cards)

		if p.merge {
			merged = append(merged, cards...)
		} else {
			result.Output = p.outputPath(path, converter)
			if err := writeDeck(result.Output, cards); err != nil {
				result.Err = err
				logger.Error("write failed", "path", result.Output, "error", err)
			}
		}

		logger.Debug("file processed", "path", path, "cards", result.Cards)
		report.Results = append(report.Results, result)
	}

	if p.merge {
		output := filepath.Join(p.outputDir, "merged_"+converter+"_cards.tsv")
		if err := writeDeck(output, merged); err != nil {
			return report, err
		}
		for i := range report.Results {
			if report.Results[i].Err == nil {
				report.Results[i].Output = output
			}
		}
	}

	logger.Info("batch run finished",
		"succeeded", report.Succeeded(),
		"failed", len(report.Results)-report.Succeeded(),
		"cards", report.TotalCards())
	return report, nil
}

// Expand resolves a path list into concrete input files: directories
// are walked (optionally recursively) for entries matching pattern,
// plain files pass through. The result is sorted for deterministic run
// order.
func Expand(paths []string, pattern string, recursive bool) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if !recursive && entry != path {
					return fs.SkipDir
				}
				return nil
			}
			matched, err := filepath.Match(pattern, d.Name())
			if err != nil {
				return err
			}
			if matched {
				files = append(files, entry)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", path, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (p *Processor) outputPath(input, converter string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(p.outputDir, stem+"_"+converter+"_cards.tsv")
}

func writeDeck(path string, cards []domain.Card) error {
	out, err := textio.OpenOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return textio.WriteCards(out, cards)
}
