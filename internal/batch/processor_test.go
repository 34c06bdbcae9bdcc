package batch

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jamesmills/cardforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// upperConverter makes one card per input document.
func upperConverter(text string) ([]domain.Card, error) {
	return []domain.Card{{Front: text, Back: "ok"}}, nil
}

func TestRunPerFileOutputs(t *testing.T) {
	t.Parallel()

	inDir := writeFiles(t, map[string]string{
		"notes.txt": "alpha",
		"more.txt":  "beta",
	})
	outDir := t.TempDir()

	p := NewProcessor(outDir, false, discardLogger())
	p.Register("upper", upperConverter)

	files, err := Expand([]string{inDir}, "*.txt", false)
	require.NoError(t, err)
	require.Len(t, files, 2)

	report, err := p.Run(files, "upper")
	require.NoError(t, err)
	assert.NotEqual(t, report.RunID.String(), "00000000-0000-0000-0000-000000000000")
	require.Len(t, report.Results, 2)
	assert.Equal(t, 2, report.Succeeded())
	assert.Equal(t, 2, report.TotalCards())

	// Expand sorts, so more.txt comes first.
	assert.Equal(t, filepath.Join(outDir, "more_upper_cards.tsv"), report.Results[0].Output)
	data, err := os.ReadFile(report.Results[0].Output)
	require.NoError(t, err)
	assert.Equal(t, "beta\tok\n", string(data))
}

func TestRunMerge(t *testing.T) {
	t.Parallel()

	inDir := writeFiles(t, map[string]string{
		"a.txt": "one",
		"b.txt": "two",
	})
	outDir := t.TempDir()

	p := NewProcessor(outDir, true, discardLogger())
	p.Register("upper", upperConverter)

	files, err := Expand([]string{inDir}, "*.txt", false)
	require.NoError(t, err)

	report, err := p.Run(files, "upper")
	require.NoError(t, err)

	merged := filepath.Join(outDir, "merged_upper_cards.tsv")
	for _, res := range report.Results {
		assert.Equal(t, merged, res.Output)
	}

	data, err := os.ReadFile(merged)
	require.NoError(t, err)
	assert.Equal(t, "one\tok\ntwo\tok\n", string(data))
}

func TestRunUnknownConverter(t *testing.T) {
	t.Parallel()

	p := NewProcessor(t.TempDir(), false, discardLogger())
	_, err := p.Run([]string{"whatever.txt"}, "nope")
	assert.ErrorIs(t, err, ErrUnknownConverter)
}

func TestRunRecordsFailures(t *testing.T) {
	t.Parallel()

	inDir := writeFiles(t, map[string]string{"bad.txt": "x", "good.txt": "y"})
	outDir := t.TempDir()

	p := NewProcessor(outDir, false, discardLogger())
	p.Register("picky", func(text string) ([]domain.Card, error) {
		if text == "x" {
			return nil, errors.New("refused")
		}
		return []domain.Card{{Front: text, Back: "ok"}}, nil
	})

	files, err := Expand([]string{inDir}, "*", false)
	require.NoError(t, err)

	report, err := p.Run(files, "picky")
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, 1, report.Succeeded())
	require.Error(t, report.Results[0].Err)
	assert.NoError(t, report.Results[1].Err)
}

func TestRunMissingInput(t *testing.T) {
	t.Parallel()

	p := NewProcessor(t.TempDir(), false, discardLogger())
	p.Register("upper", upperConverter)

	report, err := p.Run([]string{filepath.Join(t.TempDir(), "missing.txt")}, "upper")
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Error(t, report.Results[0].Err)
	assert.Equal(t, 0, report.Succeeded())
}

func TestExpand(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"top.md":           "a",
		"top.txt":          "b",
		"nested/inner.md":  "c",
		"nested/inner.txt": "d",
	})

	flat, err := Expand([]string{dir}, "*.md", false)
	require.NoError(t, err)
	require.Len(t, flat, 1)
	assert.Equal(t, "top.md", filepath.Base(flat[0]))

	deep, err := Expand([]string{dir}, "*.md", true)
	require.NoError(t, err)
	assert.Len(t, deep, 2)

	// Plain files pass through regardless of pattern.
	single, err := Expand([]string{filepath.Join(dir, "top.txt")}, "*.md", false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "top.txt")}, single)

	_, err = Expand([]string{filepath.Join(dir, "absent")}, "*", false)
	assert.Error(t, err)
}
