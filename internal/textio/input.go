package textio

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadInput reads the whole input document. An empty path means stdin.
// A missing or unreadable file is a fatal condition for the caller; the
// error names the path.
func ReadInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file %s: %w", path, err)
	}
	return string(data), nil
}

// Lines splits text into trimmed lines with blank lines removed.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
