// Package markdown extracts flashcards from markdown notes using a set
// of structural heuristics: section headers with content, definition
// lines, Q/A blocks, fenced code blocks, titled bullet lists, and
// tables. The heuristics are intentionally shallow pattern matches over
// the raw text rather than a full markdown parse.
package markdown
