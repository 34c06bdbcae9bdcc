package textparse

import (
	"regexp"
	"strings"
)

var (
	bulletMarkerRe = regexp.MustCompile(`^[-•*]\s*`)
	numberMarkerRe = regexp.MustCompile(`^\d+[.)]\s*`)
	letterMarkerRe = regexp.MustCompile(`^[a-zA-Z][.)]\s*`)
	sentenceEndRe  = regexp.MustCompile(`([.!?])\s+`)
)

// ListItems extracts list items from text, stripping common bullet,
// number, and letter markers. Blank lines are skipped.
func ListItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = bulletMarkerRe.ReplaceAllString(line, "")
		line = numberMarkerRe.ReplaceAllString(line, "")
		line = letterMarkerRe.ReplaceAllString(line, "")
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// Sentences splits text on sentence-ending punctuation followed by
// whitespace. The punctuation stays attached to its sentence.
func Sentences(text string) []string {
	// RE2 has no lookbehind, so mark the boundaries first and split on
	// the marker instead.
	marked := sentenceEndRe.ReplaceAllString(text, "$1\x00")

	var sentences []string
	for _, s := range strings.Split(marked, "\x00") {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// KV is one parsed key/value line.
type KV struct {
	Key   string
	Value string
}

// KeyValuePairs parses "key<sep>value" lines from text, splitting on
// the first occurrence of sep per line. Lines without the separator or
// with a blank key or value are skipped.
func KeyValuePairs(text, sep string) []KV {
	var pairs []KV
	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, sep)
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			pairs = append(pairs, KV{Key: key, Value: value})
		}
	}
	return pairs
}

// Field is one named value of a structured fact.
type Field struct {
	Key   string
	Value string
}

// Fact is an ordered set of named fields parsed from one fact record.
// Field order follows the input so downstream card generation stays
// deterministic.
type Fact struct {
	Fields []Field
}

// Get returns the value for key, or the empty string if absent.
// Keys are stored lowercased by StructuredFact.
func (f Fact) Get(key string) string {
	for _, field := range f.Fields {
		if field.Key == key {
			return field.Value
		}
	}
	return ""
}

// Has reports whether the fact carries a non-empty value for key.
func (f Fact) Has(key string) bool {
	return f.Get(key) != ""
}

// StructuredFact parses one fact record of the form
//
//	Title: Python Lists
//	Definition: Ordered, mutable sequences of objects
//	Examples:
//	- [1, 2, 3]
//	- ["a", "b", "c"]
//
// A line containing a colon and not starting with a space opens a new
// field (key lowercased); any other line continues the value of the
// current field.
func StructuredFact(text string) Fact {
	var fact Fact
	var currentKey string
	var currentValue []string

	flush := func() {
		if currentKey == "" {
			return
		}
		fact.Fields = append(fact.Fields, Field{
			Key:   currentKey,
			Value: strings.TrimSpace(strings.Join(currentValue, "\n")),
		})
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.Contains(line, ":") && !strings.HasPrefix(line, " ") {
			flush()
			key, value, _ := strings.Cut(line, ":")
			currentKey = strings.ToLower(strings.TrimSpace(key))
			currentValue = currentValue[:0]
			if v := strings.TrimSpace(value); v != "" {
				currentValue = append(currentValue, v)
			}
			continue
		}
		currentValue = append(currentValue, strings.TrimSpace(line))
	}
	flush()

	return fact
}
