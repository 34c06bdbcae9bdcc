package cloze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jamesmills/cardforge/internal/textparse"
)

// Mark wraps every case-insensitive occurrence of target in text with
// Anki's {{cN::...}} cloze markup, using n as the cloze index. The
// matched text is preserved as written, not replaced by target.
func Mark(text, target string, n int) string {
	if target == "" {
		return text
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(target))
	return re.ReplaceAllStringFunc(text, func(match string) string {
		return fmt.Sprintf("{{c%d::%s}}", n, match)
	})
}

// MarkOverlapping wraps every target as cloze index 1, so all targets
// are hidden together on a single card.
func MarkOverlapping(text string, targets []string) string {
	for _, target := range targets {
		text = Mark(text, target, 1)
	}
	return text
}

// MarkSequential wraps the targets as c1, c2, c3..., producing one card
// per target when imported as a cloze note.
func MarkSequential(text string, targets []string) string {
	for i, target := range targets {
		text = Mark(text, target, i+1)
	}
	return text
}

// MarkKeywords builds one cloze note per keyword found in text.
// Keywords that do not occur in the text are skipped.
func MarkKeywords(text string, keywords []string) []string {
	var notes []string
	for i, keyword := range keywords {
		marked := Mark(text, keyword, i+1)
		if marked != text {
			notes = append(notes, marked)
		}
	}
	return notes
}

// MarkSentences builds one note with each sentence of text hidden in
// turn, numbered in document order.
func MarkSentences(text string) []string {
	var notes []string
	for i, sentence := range textparse.Sentences(text) {
		note := strings.Replace(text, sentence, fmt.Sprintf("{{c%d::%s}}", i+1, sentence), 1)
		notes = append(notes, note)
	}
	return notes
}

var numberedItemRe = regexp.MustCompile(`^(\d+[.)])\s+(.+)$`)

// MarkNumberedList hides the content of every numbered list item
// ("1. text" or "1) text") behind sequential cloze indexes, returning a
// single note covering the whole list. Returns nil when the text has no
// numbered items.
func MarkNumberedList(text string) []string {
	marked := text
	index := 1
	for _, line := range strings.Split(text, "\n") {
		m := numberedItemRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		item := m[1] + " " + m[2]
		withCloze := fmt.Sprintf("%s {{c%d::%s}}", m[1], index, m[2])
		marked = strings.Replace(marked, item, withCloze, 1)
		index++
	}
	if index == 1 {
		return nil
	}
	return []string{marked}
}

// MarkDefinitions builds two notes per "term: definition" line, one
// hiding the term and one hiding the definition.
func MarkDefinitions(text string) []string {
	var notes []string
	for _, pair := range textparse.KeyValuePairs(text, ":") {
		line := pair.Key + ": " + pair.Value
		notes = append(notes,
			strings.Replace(line, pair.Key, "{{c1::"+pair.Key+"}}", 1),
			strings.Replace(line, pair.Value, "{{c1::"+pair.Value+"}}", 1),
		)
	}
	return notes
}

// MarkIncremental splits text into chunks of chunkSize words and builds
// one note per chunk, hiding that chunk while keeping the surrounding
// words visible as context.
func MarkIncremental(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		chunkSize = 20
	}
	words := strings.Fields(text)

	var notes []string
	for i := 0; i < len(words); i += chunkSize {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[i:end], " ")

		var note strings.Builder
		if i > 0 {
			note.WriteString(strings.Join(words[:i], " "))
			note.WriteString(" ")
		}
		note.WriteString("{{c1::" + chunk + "}}")
		if end < len(words) {
			note.WriteString(" " + strings.Join(words[end:], " "))
		}
		notes = append(notes, note.String())
	}
	return notes
}
