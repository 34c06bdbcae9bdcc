package format

import (
	"regexp"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var (
	displayMathRe = regexp.MustCompile(`\$\$([^$]+)\$\$`)
	inlineMathRe  = regexp.MustCompile(`\$([^$]+)\$`)
)

// EscapeHTML escapes the characters that would otherwise be interpreted
// as markup by the card renderer.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// ConvertLaTeX rewrites dollar-delimited math to MathJax delimiters:
// $$...$$ becomes \[...\] (display math) and $...$ becomes \(...\)
// (inline math). Display math is converted first so inline matching
// never eats half of a display block.
func ConvertLaTeX(text string) string {
	text = displayMathRe.ReplaceAllString(text, `\[$1\]`)
	text = inlineMathRe.ReplaceAllString(text, `\($1\)`)
	return text
}

// NewlinesToBreaks converts newlines to <br> tags so multi-line values
// render as line breaks on a card.
func NewlinesToBreaks(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>")
}

// Options selects which transformations Process applies.
type Options struct {
	EscapeHTML       bool
	ConvertLaTeX     bool
	NewlinesToBreaks bool
}

// DefaultOptions enables every transformation.
func DefaultOptions() Options {
	return Options{EscapeHTML: true, ConvertLaTeX: true, NewlinesToBreaks: true}
}

// Process applies the enabled transformations in a fixed order:
// escaping first, then LaTeX conversion, then newline conversion.
func Process(text string, opts Options) string {
	if opts.EscapeHTML {
		text = EscapeHTML(text)
	}
	if opts.ConvertLaTeX {
		text = ConvertLaTeX(text)
	}
	if opts.NewlinesToBreaks {
		text = NewlinesToBreaks(text)
	}
	return text
}

// Truncate shortens text to at most max characters, replacing the tail
// with "..." when it is cut. Text at or under the limit is returned
// unchanged.
func Truncate(text string, max int) string {
	const suffix = "..."
	if len(text) <= max {
		return text
	}
	if max <= len(suffix) {
		return text[:max]
	}
	return text[:max-len(suffix)] + suffix
}
