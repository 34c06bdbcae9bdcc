package cloze

import (
	"regexp"
	"strings"
)

// Segment is one parsed span of an input line: either literal text that
// always appears on the card front, or an answer span that can be
// blanked out. Segments are immutable once parsed; concatenating the
// Content of a line's segments in order reproduces the line with the
// delimiter characters removed.
type Segment struct {
	Content  string
	IsAnswer bool
}

// Parse splits a single line into an ordered sequence of segments.
//
// The delimiter brackets answer spans: every maximal substring of
// non-delimiter characters enclosed by a delimiter pair becomes an
// answer segment with the delimiters stripped. All remaining text
// becomes literal segments. Degenerate spans degrade gracefully:
//
//   - an empty answer ("%%") produces no segment,
//   - zero-length literal runs between spans produce no segment,
//   - a line without the delimiter is one literal segment,
//   - an unpaired trailing delimiter stays ordinary literal text.
//
// The delimiter may be any single rune; it is quoted before being
// compiled into the matching pattern, so regex metacharacters such as
// '*' or '$' are safe to use.
func Parse(line string, delimiter rune) []Segment {
	delim := string(delimiter)
	quoted := regexp.QuoteMeta(delim)
	re := regexp.MustCompile(quoted + "[^" + quoted + "]+" + quoted)

	var segments []Segment
	appendLiteral := func(chunk string) {
		if chunk == "" {
			return
		}
		// A chunk that is itself delimiter-wrapped can only be a bare
		// delimiter or an empty pair left over between matched spans;
		// its inner text is empty either way, so it is dropped.
		if strings.HasPrefix(chunk, delim) && strings.HasSuffix(chunk, delim) {
			if len(chunk) <= 2*len(delim) {
				return
			}
		}
		segments = append(segments, Segment{Content: chunk})
	}

	last := 0
	for _, m := range re.FindAllStringIndex(line, -1) {
		appendLiteral(line[last:m[0]])
		answer := line[m[0]+len(delim) : m[1]-len(delim)]
		segments = append(segments, Segment{Content: answer, IsAnswer: true})
		last = m[1]
	}
	appendLiteral(line[last:])

	return segments
}

// countAnswers reports how many answer segments the sequence contains.
func countAnswers(segments []Segment) int {
	n := 0
	for _, s := range segments {
		if s.IsAnswer {
			n++
		}
	}
	return n
}
