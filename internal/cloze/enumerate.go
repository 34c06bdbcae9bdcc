package cloze

import (
	"strings"

	"github.com/jamesmills/cardforge/internal/domain"
)

// Placeholder is the token substituted for a hidden answer in the
// question text.
const Placeholder = "____"

// Enumerate generates every meaningful masked variant of a parsed line.
//
// With k answer segments there are 2^k show/hide combinations; the one
// where every answer stays visible is skipped, so exactly 2^k - 1 cards
// come back. Each card's front is the segment sequence with hidden
// answers replaced by Placeholder, and its back is the hidden answer
// contents in left-to-right order joined by ", ".
//
// Enumeration is pure and deterministic: masks are visited in binary
// counting order with the first answer as the most significant bit,
// which keeps output byte-identical across runs. A line with no answer
// segments yields nil.
//
// Cost is O(2^k * len(segments)). k is the number of marked spans on
// one input line and is expected to stay in the single digits; a
// pathological line with dozens of spans will take exponential time and
// memory. That is inherent to enumerating every combination and is not
// truncated here.
func Enumerate(segments []Segment) []domain.Card {
	k := countAnswers(segments)
	if k == 0 {
		return nil
	}

	cards := make([]domain.Card, 0, (1<<k)-1)
	for mask := 1; mask < 1<<k; mask++ {
		var front strings.Builder
		var hidden []string

		answer := 0
		for _, s := range segments {
			if !s.IsAnswer {
				front.WriteString(s.Content)
				continue
			}
			if mask&(1<<(k-1-answer)) != 0 {
				front.WriteString(Placeholder)
				hidden = append(hidden, s.Content)
			} else {
				front.WriteString(s.Content)
			}
			answer++
		}

		cards = append(cards, domain.Card{
			Front: front.String(),
			Back:  strings.Join(hidden, ", "),
		})
	}

	return cards
}
