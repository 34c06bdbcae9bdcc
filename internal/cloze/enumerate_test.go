package cloze

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jamesmills/cardforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateSingleAnswer(t *testing.T) {
	t.Parallel()

	cards := Enumerate(Parse("david hume was born in %1711%", '%'))
	require.Len(t, cards, 1)
	assert.Equal(t, "david hume was born in ____", cards[0].Front)
	assert.Equal(t, "1711", cards[0].Back)
}

func TestEnumerateTwoAnswers(t *testing.T) {
	t.Parallel()

	cards := Enumerate(Parse("born in %1711% in %edinburgh%", '%'))
	require.Len(t, cards, 3)

	// Masks count upward with the first answer as the most significant
	// bit: hide-last first, hide-first second, hide-both last.
	assert.Equal(t, domain.Card{Front: "born in 1711 in ____", Back: "edinburgh"}, cards[0])
	assert.Equal(t, domain.Card{Front: "born in ____ in edinburgh", Back: "1711"}, cards[1])
	assert.Equal(t, domain.Card{Front: "born in ____ in ____", Back: "1711, edinburgh"}, cards[2])
}

func TestEnumerateThreeAnswers(t *testing.T) {
	t.Parallel()

	cards := Enumerate(Parse("the @capital@ of @france@ is @paris@", '@'))
	assert.Len(t, cards, 7)

	// Every combination must be distinct.
	seen := make(map[string]bool)
	for _, c := range cards {
		key := c.Front + "\x00" + c.Back
		assert.False(t, seen[key], "duplicate card %q", key)
		seen[key] = true
	}
}

func TestEnumerateNoAnswers(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Enumerate(Parse("plain text without answers", '%')))
	assert.Nil(t, Enumerate(nil))
	assert.Nil(t, Enumerate(Parse("", '%')))
}

func TestEnumerateNonASCIIPassthrough(t *testing.T) {
	t.Parallel()

	cards := Enumerate(Parse("formula: %a² + b² = c²%", '%'))
	require.Len(t, cards, 1)
	assert.Equal(t, "formula: ____", cards[0].Front)
	assert.Equal(t, "a² + b² = c²", cards[0].Back)
}

// TestEnumerateCardinality checks the 2^k - 1 law for several k.
func TestEnumerateCardinality(t *testing.T) {
	t.Parallel()

	for k := 1; k <= 8; k++ {
		var b strings.Builder
		for i := 0; i < k; i++ {
			fmt.Fprintf(&b, "%%a%d%% ", i)
		}
		cards := Enumerate(Parse(b.String(), '%'))
		assert.Len(t, cards, (1<<k)-1, "k=%d", k)
	}
}

// TestEnumerateNoBlankExclusion checks that no card has an empty answer
// field: the all-visible combination is never emitted.
func TestEnumerateNoBlankExclusion(t *testing.T) {
	t.Parallel()

	cards := Enumerate(Parse("a %1% b %2% c %3%", '%'))
	for _, c := range cards {
		assert.NotEmpty(t, c.Back)
	}
}

// TestEnumeratePlaceholderCount checks that the number of placeholder
// tokens on the front always matches the number of hidden answers on
// the back.
func TestEnumeratePlaceholderCount(t *testing.T) {
	t.Parallel()

	cards := Enumerate(Parse("w %x% y %z% and %q%", '%'))
	require.Len(t, cards, 7)
	for _, c := range cards {
		blanks := strings.Count(c.Front, Placeholder)
		answers := len(strings.Split(c.Back, ", "))
		assert.Equal(t, answers, blanks, "card %+v", c)
	}
}

// TestEnumerateDeterminism checks that two runs over the same segments
// produce identical output.
func TestEnumerateDeterminism(t *testing.T) {
	t.Parallel()

	segments := Parse("the @capital@ of @france@ is @paris@", '@')
	first := Enumerate(segments)
	second := Enumerate(segments)
	assert.Equal(t, first, second)
}
