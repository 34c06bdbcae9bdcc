package facts

import (
	"testing"

	"github.com/jamesmills/cardforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFact = `Title: CPU
Definition: Central processing unit
Purpose: Executes instructions`

func TestParseRecords(t *testing.T) {
	t.Parallel()

	text := sampleFact + "\n\nTitle: RAM\nDefinition: Random access memory"
	records := ParseRecords(text)
	require.Len(t, records, 2)
	assert.Equal(t, "CPU", records[0].Get("title"))
	assert.Equal(t, "RAM", records[1].Get("title"))

	assert.Empty(t, ParseRecords(""))
	assert.Empty(t, ParseRecords("\n\n\n"))
}

func TestConvertBasic(t *testing.T) {
	t.Parallel()

	cards := Convert(sampleFact, []CardType{Basic})
	require.Len(t, cards, 3)

	assert.Equal(t, "<b>CPU</b><br><br>Definition?", cards[0].Front)
	assert.Equal(t, "Central processing unit", cards[0].Back)

	// Definition fields get a reverse card.
	assert.Equal(t, "What term is defined as:<br><br>Central processing unit", cards[1].Front)
	assert.Equal(t, "CPU", cards[1].Back)

	assert.Equal(t, "<b>CPU</b><br><br>Purpose?", cards[2].Front)
	assert.Equal(t, "Executes instructions", cards[2].Back)
}

func TestConvertBasicEscapesSubject(t *testing.T) {
	t.Parallel()

	cards := Convert("Title: a<b\nDefinition: less than b", []CardType{Basic})
	require.NotEmpty(t, cards)
	assert.Contains(t, cards[0].Front, "a&lt;b")
}

func TestConvertList(t *testing.T) {
	t.Parallel()

	text := `Title: HTTP Methods
Safe Methods:
- GET
- HEAD
- OPTIONS`

	cards := Convert(text, []CardType{List})
	require.Len(t, cards, 4)

	assert.Equal(t, "<b>HTTP Methods</b><br><br>List all safe methods:", cards[0].Front)
	assert.Equal(t, "• GET<br>• HEAD<br>• OPTIONS", cards[0].Back)

	assert.Equal(t, "<b>HTTP Methods</b><br><br>Safe Methods #1?", cards[1].Front)
	assert.Equal(t, "GET", cards[1].Back)
	assert.Equal(t, "<b>HTTP Methods</b><br><br>Safe Methods #3?", cards[3].Front)
	assert.Equal(t, "OPTIONS", cards[3].Back)
}

func TestConvertExample(t *testing.T) {
	t.Parallel()

	text := `Title: Recursion
Examples:
- factorial
- tree traversal`

	cards := Convert(text, []CardType{Example})
	require.Len(t, cards, 3)

	assert.Equal(t, "What concept does this example illustrate?<br><br>factorial", cards[0].Front)
	assert.Equal(t, "Recursion", cards[0].Back)
	assert.Equal(t, "Give an example of:<br><br><b>Recursion</b>", cards[1].Front)
	assert.Equal(t, "factorial", cards[1].Back)
	assert.Equal(t, "What concept does this example illustrate?<br><br>tree traversal", cards[2].Front)
}

func TestConvertFormula(t *testing.T) {
	t.Parallel()

	text := `Title: Mass-energy equivalence
Formula: $$E = mc^2$$
Where: E is energy, m is mass, c is the speed of light`

	cards := Convert(text, []CardType{Formula})
	require.Len(t, cards, 3)

	assert.Equal(t, "Write the formula for:<br><br><b>Mass-energy equivalence</b>", cards[0].Front)
	assert.Equal(t, `\[E = mc^2\]`, cards[0].Back)
	assert.Equal(t, `What is this formula?<br><br>\[E = mc^2\]`, cards[1].Front)
	assert.Contains(t, cards[2].Front, "What do the variables represent?")
	assert.Contains(t, cards[2].Back, "E is energy")
}

func TestConvertComparison(t *testing.T) {
	t.Parallel()

	text := `Title: TCP
Reliability: Guaranteed delivery

Title: UDP
Reliability: Best effort`

	cards := Convert(text, []CardType{Comparison})
	require.Len(t, cards, 1)

	assert.Equal(t, "Compare reliability between: TCP, UDP", cards[0].Front)
	assert.Contains(t, cards[0].Back, "<table border='1'>")
	assert.Contains(t, cards[0].Back, "Guaranteed delivery")
	assert.Contains(t, cards[0].Back, "Best effort")
}

func TestConvertComparisonNeedsTwoFacts(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Convert(sampleFact, []CardType{Comparison}))
}

func TestConvertMultipleTypes(t *testing.T) {
	t.Parallel()

	cards := Convert(sampleFact, []CardType{Basic, List})
	basicOnly := Convert(sampleFact, []CardType{Basic})
	assert.Equal(t, basicOnly, cards) // no list fields in the sample
}

func TestConvertResultsAreValid(t *testing.T) {
	t.Parallel()

	cards := Convert(sampleFact, []CardType{Basic, List, Example, Formula})
	assert.Equal(t, cards, domain.FilterValid(cards))
}
