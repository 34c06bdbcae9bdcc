package cloze

import (
	"bytes"
	"testing"

	"github.com/jamesmills/cardforge/internal/domain"
	"github.com/jamesmills/cardforge/internal/textio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator('%')
	require.NoError(t, err)
	require.NotNil(t, gen)

	_, err = NewGenerator(0)
	assert.ErrorIs(t, err, ErrDelimiterEmpty)

	for _, r := range []rune{' ', '\t', '\n', '\r'} {
		_, err = NewGenerator(r)
		assert.ErrorIs(t, err, ErrDelimiterWhitespace, "rune %q", r)
	}
}

func TestGeneratorLine(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator('%')
	require.NoError(t, err)

	cards := gen.Line("  david hume was born in %1711%  ")
	require.Len(t, cards, 1)
	assert.Equal(t, "david hume was born in ____", cards[0].Front)

	assert.Nil(t, gen.Line(""))
	assert.Nil(t, gen.Line("   "))
	assert.Nil(t, gen.Line("no answers"))
}

func TestGeneratorText(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator('%')
	require.NoError(t, err)

	input := "born in %1711%\n\nplain line\n%x% and %y%\n"
	cards, stats := gen.Text(input)

	// 1 card from line one, 0 from the blank and plain lines, 3 from
	// the two-answer line, in that order.
	require.Len(t, cards, 4)
	assert.Equal(t, "born in ____", cards[0].Front)
	assert.Equal(t, "____ and y", cards[2].Front)
	assert.Equal(t, 4, stats.Lines)
	assert.Equal(t, 4, stats.Cards)
}

func TestGeneratorTextEmptyInput(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator('%')
	require.NoError(t, err)

	cards, stats := gen.Text("")
	assert.Empty(t, cards)
	assert.Equal(t, 0, stats.Cards)
}

// TestGeneratorPipelineDeterminism runs the full parse, enumerate, and
// emit pipeline twice and compares the serialized bytes.
func TestGeneratorPipelineDeterminism(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator('@')
	require.NoError(t, err)

	input := "the @capital@ of @france@ is @paris@\nborn in @1711@ in @edinburgh@"

	render := func() []byte {
		cards, _ := gen.Text(input)
		var buf bytes.Buffer
		require.NoError(t, textio.WriteCards(&buf, cards))
		return buf.Bytes()
	}

	assert.Equal(t, render(), render())
}

// TestGeneratorScenarioEndToEnd walks the documented example from
// marked text to serialized rows.
func TestGeneratorScenarioEndToEnd(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator('%')
	require.NoError(t, err)

	cards, stats := gen.Text("david hume was born in %1711%")
	require.Equal(t, 1, stats.Cards)

	var buf bytes.Buffer
	require.NoError(t, textio.WriteCards(&buf, cards))
	assert.Equal(t, "david hume was born in ____\t1711\n", buf.String())
}

func TestGeneratorAllDelimiterLine(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator('%')
	require.NoError(t, err)

	// An all-delimiter line has no parseable spans: zero segments,
	// zero cards, no error.
	assert.Nil(t, gen.Line("%%%%"))
}

func TestGeneratorCardsValidate(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator('%')
	require.NoError(t, err)

	cards := gen.Line("a %b% c %d%")
	assert.Equal(t, cards, domain.FilterValid(cards))
}
