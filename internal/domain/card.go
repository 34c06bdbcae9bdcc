package domain

import (
	"errors"
	"strings"
)

// Card-specific validation errors
var (
	// ErrCardFrontEmpty is returned when a card's front side is empty or blank.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card's back side is empty or blank.
	ErrCardBackEmpty = errors.New("card back cannot be empty")
)

// Card represents a single flashcard as a front/back pair of strings.
// Cards are produced by the converters, serialized once, and discarded;
// nothing mutates a Card after creation.
type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// NewCard creates a Card from the given front and back text.
// Returns an error if either side is empty or whitespace-only.
func NewCard(front, back string) (Card, error) {
	card := Card{Front: front, Back: back}
	if err := card.Validate(); err != nil {
		return Card{}, err
	}
	return card, nil
}

// Validate checks that both sides of the card carry content.
func (c Card) Validate() error {
	if strings.TrimSpace(c.Front) == "" {
		return ErrCardFrontEmpty
	}
	if strings.TrimSpace(c.Back) == "" {
		return ErrCardBackEmpty
	}
	return nil
}

// FilterValid returns the cards that pass Validate, preserving order.
// Converters use it to drop degenerate pairs before emission.
func FilterValid(cards []Card) []Card {
	valid := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Validate() == nil {
			valid = append(valid, c)
		}
	}
	return valid
}

// Dedupe returns the cards with exact front/back duplicates removed,
// keeping the first occurrence of each pair.
func Dedupe(cards []Card) []Card {
	seen := make(map[Card]struct{}, len(cards))
	unique := make([]Card, 0, len(cards))
	for _, c := range cards {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}
