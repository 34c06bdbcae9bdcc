package main

import (
	"strings"

	"github.com/jamesmills/cardforge/internal/domain"
	"github.com/jamesmills/cardforge/internal/preview"
)

// runPreview loads a generated deck (tab-separated front/back rows) and
// serves it as a local HTML page for inspection before import.
func runPreview(e *env, args []string) error {
	var common commonFlags
	fs := newFlagSet("preview", &common)
	port := fs.Int("port", e.cfg.Preview.Port, "port to serve the preview page on")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text, err := readInput(e, fs)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return ErrNoInput
	}

	cards := parseDeck(text)
	srv := preview.NewServer(cards, e.logger)
	return srv.ListenAndServe(*port)
}

// parseDeck reads front\tback rows back into cards. Rows without a tab
// become front-only entries so malformed decks still render.
func parseDeck(text string) []domain.Card {
	var cards []domain.Card
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		front, back, _ := strings.Cut(line, "\t")
		cards = append(cards, domain.Card{Front: front, Back: back})
	}
	return cards
}
