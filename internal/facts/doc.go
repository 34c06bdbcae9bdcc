// Package facts converts structured fact records into flashcards.
// A fact is a block of "Key: value" lines (values may span multiple
// lines); records are separated by blank lines. Several card shapes are
// available: basic field cards, list cards, example cards, formula
// cards, and cross-fact comparison cards.
package facts
