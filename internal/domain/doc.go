// Package domain contains the core entities of the card generation
// pipeline. The central type is Card, a front/back flashcard pair that
// every converter in this repository ultimately produces. Domain types
// are plain values with no dependencies on I/O, formatting, or the CLI
// layer; they carry their own validation rules as sentinel errors.
package domain
