// Package textparse provides the plain-text parsing helpers shared by
// the converters: list item extraction, sentence splitting, key/value
// lines, and multi-line structured fact records.
package textparse
