// Package cloze implements cloze-deletion card generation.
//
// The main entry point is the overlapping generator: input lines carry
// answer spans bracketed by a delimiter character ("born in %1711% in
// %edinburgh%"), and the generator enumerates every combination of
// hidden answers, producing one card per combination. For a line with k
// marked answers that is 2^k - 1 cards; the combination where every
// answer stays visible is never emitted because it would test nothing.
//
// The package also provides helpers that wrap targets in Anki's native
// {{cN::...}} cloze markup for the study application's built-in cloze
// note type.
package cloze
