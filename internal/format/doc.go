// Package format prepares card text for import into the study
// application: HTML escaping, LaTeX math conversion to MathJax
// delimiters, and newline-to-<br> conversion.
package format
