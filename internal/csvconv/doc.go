// Package csvconv reformats delimited data for import into the study
// application: fields are HTML-escaped, LaTeX math is converted, and
// rows are rewritten as tab-separated values.
package csvconv
