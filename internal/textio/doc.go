// Package textio handles the input and output plumbing shared by every
// converter command: reading whole documents from a file path or stdin,
// and serializing cards as tab-separated rows.
//
// The data stream is stdout (or the requested output file) and nothing
// else is ever written to it; diagnostics go to the logger on stderr.
package textio
