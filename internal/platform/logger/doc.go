// Package logger configures the application's structured logging.
// Diagnostics are JSON records on stderr so the data stream on stdout
// stays clean for card output.
package logger
