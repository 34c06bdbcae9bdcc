// Package batch runs a converter over many input files at once,
// writing one output deck per input file or a single merged deck. Each
// run is tagged with an identifier so its log lines can be correlated.
package batch
