// Package logs reads the marquee log file for the "marquee logs" command.
//
// Last returns the final N lines with bounded memory; Follow polls from a
// byte offset and hands each new line to a callback until the context ends.
package logs
