package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readLine reads one trimmed line. io.EOF is returned only when no input
// remains at all.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func prompt(out io.Writer, reader *bufio.Reader, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	return readLine(reader)
}

// confirm asks a yes/no question. Anything but y/yes, including EOF, is no.
func confirm(out io.Writer, reader *bufio.Reader, question string) bool {
	fmt.Fprintf(out, "%s (y/n): ", question)
	answer, err := readLine(reader)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
