// Package detect sniffs tabular input to determine its delimiter.
package detect

import (
	"bytes"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown   Format = iota
	CSV              // comma separated
	TSV              // tab separated
	Semicolon        // semicolon separated, common in European locales
	Pipe             // pipe separated
	JSON             // a JSON document; not tabular
)

var candidates = []struct {
	format Format
	comma  byte
}{
	{CSV, ','},
	{TSV, '\t'},
	{Semicolon, ';'},
	{Pipe, '|'},
}

// sniffLines is how many leading lines are checked for a consistent delimiter.
const sniffLines = 5

// Comma returns the field delimiter for a tabular format, or 0.
func (f Format) Comma() rune {
	for _, c := range candidates {
		if c.format == f {
			return rune(c.comma)
		}
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	case Semicolon:
		return "semicolon"
	case Pipe:
		return "pipe"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// Sniff examines the first bytes of input to determine format.
// A header with no delimiter at all is a single-column CSV.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}
	if data[0] == '{' || data[0] == '[' {
		return JSON
	}

	lines := leadingLines(data, sniffLines)
	best, bestCount := CSV, 0
	for _, c := range candidates {
		n := count(lines[0], c.comma)
		if n == 0 || !consistent(lines[1:], c.comma, n) {
			continue
		}
		if n > bestCount {
			best, bestCount = c.format, n
		}
	}
	return best
}

// leadingLines returns up to n non-empty lines. The last line may be
// truncated, so it is dropped when more than one line is available.
func leadingLines(data []byte, n int) [][]byte {
	truncated := !bytes.HasSuffix(data, []byte("\n"))
	var lines [][]byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	if truncated && len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

func consistent(lines [][]byte, comma byte, want int) bool {
	for _, line := range lines {
		if count(line, comma) != want {
			return false
		}
	}
	return true
}

// count counts delimiters outside double-quoted fields.
func count(line []byte, comma byte) int {
	n, quoted := 0, false
	for _, b := range line {
		switch {
		case b == '"':
			quoted = !quoted
		case b == comma && !quoted:
			n++
		}
	}
	return n
}
