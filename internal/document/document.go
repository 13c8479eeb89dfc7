// Package document models a text file as an immutable sequence of lines.
package document

import "strings"

// Document is an ordered sequence of lines. Line numbers are 1-based in
// reporting, 0-based in slicing.
type Document struct {
	lines []string
}

// New splits raw text into a Document. A single trailing newline does not
// produce an empty final line, matching how line counts are reported.
func New(text string) Document {
	return Document{lines: SplitLines(text)}
}

// Lines returns the underlying line slice. Callers must not modify it.
func (d Document) Lines() []string { return d.lines }

// Len is the number of lines.
func (d Document) Len() int { return len(d.lines) }

// Range joins lines [from, to) with newlines. Indices are 0-based.
func (d Document) Range(from, to int) string {
	return strings.Join(d.lines[from:to], "\n")
}

// SplitLines splits text on line boundaries, handling both LF and CRLF and
// ignoring a single trailing line terminator.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
