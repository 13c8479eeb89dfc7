// Package segment extracts and compares the protected text lying outside all
// marker spans.
package segment

import (
	"strings"
	"unicode"

	"submitcheck/internal/document"
	"submitcheck/internal/marker"
	"submitcheck/internal/verdict"
)

// Extract returns the ordered runs of text outside the marker spans of tags.
// Marker lines themselves and the payload between them are excluded.
func Extract(text string, tags *marker.TagMap) []string {
	doc := document.New(text)
	var segments []string
	cursor := 0

	for _, span := range tags.SortedSpans() {
		if cursor < span.Begin-1 {
			segments = append(segments, doc.Range(cursor, span.Begin-1))
		}
		cursor = span.End
	}

	if cursor < doc.Len() {
		segments = append(segments, doc.Range(cursor, doc.Len()))
	}

	return segments
}

// Compare checks corresponding segments for whitespace-insensitive equality.
// Two segments are equal iff their non-whitespace character streams are
// identical; re-indentation and blank-line changes pass, any other edit fails.
// Stops at the first mismatch.
func Compare(assignment, submission []string) error {
	n := min(len(assignment), len(submission))
	for i := 0; i < n; i++ {
		if stripSpace(assignment[i]) != stripSpace(submission[i]) {
			return verdict.Errorf(verdict.ContentModified,
				"The original text has been modified:\n%s\n-------------------\n%s",
				assignment[i], submission[i])
		}
	}
	return nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
