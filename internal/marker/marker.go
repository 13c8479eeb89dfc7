// Package marker extracts BEGIN-TODO/END-TODO marker pairs from a document
// and validates their pairing.
package marker

import (
	"regexp"
	"sort"

	"submitcheck/internal/document"
	"submitcheck/internal/verdict"
)

// pattern matches a marker anywhere in a line: a // comment prefix, the
// BEGIN-TODO or END-TODO token, and a parenthesized tag. First match wins.
var pattern = regexp.MustCompile(`//\s*(BEGIN|END)-TODO\(([^)]*)\)`)

// Span is the line range owned by one tag. Begin is the line number of the
// BEGIN marker and End the line number of the END marker, both 1-based.
// End > Begin always; markers are distinct lines.
type Span struct {
	Tag   string
	Begin int
	End   int
}

// TagMap maps tags to their spans, iterated in first-BEGIN order.
type TagMap struct {
	order []string
	spans map[string]Span
}

// Len is the number of tags.
func (m *TagMap) Len() int { return len(m.order) }

// Tags returns the tag names in first-BEGIN order.
func (m *TagMap) Tags() []string { return m.order }

// Get looks up the span for a tag.
func (m *TagMap) Get(tag string) (Span, bool) {
	s, ok := m.spans[tag]
	return s, ok
}

// Spans returns all spans in first-BEGIN order.
func (m *TagMap) Spans() []Span {
	spans := make([]Span, len(m.order))
	for i, tag := range m.order {
		spans[i] = m.spans[tag]
	}
	return spans
}

// SortedSpans returns all spans ordered by (Begin, End).
func (m *TagMap) SortedSpans() []Span {
	spans := m.Spans()
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Begin != spans[j].Begin {
			return spans[i].Begin < spans[j].Begin
		}
		return spans[i].End < spans[j].End
	})
	return spans
}

// Extract scans text for marker pairs and returns the validated tag map.
// It fails on duplicate, unmatched, or overlapping tag pairs.
func Extract(text string) (*TagMap, error) {
	m := &TagMap{spans: make(map[string]Span)}

	for i, line := range document.SplitLines(text) {
		match := pattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		lineNum := i + 1
		kind, tag := match[1], match[2]

		if kind == "BEGIN" {
			if _, seen := m.spans[tag]; seen {
				return nil, verdict.Errorf(verdict.DuplicateBegin,
					"Duplicate BEGIN-TODO tag '%s' found at line %d.", tag, lineNum)
			}
			m.spans[tag] = Span{Tag: tag, Begin: lineNum}
			m.order = append(m.order, tag)
			continue
		}

		span, seen := m.spans[tag]
		if !seen {
			return nil, verdict.Errorf(verdict.UnmatchedEnd,
				"END-TODO tag '%s' at line %d has no matching BEGIN-TODO.", tag, lineNum)
		}
		if span.End != 0 {
			return nil, verdict.Errorf(verdict.DuplicateEnd,
				"Duplicate END-TODO tag '%s' found at line %d.", tag, lineNum)
		}
		span.End = lineNum
		m.spans[tag] = span
	}

	for _, tag := range m.order {
		if span := m.spans[tag]; span.End == 0 {
			return nil, verdict.Errorf(verdict.UnmatchedBegin,
				"BEGIN-TODO tag '%s' at line %d has no matching END-TODO.", tag, span.Begin)
		}
	}

	sorted := m.SortedSpans()
	for i := 0; i+1 < len(sorted); i++ {
		cur, next := sorted[i], sorted[i+1]
		if cur.End > next.Begin {
			return nil, verdict.Errorf(verdict.OverlappingTags,
				"Overlapping tags detected: '%s' (lines %d-%d) and '%s' (lines %d-%d).",
				cur.Tag, cur.Begin, cur.End, next.Tag, next.Begin, next.End)
		}
	}

	return m, nil
}
