// Package merge reconstructs a document by substituting the submission's
// marker-bounded payloads into the assignment's marker positions.
package merge

import (
	"strings"

	"submitcheck/internal/document"
	"submitcheck/internal/marker"
	"submitcheck/internal/verdict"
)

// Insert returns the assignment text with each marker-bounded region replaced
// by the submission's corresponding payload. Everything outside the spans,
// including the marker lines themselves, is copied verbatim from the
// assignment. Tags are processed in assignment order; a tag absent from the
// submission fails even if a tag comparison ran earlier, since Insert may be
// invoked standalone.
func Insert(assignmentText, submissionText string, assignmentTags, submissionTags *marker.TagMap) (string, error) {
	assignmentLines := document.New(assignmentText).Lines()
	submissionLines := document.New(submissionText).Lines()

	var result []string
	cursor := 0

	for _, tag := range assignmentTags.Tags() {
		subSpan, ok := submissionTags.Get(tag)
		if !ok {
			return "", verdict.Errorf(verdict.TagMissingInSubmission,
				"Tag '%s' found in assignment but not in submission.", tag)
		}
		span, _ := assignmentTags.Get(tag)

		// Assignment text up to and including the BEGIN marker line.
		result = append(result, assignmentLines[cursor:span.Begin]...)

		// The student's payload, strictly between the submission's markers.
		result = append(result, submissionLines[subSpan.Begin:subSpan.End-1]...)

		// The assignment's END marker line.
		result = append(result, assignmentLines[span.End-1])

		cursor = span.End
	}

	result = append(result, assignmentLines[cursor:]...)

	return strings.Join(result, "\n"), nil
}
