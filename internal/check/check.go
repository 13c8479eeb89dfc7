// Package check orchestrates the submission checking pipeline and produces
// the accept/reject verdict.
package check

import (
	"fmt"
	"os"
	"strings"

	"submitcheck/internal/marker"
	"submitcheck/internal/naming"
	"submitcheck/internal/segment"
	"submitcheck/internal/verdict"
)

// Result is the outcome of checking one submission.
type Result struct {
	Accepted bool
	Err      error    // the failing stage's error when rejected
	Warnings []string // lenient filename-policy warnings
}

// Verdict renders the result as the canonical verdict text.
func (r Result) Verdict() string {
	if r.Accepted {
		return verdict.Accepted()
	}
	return verdict.Rejected(r.Err)
}

// CompareTags checks that the submission declares exactly the assignment's
// tags, in the same order.
func CompareTags(assignment, submission *marker.TagMap) error {
	assignmentOrder := assignment.Tags()
	submissionOrder := submission.Tags()

	var missing []string
	for _, tag := range assignmentOrder {
		if _, ok := submission.Get(tag); !ok {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		return verdict.Errorf(verdict.MissingTags,
			"The following tags are missing in the submission: %s", strings.Join(missing, ", "))
	}

	var extra []string
	for _, tag := range submissionOrder {
		if _, ok := assignment.Get(tag); !ok {
			extra = append(extra, tag)
		}
	}
	if len(extra) > 0 {
		return verdict.Errorf(verdict.ExtraTags,
			"The following extra tags are present in the submission: %s", strings.Join(extra, ", "))
	}

	// Membership checks passed, so both orders have equal length.
	for i, expected := range assignmentOrder {
		if actual := submissionOrder[i]; actual != expected {
			return verdict.Errorf(verdict.OrderMismatch,
				"Tag mismatch at position %d: expected '%s' but found '%s'.", i+1, expected, actual)
		}
	}

	return nil
}

// Texts runs the marker and segment checks on two raw documents. It returns
// the first failing stage's error, or nil when the submission is faithful.
func Texts(assignmentText, submissionText string) error {
	assignmentTags, err := marker.Extract(assignmentText)
	if err != nil {
		return err
	}
	submissionTags, err := marker.Extract(submissionText)
	if err != nil {
		return err
	}

	if err := CompareTags(assignmentTags, submissionTags); err != nil {
		return err
	}

	assignmentSegments := segment.Extract(assignmentText, assignmentTags)
	submissionSegments := segment.Extract(submissionText, submissionTags)

	return segment.Compare(assignmentSegments, submissionSegments)
}

// Files checks a submission file against an assignment file: filename policy
// first, then the text pipeline. It always returns a Result rather than
// failing, except for read errors on files the caller promised exist.
func Files(assignmentFile, submissionFile string, policy naming.Policy) (Result, error) {
	warning, err := policy.Check(assignmentFile, submissionFile)
	if err != nil {
		return Result{Err: err}, nil
	}

	var warnings []string
	if warning != "" {
		warnings = append(warnings, warning)
	}

	assignmentText, err := os.ReadFile(assignmentFile)
	if err != nil {
		return Result{}, fmt.Errorf("read assignment: %w", err)
	}
	submissionText, err := os.ReadFile(submissionFile)
	if err != nil {
		return Result{}, fmt.Errorf("read submission: %w", err)
	}

	if err := Texts(string(assignmentText), string(submissionText)); err != nil {
		return Result{Err: err, Warnings: warnings}, nil
	}

	return Result{Accepted: true, Warnings: warnings}, nil
}
