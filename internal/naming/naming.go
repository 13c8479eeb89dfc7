// Package naming validates the filename convention linking an assignment file
// to its submission file.
package naming

import (
	"fmt"
	"strings"

	"submitcheck/internal/verdict"
)

const (
	DefaultAssignmentSuffix = "-assignment.dfy"
	DefaultSubmissionSuffix = "-submission.dfy"
)

// Policy configures the filename check. Strict turns a submission-name
// mismatch into a rejection instead of a warning.
type Policy struct {
	AssignmentSuffix string
	SubmissionSuffix string
	Strict           bool
}

// DefaultPolicy returns the strict default naming policy.
func DefaultPolicy() Policy {
	return Policy{
		AssignmentSuffix: DefaultAssignmentSuffix,
		SubmissionSuffix: DefaultSubmissionSuffix,
		Strict:           true,
	}
}

// ExpectedSubmission derives the required submission filename from the
// assignment filename.
func (p Policy) ExpectedSubmission(assignmentFile string) string {
	return strings.TrimSuffix(assignmentFile, p.AssignmentSuffix) + p.SubmissionSuffix
}

// Check validates both filenames against the policy. The assignment suffix is
// always enforced. A submission name mismatch fails under a strict policy;
// otherwise Check returns a warning for the caller to display.
func (p Policy) Check(assignmentFile, submissionFile string) (warning string, err error) {
	if !strings.HasSuffix(assignmentFile, p.AssignmentSuffix) {
		return "", verdict.Errorf(verdict.FilenameConvention,
			"The assignment file must end with '%s'.", p.AssignmentSuffix)
	}

	expected := p.ExpectedSubmission(assignmentFile)
	if submissionFile != expected {
		msg := fmt.Sprintf("The submission file must be named '%s'.", expected)
		if p.Strict {
			return "", &verdict.Error{Code: verdict.FilenameConvention, Message: msg}
		}
		return "WARNING: " + msg, nil
	}

	return "", nil
}
