// Package verdict defines the failure taxonomy shared by all checking stages
// and renders the final accept/reject verdict text.
package verdict

import "fmt"

// Code identifies which check a submission failed.
type Code int

const (
	Unknown Code = iota

	// Filename policy
	FilenameConvention

	// Marker extraction
	DuplicateBegin
	DuplicateEnd
	UnmatchedEnd
	UnmatchedBegin
	OverlappingTags

	// Tag set comparison
	MissingTags
	ExtraTags
	OrderMismatch

	// Segment comparison
	ContentModified

	// Merge
	TagMissingInSubmission
)

// Error is a check failure with its taxonomy code. Every stage fails fast
// with one of these; the orchestrator turns it into the REJECTED verdict
// instead of propagating it further.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds an Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the taxonomy code of err, or Unknown for foreign errors.
func CodeOf(err error) Code {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return Unknown
}

// Accepted is the verdict for a submission that passed every check.
func Accepted() string {
	return "The submission is ACCEPTED."
}

// Rejected is the verdict for a submission that failed a check.
func Rejected(err error) string {
	return fmt.Sprintf("The submission is REJECTED.\n%v", err)
}
