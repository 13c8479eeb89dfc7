package check

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"submitcheck/internal/marker"
	"submitcheck/internal/naming"
	"submitcheck/internal/verdict"
)

const assignmentText = `// Exercise 1
method Abs(x: int) returns (y: int)
// BEGIN-TODO(abs)
TODO
// END-TODO(abs)
// End of exercise
`

const acceptedSubmission = `// Exercise 1
method Abs(x: int) returns (y: int)
// BEGIN-TODO(abs)
if x < 0 { y := -x; } else { y := x; }
// END-TODO(abs)
// End of exercise
`

func mustTags(t *testing.T, text string) *marker.TagMap {
	t.Helper()
	tags, err := marker.Extract(text)
	if err != nil {
		t.Fatalf("extract tags: %v", err)
	}
	return tags
}

func TestCompareTags_Match(t *testing.T) {
	a := mustTags(t, "// BEGIN-TODO(x)\n// END-TODO(x)\n// BEGIN-TODO(y)\n// END-TODO(y)\n")
	s := mustTags(t, "filler\n// BEGIN-TODO(x)\n// END-TODO(x)\n// BEGIN-TODO(y)\n// END-TODO(y)\n")
	if err := CompareTags(a, s); err != nil {
		t.Errorf("expected match: %v", err)
	}
}

func TestCompareTags_Missing(t *testing.T) {
	a := mustTags(t, "// BEGIN-TODO(x)\n// END-TODO(x)\n// BEGIN-TODO(y)\n// END-TODO(y)\n")
	s := mustTags(t, "// BEGIN-TODO(x)\n// END-TODO(x)\n")
	err := CompareTags(a, s)
	if err == nil {
		t.Fatal("expected error")
	}
	if verdict.CodeOf(err) != verdict.MissingTags {
		t.Errorf("expected MissingTags, got %v: %v", verdict.CodeOf(err), err)
	}
	if !strings.Contains(err.Error(), "y") {
		t.Errorf("error should list the missing tag: %v", err)
	}
}

func TestCompareTags_ListsAllMissing(t *testing.T) {
	a := mustTags(t, "// BEGIN-TODO(x)\n// END-TODO(x)\n// BEGIN-TODO(y)\n// END-TODO(y)\n// BEGIN-TODO(z)\n// END-TODO(z)\n")
	s := mustTags(t, "// BEGIN-TODO(x)\n// END-TODO(x)\n")
	err := CompareTags(a, s)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "y, z") {
		t.Errorf("expected all missing tags in one message: %v", err)
	}
}

func TestCompareTags_Extra(t *testing.T) {
	a := mustTags(t, "// BEGIN-TODO(x)\n// END-TODO(x)\n")
	s := mustTags(t, "// BEGIN-TODO(x)\n// END-TODO(x)\n// BEGIN-TODO(sneaky)\n// END-TODO(sneaky)\n")
	err := CompareTags(a, s)
	if err == nil {
		t.Fatal("expected error")
	}
	if verdict.CodeOf(err) != verdict.ExtraTags {
		t.Errorf("expected ExtraTags, got %v: %v", verdict.CodeOf(err), err)
	}
}

func TestCompareTags_OrderSensitive(t *testing.T) {
	a := mustTags(t, "// BEGIN-TODO(A)\n// END-TODO(A)\n// BEGIN-TODO(B)\n// END-TODO(B)\n")
	s := mustTags(t, "// BEGIN-TODO(B)\n// END-TODO(B)\n// BEGIN-TODO(A)\n// END-TODO(A)\n")
	err := CompareTags(a, s)
	if err == nil {
		t.Fatal("expected error for reordered tags")
	}
	if verdict.CodeOf(err) != verdict.OrderMismatch {
		t.Errorf("expected OrderMismatch, got %v: %v", verdict.CodeOf(err), err)
	}
	if !strings.Contains(err.Error(), "position 1") {
		t.Errorf("error should report the first differing position: %v", err)
	}
}

func TestTexts_Accepted(t *testing.T) {
	if err := Texts(assignmentText, acceptedSubmission); err != nil {
		t.Errorf("expected acceptance: %v", err)
	}
}

func TestTexts_AcceptsReindentedProtectedText(t *testing.T) {
	submission := strings.Replace(acceptedSubmission, "// Exercise 1", "  //   Exercise 1", 1)
	if err := Texts(assignmentText, submission); err != nil {
		t.Errorf("whitespace-only change outside markers should pass: %v", err)
	}
}

func TestTexts_ModifiedHeader(t *testing.T) {
	submission := strings.Replace(acceptedSubmission, "Exercise 1", "Exercise 2", 1)
	err := Texts(assignmentText, submission)
	if err == nil {
		t.Fatal("expected rejection")
	}
	if verdict.CodeOf(err) != verdict.ContentModified {
		t.Errorf("expected ContentModified, got %v: %v", verdict.CodeOf(err), err)
	}
}

func TestTexts_MissingTag(t *testing.T) {
	submission := "// Exercise 1\nmethod Abs(x: int) returns (y: int)\n// End of exercise\n"
	err := Texts(assignmentText, submission)
	if err == nil {
		t.Fatal("expected rejection")
	}
	if verdict.CodeOf(err) != verdict.MissingTags {
		t.Errorf("expected MissingTags, got %v: %v", verdict.CodeOf(err), err)
	}
}

func TestTexts_BrokenSubmissionMarkers(t *testing.T) {
	submission := strings.Replace(acceptedSubmission, "// END-TODO(abs)\n", "", 1)
	err := Texts(assignmentText, submission)
	if err == nil {
		t.Fatal("expected rejection")
	}
	if verdict.CodeOf(err) != verdict.UnmatchedBegin {
		t.Errorf("expected UnmatchedBegin, got %v: %v", verdict.CodeOf(err), err)
	}
}

func writeFile(t *testing.T, path, text string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFiles_Accepted(t *testing.T) {
	dir := t.TempDir()
	assignmentFile := filepath.Join(dir, "ex1-assignment.dfy")
	submissionFile := filepath.Join(dir, "ex1-submission.dfy")
	writeFile(t, assignmentFile, assignmentText)
	writeFile(t, submissionFile, acceptedSubmission)

	result, err := Files(assignmentFile, submissionFile, naming.DefaultPolicy())
	if err != nil {
		t.Fatalf("files: %v", err)
	}
	if !result.Accepted {
		t.Errorf("expected acceptance, got %q", result.Verdict())
	}
	if result.Verdict() != "The submission is ACCEPTED." {
		t.Errorf("unexpected verdict text: %q", result.Verdict())
	}
}

func TestFiles_FilenamePolicyRunsFirst(t *testing.T) {
	// Neither file needs to exist: a bad assignment suffix rejects before any read.
	result, err := Files("ex1.txt", "ex1-submission.dfy", naming.DefaultPolicy())
	if err != nil {
		t.Fatalf("files: %v", err)
	}
	if result.Accepted {
		t.Fatal("expected rejection")
	}
	if verdict.CodeOf(result.Err) != verdict.FilenameConvention {
		t.Errorf("expected FilenameConvention, got %v: %v", verdict.CodeOf(result.Err), result.Err)
	}
	if !strings.HasPrefix(result.Verdict(), "The submission is REJECTED.\n") {
		t.Errorf("unexpected verdict text: %q", result.Verdict())
	}
}

func TestFiles_LenientPolicyWarns(t *testing.T) {
	dir := t.TempDir()
	assignmentFile := filepath.Join(dir, "ex1-assignment.dfy")
	submissionFile := filepath.Join(dir, "odd-name.dfy")
	writeFile(t, assignmentFile, assignmentText)
	writeFile(t, submissionFile, acceptedSubmission)

	policy := naming.DefaultPolicy()
	policy.Strict = false

	result, err := Files(assignmentFile, submissionFile, policy)
	if err != nil {
		t.Fatalf("files: %v", err)
	}
	if !result.Accepted {
		t.Errorf("expected acceptance, got %q", result.Verdict())
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(result.Warnings))
	}
	if !strings.Contains(result.Warnings[0], "must be named") {
		t.Errorf("unexpected warning: %q", result.Warnings[0])
	}
}
