package document

import "testing"

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single line no newline", "a", []string{"a"}},
		{"trailing newline ignored", "a\nb\n", []string{"a", "b"}},
		{"blank interior line kept", "a\n\nb", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitLines(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d lines, got %d: %q", len(tc.want), len(got), got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("line %d: expected %q, got %q", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestRange(t *testing.T) {
	d := New("a\nb\nc\nd\n")
	if d.Len() != 4 {
		t.Fatalf("expected 4 lines, got %d", d.Len())
	}
	if got := d.Range(1, 3); got != "b\nc" {
		t.Errorf("expected \"b\\nc\", got %q", got)
	}
	if got := d.Range(2, 2); got != "" {
		t.Errorf("expected empty range, got %q", got)
	}
}
