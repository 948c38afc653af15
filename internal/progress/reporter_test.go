package progress

import (
	"bytes"
	"testing"
)

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}

func TestCIReporterOutput(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}

	r.Start(2)
	r.Update(1, "a.txt")
	r.Update(2, "b.txt")
	r.Finish()

	want := "Rewriting 2 email(s)\n[1/2] a.txt\n[2/2] b.txt\nEmail Spun !!\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestTerminalReporterSpinnerAndBar(t *testing.T) {
	for _, total := range []int{1, 3} {
		var buf bytes.Buffer
		r := &TerminalReporter{Out: &buf}

		r.Start(total)
		if r.bar == nil {
			t.Fatalf("total=%d: expected a bar", total)
		}
		r.Update(total, "done")
		r.Finish()
	}
}

func TestTerminalReporterWithoutStart(t *testing.T) {
	r := &TerminalReporter{}
	r.Update(1, "ignored")
	r.Finish()
}
