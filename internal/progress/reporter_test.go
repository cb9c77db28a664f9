package progress

import (
	"bytes"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "/nosotros")
	r.Finish()

	want := "exporting 2 files\n[1/2] /nosotros\nexport complete\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*LineReporter); !ok {
		t.Error("expected LineReporter under CI")
	}
}

func TestBarReporterBeforeStart(t *testing.T) {
	// Update and Finish before Start must not panic.
	r := &BarReporter{Out: &bytes.Buffer{}}
	r.Update(1, "/")
	r.Finish()
}
