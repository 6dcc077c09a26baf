package picker

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseArgsPickerFiles(t *testing.T) {
	cfg := ParseArgs([]string{"--picker", "--multiple", "--types", "png,jpg", "--start-dir", "/tmp"})

	if cfg.Mode != Files {
		t.Errorf("Mode = %v, want Files", cfg.Mode)
	}
	if !cfg.AllowMultiple {
		t.Error("expected AllowMultiple")
	}
	if !reflect.DeepEqual(cfg.FileTypes, []string{"png", "jpg"}) {
		t.Errorf("FileTypes = %v", cfg.FileTypes)
	}
	if cfg.StartDir != "/tmp" {
		t.Errorf("StartDir = %q", cfg.StartDir)
	}
}

func TestParseArgsPickerSaveWithCurrentName(t *testing.T) {
	cfg := ParseArgs([]string{"--picker-save", "--current-name", "report.pdf"})
	if cfg.Mode != Save {
		t.Errorf("Mode = %v, want Save", cfg.Mode)
	}
	if cfg.CurrentName != "report.pdf" {
		t.Errorf("CurrentName = %q", cfg.CurrentName)
	}
}

func TestParseArgsNoPickerFlagsIsDisabled(t *testing.T) {
	cfg := ParseArgs([]string{"serve"})
	if cfg.Mode != Disabled {
		t.Errorf("Mode = %v, want Disabled", cfg.Mode)
	}
}

func TestEmitAndParseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	EmitSelected(&buf, "/home/user/a.txt")
	EmitSelected(&buf, "/home/user/b.txt")

	got := ParseOutput(&buf)
	want := []string{"/home/user/a.txt", "/home/user/b.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseOutputCancelled(t *testing.T) {
	got := ParseOutput(strings.NewReader(CancelledLine + "\n"))
	if len(got) != 0 {
		t.Errorf("expected no selections on cancel, got %v", got)
	}
}
