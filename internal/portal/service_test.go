package portal

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/godbus/dbus/v5"
)

// fakePicker writes a shell script that emits the given protocol lines and
// exits with the given code, standing in for the real picker binary.
func fakePicker(t *testing.T, lines []string, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake picker script assumes a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fake-picker.sh")

	script := "#!/bin/sh\n"
	for _, l := range lines {
		script += "echo '" + l + "'\n"
	}
	script += "exit " + itoa(exitCode) + "\n"

	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

// fakePickerCapturingArgs is like fakePicker but also records its argv, one
// argument per line, to a file the test can inspect afterward.
func fakePickerCapturingArgs(t *testing.T, lines []string, exitCode int) (binPath, argsPath string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake picker script assumes a POSIX shell")
	}

	dir := t.TempDir()
	binPath = filepath.Join(dir, "fake-picker.sh")
	argsPath = filepath.Join(dir, "args.txt")

	script := "#!/bin/sh\n"
	script += `printf '%s\n' "$@" > ` + argsPath + "\n"
	for _, l := range lines {
		script += "echo '" + l + "'\n"
	}
	script += "exit " + itoa(exitCode) + "\n"

	if err := os.WriteFile(binPath, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return binPath, argsPath
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}

func TestOpenFileCancelledReturnsEmptyReply(t *testing.T) {
	svc := &Service{hardborePath: fakePicker(t, []string{"HARDBORE_CANCELLED"}, 1)}

	code, results, dbusErr := svc.OpenFile("/handle", "app", "", "title", map[string]dbus.Variant{})
	if dbusErr != nil {
		t.Fatalf("unexpected dbus error: %v", dbusErr)
	}
	if code != ResponseCancelled {
		t.Errorf("code = %d, want ResponseCancelled", code)
	}
	if len(results) != 0 {
		t.Errorf("expected empty results, got %v", results)
	}
}

func TestOpenFileSelectionReturnsURIs(t *testing.T) {
	svc := &Service{hardborePath: fakePicker(t, []string{"HARDBORE_SELECTED:/tmp/a.txt"}, 0)}

	code, results, dbusErr := svc.OpenFile("/handle", "app", "", "title", map[string]dbus.Variant{})
	if dbusErr != nil {
		t.Fatalf("unexpected dbus error: %v", dbusErr)
	}
	if code != ResponseSuccess {
		t.Fatalf("code = %d, want ResponseSuccess", code)
	}

	v, ok := results["uris"]
	if !ok {
		t.Fatal("expected a uris key in results")
	}
	uris, ok := v.Value().([]string)
	if !ok || len(uris) != 1 || uris[0] != "file:///tmp/a.txt" {
		t.Errorf("uris = %v", v.Value())
	}
}

// TestOpenFileFiltersOptionTranslatesToTypesFlag exercises scenario S8 end
// to end through OpenFile: a "filters" option built as plain []interface{}
// nesting at every level (the shape decodeFiltersGeneric handles, not the
// [][]interface{} shape decodeFilters checks first) must still reach the
// spawned picker as "--types png,jpg".
func TestOpenFileFiltersOptionTranslatesToTypesFlag(t *testing.T) {
	binPath, argsPath := fakePickerCapturingArgs(t, []string{"HARDBORE_CANCELLED"}, 1)
	svc := &Service{hardborePath: binPath}

	filters := []interface{}{
		[]interface{}{
			"Images",
			[]interface{}{
				[]interface{}{uint32(0), "*.png"},
				[]interface{}{uint32(0), "*.jpg"},
			},
		},
	}
	options := map[string]dbus.Variant{
		"filters": dbus.MakeVariant(filters),
	}

	_, _, dbusErr := svc.OpenFile("/handle", "app", "", "title", options)
	if dbusErr != nil {
		t.Fatalf("unexpected dbus error: %v", dbusErr)
	}

	raw, err := os.ReadFile(argsPath)
	if err != nil {
		t.Fatalf("reading captured args: %v", err)
	}
	args := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")

	var gotTypes string
	for i, a := range args {
		if a == "--types" && i+1 < len(args) {
			gotTypes = args[i+1]
		}
	}
	if gotTypes != "png,jpg" {
		t.Errorf("--types = %q, want %q (args=%v)", gotTypes, "png,jpg", args)
	}
}

func TestSaveFilesNoNamesReturnsDirectoryURI(t *testing.T) {
	svc := &Service{hardborePath: fakePicker(t, []string{"HARDBORE_SELECTED:/tmp/dest"}, 0)}

	code, results, dbusErr := svc.SaveFiles("/handle", "app", "", "title", map[string]dbus.Variant{})
	if dbusErr != nil {
		t.Fatalf("unexpected dbus error: %v", dbusErr)
	}
	if code != ResponseSuccess {
		t.Fatalf("code = %d, want ResponseSuccess", code)
	}
	uris := results["uris"].Value().([]string)
	if len(uris) != 1 || uris[0] != "file:///tmp/dest" {
		t.Errorf("uris = %v", uris)
	}
}
