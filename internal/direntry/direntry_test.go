package direntry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildDirectory(t *testing.T) {
	dir := t.TempDir()
	e, ok := Build(dir)
	if !ok {
		t.Fatal("Build failed on existing directory")
	}
	if !e.IsDir {
		t.Error("expected IsDir")
	}
	if e.Size != 0 {
		t.Errorf("directories must report size 0, got %d", e.Size)
	}
	if e.Extension != "" {
		t.Errorf("directories must have no extension, got %q", e.Extension)
	}
}

func TestBuildHiddenFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".secret")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	e, ok := Build(p)
	if !ok {
		t.Fatal("Build failed")
	}
	if !e.Hidden {
		t.Error("expected Hidden for dotfile")
	}
	if e.Hidden != (e.Name[0] == '.') {
		t.Error("Hidden must derive from Name only")
	}
	if e.Extension != "" {
		t.Errorf("a leading-dot name with no further dot must have no extension, got %q", e.Extension)
	}
}

func TestBuildExtensionLowercased(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "README.MD")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	e, ok := Build(p)
	if !ok {
		t.Fatal("Build failed")
	}
	if e.Extension != "md" {
		t.Errorf("expected lowercased extension %q, got %q", "md", e.Extension)
	}
}

func TestBuildExtensionDottedStem(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "archive.tar.gz")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	e, ok := Build(p)
	if !ok {
		t.Fatal("Build failed")
	}
	if e.Extension != "gz" {
		t.Errorf("expected extension after the last dot, got %q", e.Extension)
	}
}

func TestBuildMissingPath(t *testing.T) {
	if _, ok := Build(filepath.Join(t.TempDir(), "does-not-exist")); ok {
		t.Error("expected Build to fail on a missing path")
	}
}

func TestSortEntriesDirsFirstThenCaseInsensitive(t *testing.T) {
	entries := []Entry{
		{Name: "B.txt", IsDir: false},
		{Name: "a.txt", IsDir: false},
		{Name: "sub", IsDir: true},
	}
	SortEntries(entries)

	want := []string{"sub", "a.txt", "B.txt"}
	for i, w := range want {
		if entries[i].Name != w {
			t.Fatalf("position %d: want %q, got %q", i, w, entries[i].Name)
		}
	}
}

func TestAggregate(t *testing.T) {
	entries := []Entry{{Size: 3}, {Size: 5}, {Size: 0, IsDir: true}}
	items, size := Aggregate(entries)
	if items != 3 {
		t.Errorf("items = %d, want 3", items)
	}
	if size != 8 {
		t.Errorf("size = %d, want 8", size)
	}
}
