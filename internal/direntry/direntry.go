// Package direntry defines the uniform filesystem-entry record produced by
// the crawler and consumed by the ingest pipeline and directory listings.
package direntry

import (
	"os"
	"path/filepath"
	"strings"
)

// Entry is a normalized view of one filesystem path: a file, directory, or
// symlink, with the metadata the index and UI need and nothing else.
type Entry struct {
	Name        string
	Path        string
	IsDir       bool
	IsSymlink   bool
	Size        int64
	Modified    int64
	Permissions string
	Owner       uint32
	Group       uint32
	Extension   string // empty when absent
	Hidden      bool
}

// Contents is the result of listing one directory.
type Contents struct {
	Path       string
	Parent     string // empty when path has no parent
	Entries    []Entry
	TotalItems int
	TotalSize  int64
}

// Build produces an Entry for path. It stats the entry itself via Lstat, and
// if the entry is a symlink, additionally stats the target to resolve
// IsDir/Size. A failure to stat the target is not fatal: the entry is kept
// with IsDir=false and the size of the link itself.
func Build(path string) (Entry, bool) {
	lfi, err := os.Lstat(path)
	if err != nil {
		return Entry{}, false
	}

	isSymlink := lfi.Mode()&os.ModeSymlink != 0

	target := lfi
	if isSymlink {
		if tfi, err := os.Stat(path); err == nil {
			target = tfi
		}
	}

	isDir := target.IsDir()

	var size int64
	if !isDir {
		size = target.Size()
	}

	name := filepath.Base(path)
	hidden := strings.HasPrefix(name, ".")

	var ext string
	if !isDir {
		ext = extensionOf(name)
	}

	owner, group := ownerGroup(lfi)

	return Entry{
		Name:        name,
		Path:        path,
		IsDir:       isDir,
		IsSymlink:   isSymlink,
		Size:        size,
		Modified:    lfi.ModTime().Unix(),
		Permissions: permString(lfi.Mode(), isDir),
		Owner:       owner,
		Group:       group,
		Extension:   ext,
		Hidden:      hidden,
	}, true
}

// extensionOf returns the lowercased suffix after name's last '.', mirroring
// Rust's Path::extension(): a leading dot with no further dot (".gitignore",
// ".secret") is a dotfile with no extension, not an extension of its own.
func extensionOf(name string) string {
	lastDot := strings.LastIndexByte(name, '.')
	if lastDot <= 0 || lastDot == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[lastDot+1:])
}

// permString renders a 10-character POSIX permission string, e.g. "drwxr-xr-x".
func permString(mode os.FileMode, isDir bool) string {
	var b strings.Builder
	b.Grow(10)

	if isDir {
		b.WriteByte('d')
	} else {
		b.WriteByte('-')
	}

	perm := mode.Perm()
	bits := [9]struct {
		mask os.FileMode
		ch   byte
	}{
		{0400, 'r'}, {0200, 'w'}, {0100, 'x'},
		{0040, 'r'}, {0020, 'w'}, {0010, 'x'},
		{0004, 'r'}, {0002, 'w'}, {0001, 'x'},
	}
	for _, bit := range bits {
		if perm&bit.mask != 0 {
			b.WriteByte(bit.ch)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
