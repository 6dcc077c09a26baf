package portal

import "testing"

func TestToFileURIEncodesSpacesAndUnicode(t *testing.T) {
	got := ToFileURI("/tmp/a b/ünicode.txt")
	want := "file:///tmp/a%20b/%C3%BCnicode.txt"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFileURIRoundTrip(t *testing.T) {
	paths := []string{
		"/tmp/a b/ünicode.txt",
		"/home/user/Документы/file (1).txt",
		"/simple/path.txt",
	}
	for _, p := range paths {
		uri := ToFileURI(p)
		if got := FromFileURI(uri); got != p {
			t.Errorf("round trip failed: %q -> %q -> %q", p, uri, got)
		}
	}
}

func TestEncodeSegmentPreservesUnreserved(t *testing.T) {
	seg := "abcXYZ019-_.~"
	if got := encodeSegment(seg); got != seg {
		t.Errorf("unreserved chars should pass through unchanged, got %q", got)
	}
}
