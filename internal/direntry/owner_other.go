//go:build !unix

package direntry

import "os"

// ownerGroup has no uid/gid concept on non-unix platforms.
func ownerGroup(fi os.FileInfo) (uint32, uint32) {
	return 0, 0
}
