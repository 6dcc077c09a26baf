//go:build unix

package direntry

import (
	"os"
	"syscall"
)

// ownerGroup extracts the numeric uid/gid from the platform-specific stat
// structure underlying fi. Returns 0,0 if the underlying Sys() value isn't
// the expected type (should not happen on a real unix FileInfo).
func ownerGroup(fi os.FileInfo) (uint32, uint32) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0
	}
	return st.Uid, st.Gid
}
