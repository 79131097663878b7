//go:build linux

package merge

import (
	"time"

	"golang.org/x/sys/unix"
)

// birthTime reads the creation time via statx(2). Kernels or filesystems
// that do not report STATX_BTIME return ok == false.
func birthTime(path string) (time.Time, bool) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BTIME, &stx)
	if err != nil || stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}
