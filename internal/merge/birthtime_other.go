//go:build !linux && !darwin && !freebsd && !windows

package merge

import "time"

func birthTime(string) (time.Time, bool) { return time.Time{}, false }
