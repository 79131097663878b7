package merge

import (
	"os"
	"time"
)

// LatestTimestamp returns the newest timestamp among paths. Each file
// contributes its creation time where the platform and filesystem record
// one, and its modification time otherwise. Files that cannot be stat'ed
// are ignored; if none remain the result is [ErrTimestampUnavailable].
func LatestTimestamp(paths []string) (time.Time, error) {
	var latest time.Time
	found := false
	for _, p := range paths {
		ts, err := fileTimestamp(p)
		if err != nil {
			continue
		}
		if !found || ts.After(latest) {
			latest = ts
			found = true
		}
	}
	if !found {
		return time.Time{}, ErrTimestampUnavailable
	}
	return latest, nil
}

func fileTimestamp(path string) (time.Time, error) {
	if bt, ok := birthTime(path); ok {
		return bt, nil
	}
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}
