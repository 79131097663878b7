package naming

import (
	"path/filepath"
	"time"
)

const (
	// OutputPrefix is the stem shared by every composite output file.
	OutputPrefix = "merged"
	// OutputExt is the extension of the single raster format composites use.
	OutputExt = ".png"

	dateLayout = "06-01-02"
)

// OutputName returns the composite filename for a set of sources whose most
// recent timestamp is latest, e.g. "merged-24-01-15.png". The date is taken
// in the local time zone.
func OutputName(latest time.Time) string {
	return OutputPrefix + "-" + latest.Local().Format(dateLayout) + OutputExt
}

// OutputPath joins dir with [OutputName].
func OutputPath(dir string, latest time.Time) string {
	return filepath.Join(dir, OutputName(latest))
}
