package naming

import "strings"

// IsCompositeOutput reports whether filename (a base name, not a path) is a
// composite output: "merged.png" or "merged-YY-MM-DD.png" where each date
// segment is exactly two ASCII digits.
func IsCompositeOutput(filename string) bool {
	if filename == OutputPrefix+OutputExt {
		return true
	}

	const lead = OutputPrefix + "-"
	if !strings.HasPrefix(filename, lead) || !strings.HasSuffix(filename, OutputExt) {
		return false
	}
	if len(filename) < len(lead)+len(OutputExt) {
		return false
	}
	return isDateToken(filename[len(lead) : len(filename)-len(OutputExt)])
}

// isDateToken matches "dd-dd-dd".
func isDateToken(s string) bool {
	if len(s) != 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 2, 5:
			if s[i] != '-' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}
