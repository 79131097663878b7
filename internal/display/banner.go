package display

import (
	"fmt"
	"io"

	"github.com/backmassage/picmrg/internal/term"
)

// PrintBanner writes the ASCII art banner to w, in magenta when colors
// are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `        _
 _ __  (_) ___ _ __ ___  _ __ __ _
| '_ \ | |/ __| '_ `+"`"+` _ \| '__/ _`+"`"+` |
| |_) || | (__| | | | | | | | (_| |
| .__/ |_|\___|_| |_| |_|_|  \__, |
|_|                          |___/
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
