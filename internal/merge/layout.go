package merge

import "image"

// Layout is the arrangement of sources on the canvas.
type Layout int

const (
	// Stacked places images top to bottom at a shared width.
	Stacked Layout = iota
	// SideBySide places images left to right at a shared height.
	SideBySide
)

func (l Layout) String() string {
	if l == SideBySide {
		return "side-by-side"
	}
	return "stacked"
}

// SourceImage is a decoded input together with the path it came from.
type SourceImage struct {
	Path  string
	Image image.Image
}

// Width returns the pixel width of the decoded image.
func (s SourceImage) Width() int { return s.Image.Bounds().Dx() }

// Height returns the pixel height of the decoded image.
func (s SourceImage) Height() int { return s.Image.Bounds().Dy() }

// IsVertical reports whether img is strictly taller than it is wide.
// Square images are not vertical.
func IsVertical(img image.Image) bool {
	b := img.Bounds()
	return b.Dy() > b.Dx()
}

// OrientationTally counts vertical and non-vertical sources.
type OrientationTally struct {
	Vertical    int
	NonVertical int
}

// Tally classifies every image once.
func Tally(images []SourceImage) OrientationTally {
	var t OrientationTally
	for _, s := range images {
		if IsVertical(s.Image) {
			t.Vertical++
		} else {
			t.NonVertical++
		}
	}
	return t
}

// Layout picks SideBySide when vertical images are the strict majority.
// Ties go to Stacked.
func (t OrientationTally) Layout() Layout {
	if t.Vertical > t.NonVertical {
		return SideBySide
	}
	return Stacked
}

// SelectLayout is shorthand for Tally(images).Layout().
func SelectLayout(images []SourceImage) Layout {
	return Tally(images).Layout()
}
