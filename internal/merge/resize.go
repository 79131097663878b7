package merge

import (
	"image"

	"github.com/disintegration/imaging"
)

// ResizeToHeight scales img to the given height, keeping its aspect ratio.
// An image already at that height is copied unchanged.
func ResizeToHeight(img image.Image, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dy() == height {
		return imaging.Clone(img)
	}
	w := scaledDimension(height, float64(b.Dx())/float64(b.Dy()))
	return imaging.Resize(img, w, height, imaging.Lanczos)
}

// ResizeToWidth scales img to the given width, keeping its aspect ratio.
// An image already at that width is copied unchanged.
func ResizeToWidth(img image.Image, width int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width {
		return imaging.Clone(img)
	}
	h := scaledDimension(width, float64(b.Dy())/float64(b.Dx()))
	return imaging.Resize(img, width, h, imaging.Lanczos)
}

// scaledDimension truncates target*ratio, never going below one pixel.
func scaledDimension(target int, ratio float64) int {
	n := int(float64(target) * ratio)
	if n < 1 {
		n = 1
	}
	return n
}

// canvasSize predicts the composite dimensions without resizing anything.
func canvasSize(images []SourceImage, layout Layout) (width, height int) {
	if layout == SideBySide {
		for _, s := range images {
			height = max(height, s.Height())
		}
		for _, s := range images {
			if s.Height() == height {
				width += s.Width()
				continue
			}
			width += scaledDimension(height, float64(s.Width())/float64(s.Height()))
		}
		return width, height
	}
	for _, s := range images {
		width = max(width, s.Width())
	}
	for _, s := range images {
		if s.Width() == width {
			height += s.Height()
			continue
		}
		height += scaledDimension(width, float64(s.Height())/float64(s.Width()))
	}
	return width, height
}
