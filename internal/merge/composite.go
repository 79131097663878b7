package merge

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Composite resizes every source to the shared dimension of layout and
// copies them onto a fresh canvas in input order. images must be non-empty.
func Composite(images []SourceImage, layout Layout) *image.NRGBA {
	if layout == SideBySide {
		return compositeSideBySide(images)
	}
	return compositeStacked(images)
}

func compositeSideBySide(images []SourceImage) *image.NRGBA {
	height := 0
	for _, s := range images {
		height = max(height, s.Height())
	}

	resized := make([]*image.NRGBA, len(images))
	width := 0
	for i, s := range images {
		resized[i] = ResizeToHeight(s.Image, height)
		width += resized[i].Rect.Dx()
	}

	canvas := imaging.New(width, height, color.NRGBA{})
	x := 0
	for _, r := range resized {
		blit(canvas, r, image.Pt(x, 0))
		x += r.Rect.Dx()
	}
	return canvas
}

func compositeStacked(images []SourceImage) *image.NRGBA {
	width := 0
	for _, s := range images {
		width = max(width, s.Width())
	}

	resized := make([]*image.NRGBA, len(images))
	height := 0
	for i, s := range images {
		resized[i] = ResizeToWidth(s.Image, width)
		height += resized[i].Rect.Dy()
	}

	canvas := imaging.New(width, height, color.NRGBA{})
	y := 0
	for _, r := range resized {
		blit(canvas, r, image.Pt(0, y))
		y += r.Rect.Dy()
	}
	return canvas
}

// blit copies src row by row into dst with its top-left corner at at.
// Pixels are overwritten, not blended.
func blit(dst, src *image.NRGBA, at image.Point) {
	rowBytes := src.Rect.Dx() * 4
	for y := 0; y < src.Rect.Dy(); y++ {
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		di := dst.PixOffset(at.X, at.Y+y)
		copy(dst.Pix[di:di+rowBytes], src.Pix[si:si+rowBytes])
	}
}
