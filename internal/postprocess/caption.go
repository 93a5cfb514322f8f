package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	captionInk    = image.NewUniform(color.NRGBA{240, 240, 240, 255})
	captionShadow = image.NewUniform(color.NRGBA{0, 0, 0, 200})
)

// Caption draws text along the bottom-left edge of img with a one-pixel
// drop shadow. Text that does not fit is clipped by the image bounds.
func Caption(img *image.NRGBA, text string) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	b := img.Bounds()
	descent := face.Metrics().Descent.Ceil()
	x := b.Min.X + 4
	y := b.Max.Y - 4 - descent

	d := font.Drawer{Dst: img, Face: face}

	d.Src = captionShadow
	d.Dot = fixed.P(x+1, y+1)
	d.DrawString(text)

	d.Src = captionInk
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
