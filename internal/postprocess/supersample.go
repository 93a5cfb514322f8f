package postprocess

import (
	"image"
	stddraw "image/draw"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled render to targetSize×targetSize.
//
// Filtering runs in premultiplied space (CatmullRom into *image.RGBA), which
// keeps transparent edges from bleeding dark halos into the result.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(premul, premul.Bounds(), img, b, draw.Src, nil)

	result := image.NewNRGBA(premul.Bounds())
	stddraw.Draw(result, result.Bounds(), premul, image.Point{}, stddraw.Src)
	return result
}
