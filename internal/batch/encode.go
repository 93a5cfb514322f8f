package batch

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Encode writes img to w in the named format (webp, png or tga).
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "webp":
		err = nativewebp.Encode(w, img, nil)
	case "png":
		err = png.Encode(w, img)
	case "tga":
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("batch: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("batch: %s encode: %w", format, err)
	}
	return nil
}
