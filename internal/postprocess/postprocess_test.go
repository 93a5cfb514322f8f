package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestDownsampleKeepsColor(t *testing.T) {
	want := color.NRGBA{200, 40, 90, 255}
	out := Downsample(solid(64, want), 32)
	if b := out.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("Downsample size = %v", b)
	}
	for _, p := range []image.Point{{0, 0}, {16, 16}, {31, 31}} {
		got := out.NRGBAAt(p.X, p.Y)
		if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) || !near(got.A, want.A) {
			t.Errorf("pixel %v = %v, want ~%v", p, got, want)
		}
	}
}

func TestDownsampleNoHalo(t *testing.T) {
	// Left half opaque white, right half fully transparent black.
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 32; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	out := Downsample(src, 32)
	for x := 0; x < 32; x++ {
		c := out.NRGBAAt(x, 16)
		if c.A > 16 && c.R < 240 {
			t.Fatalf("edge pixel %d darkened: %v", x, c)
		}
	}
}

func TestDownsampleSmallIsNoop(t *testing.T) {
	img := solid(16, color.NRGBA{1, 2, 3, 255})
	if out := Downsample(img, 32); out != img {
		t.Fatal("Downsample should return small images unchanged")
	}
}

func TestCaptionDrawsBottomLeft(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 128, 64))
	Caption(img, "1+0i+0j+0k")

	var top, bottom int
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			if img.NRGBAAt(x, y).A == 0 {
				continue
			}
			if y < 32 {
				top++
			} else {
				bottom++
			}
		}
	}
	if bottom == 0 {
		t.Fatal("caption drew nothing in the bottom half")
	}
	if top != 0 {
		t.Fatalf("caption drew %d pixels in the top half", top)
	}
}

func TestCaptionEmpty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	Caption(img, "")
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("empty caption modified the image")
		}
	}
}
