package circleizer

import (
	"image"
	"image/color"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// quadrantImage is 4x4 with a red top-left 2x2 quadrant and blue elsewhere.
func quadrantImage() *image.RGBA {
	img := uniformImage(4, 4, blue)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, red)
		}
	}
	return img
}

// patchImage paints blocks of block x block pixels with colors from a small
// set picked by a fixed hash of the block position.
func patchImage(w, h, block int) *image.RGBA {
	colors := []color.RGBA{
		red,
		blue,
		{R: 20, G: 200, B: 40, A: 255},
		{R: 250, G: 250, B: 250, A: 255},
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bx, by := x/block, y/block
			img.SetRGBA(x, y, colors[(bx*7+by*13+bx*by)%len(colors)])
		}
	}
	return img
}

func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / max(1, w-1)),
				G: uint8(y * 255 / max(1, h-1)),
				B: uint8((x + y) * 255 / max(1, w+h-2)),
				A: 255,
			})
		}
	}
	return img
}
