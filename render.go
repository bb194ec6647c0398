package circleizer

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498

// Render draws every bubble as an antialiased disk over background, in
// order. Bubble b covers the pixel box starting at (b.X, b.Y)*minDiameter
// with diameter b.Size*minDiameter.
func Render(bubbles []Bubble, palette []colorful.Color, minDiameter int, bounds image.Rectangle, background colorful.Color) *image.RGBA {
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(toRGBA(background)), image.Point{}, draw.Src)
	if minDiameter < 1 {
		return dst
	}

	srcs := make([]*image.Uniform, len(palette))
	for i, c := range palette {
		srcs[i] = image.NewUniform(toRGBA(c))
	}
	var z vector.Rasterizer
	for _, b := range bubbles {
		if b.ColorIndex < 0 || b.ColorIndex >= len(srcs) {
			continue
		}
		d := b.Size * minDiameter
		r := image.Rect(b.X*minDiameter, b.Y*minDiameter, b.X*minDiameter+d, b.Y*minDiameter+d).Add(bounds.Min)
		if !r.In(bounds) {
			continue
		}
		z.Reset(d, d)
		addDisk(&z, float32(d)/2)
		z.Draw(dst, r, srcs[b.ColorIndex], image.Point{})
	}
	return dst
}

// addDisk adds a circle of radius rad centered in a 2rad x 2rad canvas.
func addDisk(z *vector.Rasterizer, rad float32) {
	c := rad
	k := rad * kappa
	z.MoveTo(c+rad, c)
	z.CubeTo(c+rad, c+k, c+k, c+rad, c, c+rad)
	z.CubeTo(c-k, c+rad, c-rad, c+k, c-rad, c)
	z.CubeTo(c-rad, c-k, c-k, c-rad, c, c-rad)
	z.CubeTo(c+k, c-rad, c+rad, c-k, c+rad, c)
	z.ClosePath()
}
