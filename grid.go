package circleizer

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// SampleGrid holds one palette index per MinDiameter x MinDiameter block of
// the image. Covered only ever goes from false to true.
type SampleGrid struct {
	W, H        int
	MinDiameter int
	ImageSize   image.Point
	Index       []int  // len = W*H, row-major
	Covered     []bool // len = W*H
}

// NewSampleGrid samples the top-left pixel of every block and stores the
// nearest palette color.
func NewSampleGrid(img image.Image, palette []colorful.Color, minDiameter int) (*SampleGrid, error) {
	if minDiameter < 1 {
		return nil, paramError("minDiameter", minDiameter, "must be at least 1")
	}
	if len(palette) == 0 {
		return nil, paramError("palette", 0, "must not be empty")
	}
	bounds := img.Bounds()
	w, h := bounds.Dx()/minDiameter, bounds.Dy()/minDiameter
	if w == 0 || h == 0 {
		return nil, ErrEmptyInput
	}
	grid := &SampleGrid{
		W:           w,
		H:           h,
		MinDiameter: minDiameter,
		ImageSize:   bounds.Size(),
		Index:       make([]int, w*h),
		Covered:     make([]bool, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := pixelColor(img, bounds.Min.X+x*minDiameter, bounds.Min.Y+y*minDiameter)
			grid.Index[grid.offset(x, y)] = Nearest(palette, c)
		}
	}
	return grid, nil
}

func (g *SampleGrid) offset(x, y int) int {
	return y*g.W + x
}

// At returns the palette index of cell (x, y).
func (g *SampleGrid) At(x, y int) int {
	return g.Index[g.offset(x, y)]
}

func (g *SampleGrid) IsCovered(x, y int) bool {
	return g.Covered[g.offset(x, y)]
}

// CoveredCount is the number of cells claimed so far.
func (g *SampleGrid) CoveredCount() int {
	n := 0
	for _, c := range g.Covered {
		if c {
			n++
		}
	}
	return n
}
