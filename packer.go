package circleizer

import (
	"image"
	"math"
	"strings"
)

// SizePolicy selects how bubble sizes step down from the largest size to 1.
type SizePolicy int

const (
	// SizePolicyExponential divides the size by the exponent each step.
	SizePolicyExponential SizePolicy = iota
	// SizePolicyLinear visits every integer size. Slower, finer.
	SizePolicyLinear
)

func (p SizePolicy) String() string {
	switch p {
	case SizePolicyExponential:
		return "exponential"
	case SizePolicyLinear:
		return "linear"
	default:
		return "unknown"
	}
}

func ParseSizePolicy(s string) (SizePolicy, error) {
	switch strings.ToLower(s) {
	case "exponential", "exp":
		return SizePolicyExponential, nil
	case "linear", "lin":
		return SizePolicyLinear, nil
	}
	return 0, paramError("sizePolicy", s, "must be exponential or linear")
}

// Bubble is a disk of Size grid cells whose bounding box starts at grid
// cell (X, Y), drawn with palette color ColorIndex.
type Bubble struct {
	X, Y       int
	Size       int
	ColorIndex int
}

// Cells returns the grid cells claimed by the bubble.
func (b Bubble) Cells() []image.Point {
	mask := diskMask(b.Size)
	out := make([]image.Point, len(mask))
	for i, p := range mask {
		out[i] = p.Add(image.Pt(b.X, b.Y))
	}
	return out
}

// LargestSize returns the biggest power of exponent (in grid cells) whose
// next multiple would reach either image dimension.
// The bound is checked by division so extreme exponents cannot overflow.
func LargestSize(imageSize image.Point, minDiameter, exponent int) int {
	limit := min(imageSize.X, imageSize.Y)
	size := 1
	for minDiameter > 0 && exponent > 0 && size <= (limit-1)/minDiameter/exponent {
		size *= exponent
	}
	return size
}

// SizeSchedule lists the bubble sizes to try, largest first, ending at 1.
func SizeSchedule(imageSize image.Point, minDiameter, exponent int, policy SizePolicy) ([]int, error) {
	if minDiameter < 1 {
		return nil, paramError("minDiameter", minDiameter, "must be at least 1")
	}
	if exponent < 2 {
		return nil, paramError("sizeExponent", exponent, "must be at least 2 for the schedule to reach 1")
	}
	var sizes []int
	switch policy {
	case SizePolicyExponential:
		for s := LargestSize(imageSize, minDiameter, exponent); s >= 1; s /= exponent {
			sizes = append(sizes, s)
		}
	case SizePolicyLinear:
		for s := LargestSize(imageSize, minDiameter, exponent); s >= 1; s-- {
			sizes = append(sizes, s)
		}
	default:
		return nil, paramError("sizePolicy", int(policy), "is not a known policy")
	}
	return sizes, nil
}

// diskMask lists the cells of a size x size box that count as inside the
// disk inscribed in it. A cell is inside when any of its four corners lies
// strictly within the radius of the box center. The cell holding the center
// is always inside, which is what lets a unit disk claim its own cell.
func diskMask(size int) []image.Point {
	radius2 := (float64(size) / 2) * (float64(size) / 2)
	mid := float64(size) / 2
	center := image.Pt(int(math.Floor(mid)), int(math.Floor(mid)))
	var mask []image.Point
	for xx := 0; xx < size; xx++ {
		for yy := 0; yy < size; yy++ {
			dx0 := mid - float64(xx)
			dx1 := mid - float64(xx+1)
			dy0 := mid - float64(yy)
			dy1 := mid - float64(yy+1)
			inside := dx0*dx0+dy0*dy0 < radius2 ||
				dx0*dx0+dy1*dy1 < radius2 ||
				dx1*dx1+dy1*dy1 < radius2 ||
				dx1*dx1+dy0*dy0 < radius2
			if inside || image.Pt(xx, yy) == center {
				mask = append(mask, image.Pt(xx, yy))
			}
		}
	}
	return mask
}

// Pack covers grid with bubbles using the size schedule derived from the
// grid's image size.
func Pack(grid *SampleGrid, sizeExponent int, policy SizePolicy) ([]Bubble, error) {
	sizes, err := SizeSchedule(grid.ImageSize, grid.MinDiameter, sizeExponent, policy)
	if err != nil {
		return nil, err
	}
	return PackSizes(grid, sizes), nil
}

// PackSizes greedily places the largest single-color disks that fit over
// the uncovered cells of grid, size class by size class, and marks their
// cells covered. Origins are scanned column by column. With a schedule
// ending at 1 every cell ends up in exactly one bubble.
func PackSizes(grid *SampleGrid, sizes []int) []Bubble {
	var bubbles []Bubble
	for _, size := range sizes {
		if size < 1 {
			continue
		}
		mask := diskMask(size)
		for x := 0; x+size <= grid.W; x++ {
			for y := 0; y+size <= grid.H; y++ {
				if grid.IsCovered(x+size/2, y+size/2) {
					continue
				}
				ref := grid.At(x, y)
				if !grid.fits(x, y, mask, ref) {
					continue
				}
				for _, p := range mask {
					grid.Covered[grid.offset(x+p.X, y+p.Y)] = true
				}
				bubbles = append(bubbles, Bubble{X: x, Y: y, Size: size, ColorIndex: ref})
			}
		}
	}
	return bubbles
}

func (g *SampleGrid) fits(x, y int, mask []image.Point, ref int) bool {
	for _, p := range mask {
		i := g.offset(x+p.X, y+p.Y)
		if g.Covered[i] || g.Index[i] != ref {
			return false
		}
	}
	return true
}
