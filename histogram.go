package circleizer

import (
	"image"
)

// HistogramCube is a population table over quantized RGB. Counts is a flat
// Resolution^3 array addressed by cubeOffset; every cell carries one
// pseudo-count on top of its pixel count.
type HistogramCube struct {
	Resolution int
	BinWidth   int // channel values per bin, 256/Resolution
	Pixels     int // pixel count before the pseudo-count
	Counts     []int
}

func NewHistogramCube(img image.Image, resolution int) (*HistogramCube, error) {
	if resolution < 1 || resolution > 256 {
		return nil, paramError("histogramResolution", resolution, "must be in 1..256")
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyInput
	}
	cube := &HistogramCube{
		Resolution: resolution,
		BinWidth:   256 / resolution,
		Counts:     make([]int, resolution*resolution*resolution),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := straightRGB(img, x, y)
			cube.Counts[cube.offset(cube.bin(r), cube.bin(g), cube.bin(b))]++
			cube.Pixels++
		}
	}
	for i := range cube.Counts {
		cube.Counts[i]++
	}
	return cube, nil
}

// bin maps an 8-bit channel to its bin. Resolutions that do not divide 256
// leave a remainder at the top which folds into the last bin.
func (c *HistogramCube) bin(v uint8) int {
	return min(int(v)/c.BinWidth, c.Resolution-1)
}

func (c *HistogramCube) offset(r, g, b int) int {
	return (b*c.Resolution+g)*c.Resolution + r
}

// Cells is the number of bins in the cube.
func (c *HistogramCube) Cells() int {
	return len(c.Counts)
}

// At returns the biased count of bin (r, g, b).
func (c *HistogramCube) At(r, g, b int) int {
	return c.Counts[c.offset(r, g, b)]
}

// Total is the biased population of the whole cube.
func (c *HistogramCube) Total() int {
	return c.Population(Region{Max: [3]int{c.Resolution, c.Resolution, c.Resolution}})
}

// Population sums the biased counts inside the box of r.
func (c *HistogramCube) Population(r Region) int {
	sum := 0
	for b := r.Min[2]; b < r.Max[2]; b++ {
		for g := r.Min[1]; g < r.Max[1]; g++ {
			row := c.offset(0, g, b)
			for x := r.Min[0]; x < r.Max[0]; x++ {
				sum += c.Counts[row+x]
			}
		}
	}
	return sum
}

// projections sums the region over the two other axes for every axis in a
// single pass over its volume.
func (c *HistogramCube) projections(r Region) (proj [3][]int, total int) {
	for axis := 0; axis < 3; axis++ {
		proj[axis] = make([]int, r.Max[axis]-r.Min[axis])
	}
	for b := r.Min[2]; b < r.Max[2]; b++ {
		for g := r.Min[1]; g < r.Max[1]; g++ {
			row := c.offset(0, g, b)
			for x := r.Min[0]; x < r.Max[0]; x++ {
				n := c.Counts[row+x]
				proj[0][x-r.Min[0]] += n
				proj[1][g-r.Min[1]] += n
				proj[2][b-r.Min[2]] += n
				total += n
			}
		}
	}
	return proj, total
}
