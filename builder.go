package circleizer

import (
	"image"
	"log"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Options struct {
	// Grid cell size in pixels, also the smallest bubble diameter.
	// Ideal start: 4. Lower => finer mosaic and many more bubbles.
	MinDiameter int
	// Ratio between successive bubble sizes, at least 2.
	// Also sets the largest bubble: the biggest power of it that fits.
	SizeExponent int
	// Palette size when no palette is supplied.
	// Ideal start: 8. Any value up to HistogramResolution^3 is valid.
	ColorCount int
	// Bins per channel of the histogram cube, 1-256.
	// Ideal start: 32. Powers of two split most evenly.
	HistogramResolution int
	// How bubble sizes step down to 1.
	SizePolicy SizePolicy
	// Drawn behind the bubbles.
	Background colorful.Color
	// Stage progress goes here. nil => silent.
	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		MinDiameter:         4,
		SizeExponent:        2,
		ColorCount:          8,
		HistogramResolution: 32,
		SizePolicy:          SizePolicyExponential,
		Background:          DefaultBackground,
	}
}

// OptionsFromSize picks a MinDiameter that gives roughly 128 grid cells
// along the short side of the image.
func OptionsFromSize(size image.Point) Options {
	opt := DefaultOptions()
	if size.X <= 0 || size.Y <= 0 {
		return opt
	}
	opt.MinDiameter = max(1, min(size.X, size.Y)/128)
	return opt
}

// Validate checks ranges only; whether ColorCount fits the histogram is
// checked when a palette has to be derived.
func (o Options) Validate() error {
	if o.MinDiameter < 1 {
		return paramError("minDiameter", o.MinDiameter, "must be at least 1")
	}
	if o.SizeExponent < 2 {
		return paramError("sizeExponent", o.SizeExponent, "must be at least 2 for the schedule to reach 1")
	}
	if o.ColorCount < 1 {
		return paramError("colorCount", o.ColorCount, "must be at least 1")
	}
	if o.HistogramResolution < 1 || o.HistogramResolution > 256 {
		return paramError("histogramResolution", o.HistogramResolution, "must be in 1..256")
	}
	if o.SizePolicy != SizePolicyExponential && o.SizePolicy != SizePolicyLinear {
		return paramError("sizePolicy", int(o.SizePolicy), "is not a known policy")
	}
	return nil
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

type Circleizer struct {
	InputImage image.Image
	Palette    []colorful.Color
	Cube       *HistogramCube
	Regions    *RegionTree
	Grid       *SampleGrid
	Sizes      []int
	Bubbles    []Bubble

	fixedPalette bool
	opt          Options
}

// NewCircleizer prepares a run over input. A non-empty palette is used as
// is and the palette quantizer is skipped.
func NewCircleizer(input image.Image, palette []colorful.Color) *Circleizer {
	return &Circleizer{
		InputImage:   input,
		Palette:      append([]colorful.Color(nil), palette...),
		fixedPalette: len(palette) > 0,
	}
}

func (c *Circleizer) Build(opt Options) error {
	if err := opt.Validate(); err != nil {
		return err
	}
	bounds := c.InputImage.Bounds()
	if bounds.Empty() || bounds.Dx()/opt.MinDiameter == 0 || bounds.Dy()/opt.MinDiameter == 0 {
		return ErrEmptyInput
	}
	cells := opt.HistogramResolution * opt.HistogramResolution * opt.HistogramResolution
	if !c.fixedPalette && opt.ColorCount > cells {
		return paramError("colorCount", opt.ColorCount, "exceeds histogramResolution^3")
	}
	sizes, err := SizeSchedule(bounds.Size(), opt.MinDiameter, opt.SizeExponent, opt.SizePolicy)
	if err != nil {
		return err
	}
	c.opt = opt
	c.Sizes = sizes
	c.Cube, c.Regions, c.Grid, c.Bubbles = nil, nil, nil, nil

	if !c.fixedPalette {
		if err := c.extractPalette(); err != nil {
			return err
		}
	}
	opt.logf("palette: %s", paletteHex(c.Palette))

	c.Grid, err = NewSampleGrid(c.InputImage, c.Palette, opt.MinDiameter)
	if err != nil {
		return err
	}
	opt.logf("sample grid: %dx%d cells of %dpx", c.Grid.W, c.Grid.H, opt.MinDiameter)

	opt.logf("size schedule (%v): %v", opt.SizePolicy, sizes)
	for _, size := range sizes {
		placed := PackSizes(c.Grid, []int{size})
		c.Bubbles = append(c.Bubbles, placed...)
		if len(placed) > 0 {
			opt.logf("   size %d: %d bubbles", size, len(placed))
		}
	}
	opt.logf("bubbles: %d covering %d/%d cells", len(c.Bubbles), c.Grid.CoveredCount(), c.Grid.W*c.Grid.H)
	return nil
}

// ============ PALETTE ============

func (c *Circleizer) extractPalette() error {
	var err error
	c.Cube, err = NewHistogramCube(c.InputImage, c.opt.HistogramResolution)
	if err != nil {
		return err
	}
	c.opt.logf("color cube: %d cells, %d pixels", c.Cube.Cells(), c.Cube.Pixels)
	c.Regions, err = Partition(c.Cube, c.opt.ColorCount)
	if err != nil {
		return err
	}
	for _, r := range c.Regions.Leaves() {
		c.opt.logf("   region %v -> %s", r, r.Color(c.Cube.BinWidth).Hex())
	}
	c.Palette = c.Regions.Palette(c.Cube.BinWidth)
	return nil
}

// ExtractPalette derives colorCount colors from img with a histogram of the
// given resolution.
func ExtractPalette(img image.Image, colorCount, resolution int) ([]colorful.Color, error) {
	cube, err := NewHistogramCube(img, resolution)
	if err != nil {
		return nil, err
	}
	return Quantize(cube, colorCount)
}

func paletteHex(palette []colorful.Color) string {
	hex := make([]string, len(palette))
	for i, p := range palette {
		hex[i] = p.Hex()
	}
	return strings.Join(hex, " ")
}

// ============ OUTPUT ============

// Render composites the bubbles of the last Build over the background.
func (c *Circleizer) Render() *image.RGBA {
	return Render(c.Bubbles, c.Palette, c.opt.MinDiameter, c.InputImage.Bounds(), c.opt.Background)
}

// Circleize runs the whole pipeline on img and returns the mosaic.
func Circleize(img image.Image, opt Options) (*image.RGBA, error) {
	c := NewCircleizer(img, nil)
	if err := c.Build(opt); err != nil {
		return nil, err
	}
	return c.Render(), nil
}
