package circleizer

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// JavaColors mirrors the java.awt.Color constants.
	JavaColors = []colorful.Color{
		rgb255(0, 0, 0),       // black
		rgb255(0, 0, 255),     // blue
		rgb255(0, 255, 255),   // cyan
		rgb255(64, 64, 64),    // dark gray
		rgb255(128, 128, 128), // gray
		rgb255(0, 255, 0),     // green
		rgb255(192, 192, 192), // light gray
		rgb255(255, 0, 255),   // magenta
		rgb255(255, 200, 0),   // orange
		rgb255(255, 175, 175), // pink
		rgb255(255, 0, 0),     // red
		rgb255(255, 255, 255), // white
		rgb255(255, 255, 0),   // yellow
	}
	JavaGrayscale = []colorful.Color{
		rgb255(0, 0, 0),
		rgb255(192, 192, 192),
		rgb255(128, 128, 128),
		rgb255(64, 64, 64),
		rgb255(255, 255, 255),
	}
	JavaColoredColors = []colorful.Color{
		rgb255(0, 0, 255),
		rgb255(0, 255, 255),
		rgb255(0, 255, 0),
		rgb255(255, 0, 255),
		rgb255(255, 200, 0),
		rgb255(255, 175, 175),
		rgb255(255, 0, 0),
		rgb255(255, 255, 0),
	}

	// DefaultBackground is the light gray drawn behind the bubbles.
	DefaultBackground = rgb255(240, 240, 240)
)

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// straightRGB reads one pixel as non-premultiplied 8-bit RGB, so a
// translucent pixel keeps its color. Alpha is ignored.
func straightRGB(img image.Image, x, y int) (r, g, b uint8) {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B
}

// pixelColor reads one pixel as normalized RGB. Alpha is ignored.
func pixelColor(img image.Image, x, y int) colorful.Color {
	return rgb255(straightRGB(img, x, y))
}

// SquaredDistance is the squared Euclidean distance in RGB.
func SquaredDistance(a, b colorful.Color) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return dr*dr + dg*dg + db*db
}

// Nearest returns the index of the palette color closest to c. On equal
// distances the lowest index wins. Returns -1 for an empty palette.
func Nearest(palette []colorful.Color, c colorful.Color) int {
	best := -1
	bestD := 0.0
	for i, p := range palette {
		d := SquaredDistance(p, c)
		if best < 0 || d < bestD {
			best = i
			bestD = d
		}
	}
	return best
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
