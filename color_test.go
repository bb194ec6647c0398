package circleizer

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNearest(t *testing.T) {
	black := rgb255(0, 0, 0)
	white := rgb255(255, 255, 255)
	tests := []struct {
		name    string
		palette []colorful.Color
		c       colorful.Color
		want    int
	}{
		{"empty", nil, black, -1},
		{"exact", []colorful.Color{white, black}, black, 1},
		{"closer", []colorful.Color{black, white}, rgb255(200, 210, 190), 1},
		{"duplicate colors take the first", []colorful.Color{white, black, black}, black, 1},
		{"equal distance takes the first", []colorful.Color{black, white}, colorful.Color{R: 0.5, G: 0.5, B: 0.5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nearest(tt.palette, tt.c); got != tt.want {
				t.Errorf("Nearest = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSquaredDistance(t *testing.T) {
	if d := SquaredDistance(rgb255(0, 0, 0), rgb255(255, 255, 255)); d != 3 {
		t.Errorf("black-white distance = %v, want 3", d)
	}
	c := rgb255(12, 34, 56)
	if d := SquaredDistance(c, c); d != 0 {
		t.Errorf("self distance = %v, want 0", d)
	}
}

func TestJavaPalettes(t *testing.T) {
	if len(JavaColors) != 13 || len(JavaGrayscale) != 5 || len(JavaColoredColors) != 8 {
		t.Fatalf("palette sizes %d/%d/%d", len(JavaColors), len(JavaGrayscale), len(JavaColoredColors))
	}
	r, g, b := DefaultBackground.RGB255()
	if r != 240 || g != 240 || b != 240 {
		t.Errorf("background = %d,%d,%d", r, g, b)
	}
}
