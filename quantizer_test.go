package circleizer

import (
	"errors"
	"testing"
)

func TestQuantizePaletteSize(t *testing.T) {
	cube, err := NewHistogramCube(gradientImage(16, 16), 4)
	if err != nil {
		t.Fatal(err)
	}
	for n := 1; n <= cube.Cells(); n++ {
		palette, err := Quantize(cube, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(palette) != n {
			t.Fatalf("n=%d: got %d colors", n, len(palette))
		}
	}
}

func TestPartitionTree(t *testing.T) {
	cube, err := NewHistogramCube(patchImage(40, 40, 5), 16)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{1, 2, 3, 5, 7, 8, 13, 64} {
		tree, err := Partition(cube, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if leaves := tree.Leaves(); len(leaves) != n {
			t.Fatalf("n=%d: %d leaves", n, len(leaves))
		}
		for i, node := range tree.Nodes {
			if node.Leaf() {
				if node.Target != 1 {
					t.Errorf("n=%d: leaf %d has target %d", n, i, node.Target)
				}
				continue
			}
			a, b := tree.Nodes[node.Children[0]], tree.Nodes[node.Children[1]]
			if a.Target+b.Target != node.Target || a.Target < b.Target || a.Target-b.Target > 1 {
				t.Errorf("n=%d: node %d targets %d -> %d+%d", n, i, node.Target, a.Target, b.Target)
			}
			if cube.Population(a.Region)+cube.Population(b.Region) != cube.Population(node.Region) {
				t.Errorf("n=%d: node %d population not conserved", n, i)
			}
			if a.Volume()+b.Volume() != node.Volume() {
				t.Errorf("n=%d: node %d children do not tile it", n, i)
			}
			axes := 0
			for axis := 0; axis < 3; axis++ {
				if a.Max[axis] == b.Min[axis] && a.Min[axis] == node.Min[axis] && b.Max[axis] == node.Max[axis] {
					axes++
				}
			}
			if axes != 1 {
				t.Errorf("n=%d: node %d is not split along exactly one axis", n, i)
			}
		}
	}
}

func TestQuantizeSingleColor(t *testing.T) {
	cube, err := NewHistogramCube(quadrantImage(), 32)
	if err != nil {
		t.Fatal(err)
	}
	palette, err := Quantize(cube, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(palette) != 1 {
		t.Fatalf("got %d colors", len(palette))
	}
	r, g, b := palette[0].RGB255()
	if r != 127 || g != 127 || b != 127 {
		t.Errorf("center = %d,%d,%d, want 127,127,127", r, g, b)
	}
}

func TestQuantizeQuadrants(t *testing.T) {
	cube, err := NewHistogramCube(quadrantImage(), 32)
	if err != nil {
		t.Fatal(err)
	}
	palette, err := Quantize(cube, 2)
	if err != nil {
		t.Fatal(err)
	}
	// The blue side carries more pixels, so the best balance cuts blue.
	want := [][3]uint8{{127, 127, 63}, {127, 127, 191}}
	for i, c := range palette {
		r, g, b := c.RGB255()
		if [3]uint8{r, g, b} != want[i] {
			t.Errorf("palette[%d] = %d,%d,%d, want %v", i, r, g, b, want[i])
		}
	}
	if Nearest(palette, rgb255(255, 0, 0)) == Nearest(palette, rgb255(0, 0, 255)) {
		t.Error("red and blue map to the same palette color")
	}
}

func TestQuantizeInvalid(t *testing.T) {
	cube, err := NewHistogramCube(gradientImage(8, 8), 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{-3, 0, 9} {
		if _, err := Quantize(cube, n); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("n=%d: err = %v, want ErrInvalidParameter", n, err)
		}
	}

	// 27 leaves cannot come out of a 3x3x3 cube by halving: one side of the
	// first cut would need 14 cells from slabs of 9.
	odd, err := NewHistogramCube(gradientImage(8, 8), 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Quantize(odd, 27); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("27 of 3^3: err = %v, want ErrInvalidParameter", err)
	}
	if p, err := Quantize(odd, 10); err != nil || len(p) != 10 {
		t.Errorf("10 of 3^3: %d colors, err = %v", len(p), err)
	}
}

func TestRegionColorClamp(t *testing.T) {
	// At resolution 256 the lowest bin center would be -1.
	r := Region{Max: [3]int{1, 1, 1}}
	cr, cg, cb := r.Color(1).RGB255()
	if cr != 0 || cg != 0 || cb != 0 {
		t.Errorf("color = %d,%d,%d, want 0,0,0", cr, cg, cb)
	}
}
