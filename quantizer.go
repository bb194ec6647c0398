package circleizer

import (
	"fmt"
	"math"
	"math/bits"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// Region is the box [Min, Max) over histogram bins, axes ordered R, G, B.
type Region struct {
	Min, Max [3]int
}

func (r Region) dims() [3]int {
	return [3]int{r.Max[0] - r.Min[0], r.Max[1] - r.Min[1], r.Max[2] - r.Min[2]}
}

// Volume is the number of bins in the box.
func (r Region) Volume() int {
	d := r.dims()
	return d[0] * d[1] * d[2]
}

// split cuts the box along axis at bin coordinate at.
func (r Region) split(axis, at int) (lo, hi Region) {
	lo, hi = r, r
	lo.Max[axis] = at
	hi.Min[axis] = at
	return lo, hi
}

// Color is the midpoint of the box in channel space.
func (r Region) Color(binWidth int) colorful.Color {
	var c [3]uint8
	for axis := 0; axis < 3; axis++ {
		mid := (r.Max[axis]*binWidth+r.Min[axis]*binWidth)/2 - 1
		c[axis] = uint8(max(0, min(255, mid)))
	}
	return rgb255(c[0], c[1], c[2])
}

func (r Region) String() string {
	return fmt.Sprintf("(%d-%d, %d-%d, %d-%d)", r.Min[0], r.Max[0], r.Min[1], r.Max[1], r.Min[2], r.Max[2])
}

// RegionNode is one box of the split tree. Children index into
// RegionTree.Nodes and are -1 for leaves.
type RegionNode struct {
	Region
	Target   int
	Children [2]int
}

func (n RegionNode) Leaf() bool {
	return n.Children[0] < 0
}

// RegionTree is an arena of nodes; Nodes[0] is the whole cube.
type RegionTree struct {
	Nodes []RegionNode
}

// Leaves returns the leaf boxes in left-to-right order.
func (t *RegionTree) Leaves() []Region {
	var out []Region
	var walk func(i int)
	walk = func(i int) {
		n := t.Nodes[i]
		if n.Leaf() {
			out = append(out, n.Region)
			return
		}
		walk(n.Children[0])
		walk(n.Children[1])
	}
	if len(t.Nodes) > 0 {
		walk(0)
	}
	return out
}

// Palette converts the leaves to colors, in leaf order.
func (t *RegionTree) Palette(binWidth int) []colorful.Color {
	leaves := t.Leaves()
	palette := make([]colorful.Color, len(leaves))
	for i, r := range leaves {
		palette[i] = r.Color(binWidth)
	}
	return palette
}

// Quantize splits the cube into colorCount population balanced regions and
// returns their centers.
func Quantize(cube *HistogramCube, colorCount int) ([]colorful.Color, error) {
	tree, err := Partition(cube, colorCount)
	if err != nil {
		return nil, err
	}
	return tree.Palette(cube.BinWidth), nil
}

// Partition builds the split tree for colorCount leaves.
func Partition(cube *HistogramCube, colorCount int) (*RegionTree, error) {
	if colorCount < 1 {
		return nil, paramError("colorCount", colorCount, "must be at least 1")
	}
	if colorCount > cube.Cells() {
		return nil, paramError("colorCount", colorCount, fmt.Sprintf("exceeds the %d histogram cells", cube.Cells()))
	}
	res := cube.Resolution
	q := &partitioner{
		cube: cube,
		tree: &RegionTree{},
		memo: make(map[[4]int]bool),
	}
	q.tree.Nodes = append(q.tree.Nodes, RegionNode{
		Region:   Region{Max: [3]int{res, res, res}},
		Target:   colorCount,
		Children: [2]int{-1, -1},
	})
	if !q.splittable(q.tree.Nodes[0].dims(), colorCount) {
		return nil, paramError("colorCount", colorCount, fmt.Sprintf("cannot be split out of a %d^3 histogram", res))
	}
	if err := q.divide(0); err != nil {
		return nil, err
	}
	return q.tree, nil
}

type partitioner struct {
	cube *HistogramCube
	tree *RegionTree
	memo map[[4]int]bool
}

type boundary struct {
	axis, at int
}

func (q *partitioner) divide(idx int) error {
	node := q.tree.Nodes[idx]
	d := node.Target
	if d == 1 {
		return nil
	}
	d0 := d/2 + d%2
	d1 := d / 2
	// An odd target makes the first side intentionally larger.
	desired := float64(d0) / float64(d1)

	proj, total := q.cube.projections(node.Region)
	var diffs []float64
	var cands []boundary
	for axis := 0; axis < 3; axis++ {
		pro := 0
		for i := 0; i < len(proj[axis])-1; i++ {
			pro += proj[axis][i]
			anti := total - pro
			diff := math.Abs(float64(pro)/float64(anti) - desired)
			at := node.Min[axis] + i + 1
			lo, hi := node.split(axis, at)
			if !q.splittable(lo.dims(), d0) || !q.splittable(hi.dims(), d1) {
				diff = math.Inf(1)
			}
			diffs = append(diffs, diff)
			cands = append(cands, boundary{axis: axis, at: at})
		}
	}
	if len(diffs) == 0 {
		return paramError("colorCount", d, "exceeds the cells of region "+node.String())
	}
	best := floats.MinIdx(diffs)
	if math.IsInf(diffs[best], 1) {
		return paramError("colorCount", d, "has no valid split of region "+node.String())
	}

	lo, hi := node.split(cands[best].axis, cands[best].at)
	first := len(q.tree.Nodes)
	q.tree.Nodes = append(q.tree.Nodes,
		RegionNode{Region: lo, Target: d0, Children: [2]int{-1, -1}},
		RegionNode{Region: hi, Target: d1, Children: [2]int{-1, -1}},
	)
	q.tree.Nodes[idx].Children = [2]int{first, first + 1}
	if err := q.divide(first); err != nil {
		return err
	}
	return q.divide(first + 1)
}

// splittable reports whether a box of the given dimensions can be cut into
// d leaves by repeated ceil/floor halving of the target.
func (q *partitioner) splittable(dims [3]int, d int) bool {
	if d <= 1 {
		return true
	}
	if dims[0]*dims[1]*dims[2] < d {
		return false
	}
	// Halving the longest power-of-two extent always works up to this bound.
	capacity := 1 << (bits.Len(uint(dims[0])) + bits.Len(uint(dims[1])) + bits.Len(uint(dims[2])) - 3)
	if d <= capacity {
		return true
	}
	sorted := dims
	slices.Sort(sorted[:])
	key := [4]int{sorted[0], sorted[1], sorted[2], d}
	if ok, seen := q.memo[key]; seen {
		return ok
	}
	ok := false
search:
	for axis := 0; axis < 3; axis++ {
		for k := 1; k < dims[axis]; k++ {
			lo, hi := dims, dims
			lo[axis] = k
			hi[axis] = dims[axis] - k
			if q.splittable(lo, d/2+d%2) && q.splittable(hi, d/2) {
				ok = true
				break search
			}
		}
	}
	q.memo[key] = ok
	return ok
}
