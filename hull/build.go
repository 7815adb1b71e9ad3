package hull

import "sort"

// Build computes the convex hull of points with the divide and conquer
// algorithm, threading the result through the CCW and CW links of the points
// themselves. The slice is sorted in place by ascending (X, Y) before the
// recursion begins, and any neighbor links left over from a previous build
// are cleared first. When Build returns, the points on the hull form one
// circular chain in both directions and every strictly interior point has
// both links nil.
//
// Build panics with a BuildError if fewer than two points are given, or if a
// broken intermediate hull is detected mid-merge. Use the root package's
// BuildHull to get those panics back as errors.
func Build(points []*Point) {
	BuildObserved(points, nil)
}

// BuildObserved is Build with a synchronous checkpoint: observe is called
// with the full collection after every completed base case and merge. A nil
// observer skips the checkpoints.
func BuildObserved(points []*Point, observe Observer) {
	if len(points) < 2 {
		fatalf("convex hull needs at least 2 points, got %d", len(points))
	}
	for _, p := range points {
		p.CCW = nil
		p.CW = nil
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Before(points[j])
	})
	b := &builder{all: points, observe: observe}
	b.build(points)
}

// builder carries the state shared by every level of the recursion: the full
// sorted collection, which is what observers get to see, and the checkpoint
// hook itself. Splitting at the midpoint keeps the recursion depth
// logarithmic, so there is no need for an explicit stack even on very large
// inputs.
type builder struct {
	all     []*Point
	observe Observer
}

func (b *builder) build(points []*Point) {
	switch len(points) {
	case 0, 1:
		// Unreachable: the top-level length check and midpoint splitting
		// guarantee at least two points per group.
		fatalf("cannot build a hull over %d points", len(points))
	case 2:
		linkPair(points[0], points[1])
	case 3:
		linkTriple(points[0], points[1], points[2])
	default:
		split := len(points) / 2
		left, right := points[:split], points[split:]
		b.build(left)
		b.build(right)
		b.merge(left, right)
	}
	b.checkpoint()
}

func (b *builder) checkpoint() {
	if b.observe != nil {
		b.observe(b.all)
	}
}

// linkPair makes a degenerate two-point hull: each point is the other's
// neighbor in both directions. The merge step accepts these as valid
// sub-hulls.
func linkPair(p0, p1 *Point) {
	p0.CCW, p0.CW = p1, p1
	p1.CCW, p1.CW = p0, p0
}

// linkTriple makes a three-point cycle whose CCW links run counter-clockwise
// geometrically. The input is sorted by (X, Y), so a left-turning triple is
// already in counter-clockwise order and a right-turning one needs its tail
// swapped. A collinear triple keeps sorted order, giving a degenerate cycle
// along the line.
func linkTriple(p0, p1, p2 *Point) {
	if TurnOf(p0, p1, p2) == RightTurn {
		p1, p2 = p2, p1
	}
	p0.CCW, p0.CW = p1, p2
	p1.CCW, p1.CW = p2, p0
	p2.CCW, p2.CW = p0, p1
}

// Vertices returns the points of the finished hull in counter-clockwise
// order, starting from the lexicographically smallest on-hull point, or nil
// if no point is linked. It panics with a BuildError if the chain does not
// close, which indicates a corrupted build.
func Vertices(points []*Point) []*Point {
	var start *Point
	for _, p := range points {
		if p.OnHull() && (start == nil || p.Before(start)) {
			start = p
		}
	}
	if start == nil {
		return nil
	}
	chain := []*Point{start}
	for p := start.CCW; p != start; p = p.CCW {
		if p == nil || len(chain) > len(points) {
			fatalf("hull chain starting at %v does not close", start)
		}
		chain = append(chain, p)
	}
	return chain
}
