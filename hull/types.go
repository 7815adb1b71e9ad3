package hull

import "fmt"

// Point is a single input site. CCW and CW point to the neighbors of this
// point on its current hull, or are nil while the point is not on any hull.
//
// All points involved with a build are pointers. This means they can be used
// as map keys, and that hulls can be embedded in the points themselves: the
// finished hull is exactly the circular chain threaded through the CCW and CW
// fields. The coordinates are never modified, since some applications require
// exact equality and cannot tolerate loss of precision.
type Point struct {
	X, Y float64

	CCW *Point // next point counter-clockwise on this point's hull
	CW  *Point // next point clockwise on this point's hull
}

func (p *Point) String() string {
	return fmt.Sprintf("pt(%g,%g)", p.X, p.Y)
}

// OnHull reports whether the point is currently linked into a hull chain.
func (p *Point) OnHull() bool {
	return p.CCW != nil && p.CW != nil
}

// Before reports lexicographic (X, Y) order. This is the order the build
// sorts by, and the order Vertices uses to pick its starting point.
func (p *Point) Before(other *Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

type PointSet map[*Point]struct{}

func (s PointSet) Add(p *Point)      { s[p] = struct{}{} }
func (s PointSet) Remove(p *Point)   { delete(s, p) }
func (s PointSet) Has(p *Point) bool { _, ok := s[p]; return ok }

// Observer receives the full point collection after every completed base case
// and merge. The build does not interpret anything the observer does; it
// always continues to completion.
type Observer func(points []*Point)
