// Package convexhull computes planar convex hulls with the classical divide
// and conquer algorithm.
//
// The hull is not returned as a separate structure. It is threaded through
// the input points themselves: after a build, every point on the hull links
// to its counter-clockwise and clockwise hull neighbors, and every strictly
// interior point has both links nil. This mirrors how the algorithm actually
// works, and it lets callers walk, render or serialize the result without
// copying anything.
package convexhull

import (
	"github.com/miodrag4/convexhull/hull"
)

type Point = hull.Point
type Turn = hull.Turn
type Observer = hull.Observer

const (
	LeftTurn  = hull.LeftTurn
	RightTurn = hull.RightTurn
	Collinear = hull.Collinear
)

// TurnOf classifies the orientation of the ordered triple a, b, c.
func TurnOf(a, b, c *Point) Turn {
	return hull.TurnOf(a, b, c)
}

// BuildHull sorts points in place by ascending (X, Y) and builds their convex
// hull, mutating the CCW and CW links of the points. It returns an error if
// fewer than two points are given, before anything is mutated, or if the
// build detects a corrupted intermediate hull.
func BuildHull(points []*Point) error {
	return BuildHullObserved(points, nil)
}

// BuildHullObserved is BuildHull with a synchronous checkpoint: observe is
// called with the full collection after every completed base case and merge.
// The build does not interpret anything the observer does and always runs to
// completion.
func BuildHullObserved(points []*Point, observe Observer) (err error) {
	defer func() {
		recoveredErr := hull.HandleBuildPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	hull.BuildObserved(points, observe)
	return nil
}

// HullVertices walks the finished chain and returns the hull in
// counter-clockwise order, starting from the lexicographically smallest
// on-hull point. It returns an error if the chain does not close.
func HullVertices(points []*Point) (vertices []*Point, err error) {
	defer func() {
		recoveredErr := hull.HandleBuildPanicRecover(recover())
		if recoveredErr != nil {
			vertices = nil
			err = recoveredErr
		}
	}()
	return hull.Vertices(points), nil
}
