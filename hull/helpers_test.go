package hull

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helpers shared by the hull tests.

func pt(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// buildErr runs Build and converts its panics to an error, the same way the
// public API does.
func buildErr(points []*Point) (err error) {
	defer func() {
		recoveredErr := HandleBuildPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	Build(points)
	return nil
}

// AssertValidHull checks the structural invariants over the whole collection:
// the linked points form a single circular chain that is consistent in both
// directions, never turns right in CCW order, and contains every unlinked
// point.
func AssertValidHull(t *testing.T, points []*Point) {
	t.Helper()

	chain := Vertices(points)
	require.NotEmpty(t, chain, "no hull chain found")

	onChain := make(PointSet)
	for _, p := range chain {
		onChain.Add(p)
	}
	require.Len(t, onChain, len(chain), "chain revisits a point")

	for _, p := range points {
		if p.OnHull() {
			assert.True(t, onChain.Has(p), "linked point %v is outside the chain", p)
		} else {
			assert.Nil(t, p.CCW, "interior point %v has a CCW link", p)
			assert.Nil(t, p.CW, "interior point %v has a CW link", p)
		}
	}

	n := len(chain)
	for i, p := range chain {
		next := chain[(i+1)%n]
		assert.Same(t, next, p.CCW, "CCW link of %v is broken", p)
		assert.Same(t, p, next.CW, "CW link of %v is broken", next)
	}

	if n < 3 {
		return
	}
	for i := range chain {
		a, b, c := chain[i], chain[(i+1)%n], chain[(i+2)%n]
		assert.NotEqual(t, RightTurn, TurnOf(a, b, c), "chain turns right at %v", b)
	}
	for i, a := range chain {
		b := chain[(i+1)%n]
		for _, p := range points {
			assert.NotEqual(t, RightTurn, TurnOf(a, b, p), "point %v lies outside edge %v-%v", p, a, b)
		}
	}
}

// referenceHull is an independent implementation (Andrew's monotone chain)
// used to cross-check the divide and conquer result. It returns the hull in
// CCW order starting from the lexicographically smallest point, excluding
// points that lie on a hull edge.
func referenceHull(points []*Point) []*Point {
	pts := append([]*Point(nil), points...)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Before(pts[j]) })

	cross := func(o, a, b *Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	var lower []*Point
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	var upper []*Point
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
