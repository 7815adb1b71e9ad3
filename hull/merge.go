package hull

// merge joins two finished sub-hulls into one. left holds the points with the
// smaller x range and right the larger; both slices are sorted, so left's
// rightmost linked point and right's leftmost linked point are mutually
// visible seeds for the tangent searches. They are not necessarily extremal
// on their hulls, but the searches walk outward from wherever they start, so
// any on-hull seed works.
//
// The upper and lower bridges are linked in as mutual edges, and every point
// stepped over by a search that is not itself a bridge endpoint has had both
// of its hull edges invalidated. Those points are now strictly interior to
// the merged hull and are unlinked, along with any point the bridges orphaned
// without a search stepping over it.
func (b *builder) merge(left, right []*Point) {
	l0 := lastOnHull(left)
	r0 := firstOnHull(right)

	stepped := make(PointSet)
	topLeft, topRight := upperTangent(l0, r0, stepped)
	bottomLeft, bottomRight := lowerTangent(l0, r0, stepped)

	topLeft.CW = topRight
	topRight.CCW = topLeft
	bottomLeft.CCW = bottomRight
	bottomRight.CW = bottomLeft

	// A bridge endpoint can be stepped over by the opposite search. It stays
	// on the hull regardless.
	stepped.Remove(topLeft)
	stepped.Remove(topRight)
	stepped.Remove(bottomLeft)
	stepped.Remove(bottomRight)

	for p := range stepped {
		p.CCW = nil
		p.CW = nil
	}

	unlinkOrphans(left, right, topLeft)
}

// lastOnHull returns the rightmost point of the group that is linked into its
// hull. That is usually the last point, but a degenerate sub-build can leave
// the extreme off its own hull, when it duplicates a hull point or sits at
// the far end of a collinear run, and the tangent searches must seed on the
// hull itself.
func lastOnHull(points []*Point) *Point {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].OnHull() {
			return points[i]
		}
	}
	fatalf("no hull point among the %d points ending at %v", len(points), points[len(points)-1])
	return nil
}

// firstOnHull is the mirror image of lastOnHull.
func firstOnHull(points []*Point) *Point {
	for _, p := range points {
		if p.OnHull() {
			return p
		}
	}
	fatalf("no hull point among the %d points starting at %v", len(points), points[0])
	return nil
}

// unlinkOrphans clears the links of every point the relink left off the
// merged chain. The stepped sets under-report on degenerate input: when
// coordinates repeat or a whole run is collinear, a point can lose both of
// its hull edges to the new bridges without either search stepping over it,
// leaving it linked to neighbors that no longer point back. Walking the chain
// and unlinking everything else keeps linked meaning on the hull.
func unlinkOrphans(left, right []*Point, start *Point) {
	onChain := make(PointSet)
	onChain.Add(start)
	total := len(left) + len(right)
	for p := start.CCW; p != start; p = p.CCW {
		if p == nil || len(onChain) > total {
			fatalf("merged hull starting at %v does not close", start)
		}
		onChain.Add(p)
	}

	for _, side := range [][]*Point{left, right} {
		for _, p := range side {
			if !onChain.Has(p) {
				p.CCW = nil
				p.CW = nil
			}
		}
	}
}

// upperTangent finds the bridge joining the two hulls from above. It rotates
// l counter-clockwise and r clockwise while either side still has room to
// move outward, recording every point stepped over. Only a strict left turn
// advances a side; a collinear answer stops it, so approximate tangency
// terminates the search instead of looping.
func upperTangent(l, r *Point, stepped PointSet) (*Point, *Point) {
	for {
		switch {
		case TurnOf(mustLinked(l).CCW, l, r) == LeftTurn:
			stepped.Add(l)
			l = l.CCW
		case TurnOf(l, r, mustLinked(r).CW) == LeftTurn:
			stepped.Add(r)
			r = r.CW
		default:
			return l, r
		}
	}
}

// lowerTangent is the mirror image of upperTangent: l rotates clockwise, r
// counter-clockwise, and only a strict right turn advances a side.
func lowerTangent(l, r *Point, stepped PointSet) (*Point, *Point) {
	for {
		switch {
		case TurnOf(mustLinked(l).CW, l, r) == RightTurn:
			stepped.Add(l)
			l = l.CW
		case TurnOf(l, r, mustLinked(r).CCW) == RightTurn:
			stepped.Add(r)
			r = r.CCW
		default:
			return l, r
		}
	}
}

// mustLinked asserts that a tangent search is standing on a linked hull
// point. A missing neighbor here means an earlier step produced a broken
// sub-hull, which is unrecoverable.
func mustLinked(p *Point) *Point {
	if p.CCW == nil || p.CW == nil {
		fatalf("tangent search reached %v, which is not on a hull", p)
	}
	return p
}
