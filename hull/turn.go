package hull

// Turn classifies the orientation of an ordered triple of points.
type Turn int

const (
	LeftTurn Turn = iota
	RightTurn
	Collinear
)

func (t Turn) String() string {
	switch t {
	case LeftTurn:
		return "left"
	case RightTurn:
		return "right"
	case Collinear:
		return "collinear"
	}
	return "unknown"
}

// TurnOf reports whether the path a -> b -> c turns left (counter-clockwise),
// right (clockwise), or not at all. The answer is the sign of the cross
// product (a.X-c.X)(b.Y-c.Y) - (b.X-c.X)(a.Y-c.Y), evaluated in plain float64
// arithmetic. TurnOf(a, b, c) and TurnOf(c, b, a) give opposite non-collinear
// answers, but no exactness beyond that antisymmetry is promised; callers
// that need robust decisions on near-degenerate triples must not rely on the
// Collinear result being stable under reordered arguments.
func TurnOf(a, b, c *Point) Turn {
	det := (a.X-c.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-c.Y)
	switch {
	case det > 0:
		return LeftTurn
	case det < 0:
		return RightTurn
	default:
		return Collinear
	}
}
