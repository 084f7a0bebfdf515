package geom

import (
	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/vector"
)

// Orientation classifies the turn from an Edge to a query point.
type Orientation int

const (
	Collinear Orientation = iota
	CCW
	CW
)

// Edge is an ordered pair of Vector2 (From -> To).
type Edge struct {
	From, To vector.Vector2
}

// NewEdge builds an Edge between two points.
func NewEdge(from, to vector.Vector2) Edge { return Edge{From: from, To: to} }

// Direction returns To - From.
func (e Edge) Direction() vector.Vector2 { return e.To.Sub(e.From) }

// Orientation returns CCW/CW by the sign of (To-From) x (v-From); returns
// Collinear only when that cross product's interval provably contains
// zero at neither extreme being strictly provable (spec.md §4.B).
func (e Edge) Orientation(v vector.Vector2) Orientation {
	cross := e.Direction().Cross(v.Sub(e.From))
	if cross.IsPositive() {
		return CCW
	}
	if cross.IsNegative() {
		return CW
	}
	return Collinear
}

// side returns the signed cross product used by outside/inside tests.
func (e Edge) side(v vector.Vector2) interval.Interval {
	return e.Direction().Cross(v.Sub(e.From))
}

// Intersects is the negation of Avoids: it is true whenever disjointness
// cannot be proved, for callers that need "might intersect" rather than
// "provably disjoint". It never asserts a positive
// intersection proof on its own; spec.md only requires Intersects as the
// complement query to Avoids for callers that need it.
func (e Edge) Intersects(o Edge) bool { return !e.Avoids(o) }

// Avoids is true only when disjointness between e and o is machine-
// provable over the interval hull (spec.md §4.B): both endpoints of o lie
// strictly on the same side of e, or vice versa, or both endpoints'
// projections onto the other edge's direction fall strictly outside
// [0, |edge|^2] on the same side, or the distance between midpoints
// strictly exceeds the sum of half-lengths.
// A false return does not imply intersection.
func (e Edge) Avoids(o Edge) bool {
	if sameSideStrict(e, o.From, o.To) || sameSideStrict(o, e.From, e.To) {
		return true
	}
	if s := projectionSide(e, o.From); s != 0 && s == projectionSide(e, o.To) {
		return true
	}
	if s := projectionSide(o, e.From); s != 0 && s == projectionSide(o, e.To) {
		return true
	}
	return midpointSeparated(e, o)
}

// AvoidsPoint is the single-point variant used by Polygon.outside: e avoids
// v if v is provably strictly on the polygon-exterior side of e, or v's
// projection onto e's direction provably falls outside [0, |e|^2].
func (e Edge) AvoidsPoint(v vector.Vector2) bool {
	s := e.side(v)
	if s.IsNegative() { // strictly right of e -> outside a CCW polygon
		return true
	}
	return projectionOutside(e, v)
}

func sameSideStrict(e Edge, a, b vector.Vector2) bool {
	sa := e.side(a)
	sb := e.side(b)
	return (sa.IsPositive() && sb.IsPositive()) || (sa.IsNegative() && sb.IsNegative())
}

// projectionOutside reports whether the projection of v onto e's direction,
// scaled by |e|^2, provably falls outside [0, |e|^2].
func projectionOutside(e Edge, v vector.Vector2) bool { return projectionSide(e, v) != 0 }

// projectionSide returns -1 when that projection is provably below 0, +1
// when it is provably above |e|^2, and 0 when neither is provable.
func projectionSide(e Edge, v vector.Vector2) int {
	d := e.Direction()
	t := d.Dot(v.Sub(e.From))
	lenSq := d.LengthSq()
	if t.Max() < 0 {
		return -1
	}
	if t.Min() > lenSq.Max() {
		return 1
	}
	return 0
}

func midpointSeparated(e, o Edge) bool {
	emx := e.From.X.Add(e.To.X)
	emy := e.From.Y.Add(e.To.Y)
	omx := o.From.X.Add(o.To.X)
	omy := o.From.Y.Add(o.To.Y)
	dx := emx.Sub(omx)
	dy := emy.Sub(omy)
	// Compare (2*dist)^2 vs (|e|+|o|)^2*... done in "doubled" units to avoid
	// an extra sqrt: dist between midpoints = |emx-omx, emy-omy|/2.
	distSq := dx.Mul(dx).Add(dy.Mul(dy)) // (2*dist)^2
	halfSumLen := e.Direction().Length().Add(o.Direction().Length())
	rhs := halfSumLen.Mul(halfSumLen) // (2*halfSum)^2 = (|e|+|o|)^2
	return distSq.Gt(rhs)
}
