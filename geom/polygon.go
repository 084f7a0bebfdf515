package geom

import "github.com/arvo-stacks/rupert/vector"

// Polygon is an ordered list of Edges forming a single, counterclockwise
// convex loop: edges are connected head-to-tail and the interior is the
// intersection of the left half-plane of each edge (spec.md §3 Polygon).
type Polygon struct {
	Edges []Edge
}

// NewPolygon builds a Polygon from CCW-ordered vertices, connecting each to
// the next (and the last back to the first).
func NewPolygon(vertices []vector.Vector2) Polygon {
	edges := make([]Edge, len(vertices))
	for i := range vertices {
		next := vertices[(i+1)%len(vertices)]
		edges[i] = NewEdge(vertices[i], next)
	}
	return Polygon{Edges: edges}
}

// Inside reports whether v is provably strictly interior: every edge's
// side(v) is provably left (spec.md §4.B).
func (p Polygon) Inside(v vector.Vector2) bool {
	if len(p.Edges) == 0 {
		return false
	}
	for _, e := range p.Edges {
		if !e.side(v).IsPositive() {
			return false
		}
	}
	return true
}

// Outside reports whether v is provably strictly exterior: some edge's
// side(v) is provably right AND no edge fails the AvoidsPoint test
// (spec.md §4.B).
func (p Polygon) Outside(v vector.Vector2) bool {
	if len(p.Edges) == 0 {
		return false
	}
	anyRight := false
	for _, e := range p.Edges {
		if e.side(v).IsNegative() {
			anyRight = true
		}
		if !e.AvoidsPoint(v) {
			return false
		}
	}
	return anyRight
}

// Vertices returns the polygon's vertex list (the From of each edge, in
// order).
func (p Polygon) Vertices() []vector.Vector2 {
	vs := make([]vector.Vector2, len(p.Edges))
	for i, e := range p.Edges {
		vs[i] = e.From
	}
	return vs
}
