package geom

import (
	"math"

	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/vector"
)

// Polyhedron is a set of Vector3 vertices; its convex hull is implicit —
// downstream code (hull.ConvexHull, the box processor) only ever consumes
// the vertex set (spec.md §3 Polyhedron).
type Polyhedron struct {
	Vertices []vector.Vector3

	// symmetry is memoized on first SymmetryGroup() call, since it is a
	// fixed property of the immutable vertex set shared read-only by every
	// worker (spec.md §9 "reference-counted polyhedron vertices").
	symmetry []vector.Matrix3
}

// NewPolyhedron wraps a vertex set as an (immutable, after construction)
// Polyhedron handle.
func NewPolyhedron(vertices []vector.Vector3) *Polyhedron {
	return &Polyhedron{Vertices: vertices}
}

// signedPermutationCandidates enumerates the 24 proper (determinant +1)
// signed-permutation matrices — the rotation group of the cube/octahedron —
// used as the fixed candidate set the SymmetryGroup search tests against.
// Any polyhedron whose symmetry group is a subgroup of the octahedral
// group (every Platonic solid used in this module's tests is) is found
// exactly; others degrade gracefully to {identity}, which only disables the
// optional skip-shortcut, never soundness of elimination itself.
func signedPermutationCandidates(k interval.Kernel) []vector.Matrix3 {
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	signs := []float64{1, -1}
	zero := k.Zero()
	var out []vector.Matrix3
	for _, p := range perms {
		for _, s0 := range signs {
			for _, s1 := range signs {
				for _, s2 := range signs {
					var m vector.Matrix3
					s := [3]float64{s0, s1, s2}
					for row := 0; row < 3; row++ {
						for col := 0; col < 3; col++ {
							m[row][col] = zero
						}
						m[row][p[row]] = k.FromBounds(s[row], s[row])
					}
					if matrixDetSign(m) > 0 {
						out = append(out, m)
					}
				}
			}
		}
	}
	return out
}

// matrixDetSign computes the determinant's sign using Mid() values only —
// this candidate enumeration works over exact +-1 entries so Mid() is
// exact, no rounding risk.
func matrixDetSign(m vector.Matrix3) int {
	a, b, c := m[0][0].Mid(), m[0][1].Mid(), m[0][2].Mid()
	d, e, f := m[1][0].Mid(), m[1][1].Mid(), m[1][2].Mid()
	g, h, i := m[2][0].Mid(), m[2][1].Mid(), m[2][2].Mid()
	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det > 0 {
		return 1
	}
	if det < 0 {
		return -1
	}
	return 0
}

// SymmetryGroup returns the rotations that map the polyhedron's vertex set
// onto itself (within a fixed tolerance), memoized after the first call.
// This backs the optional termination shortcut in spec.md §4.H.3.a; it is a
// heuristic performance optimization, not a soundness-bearing computation —
// an incomplete symmetry group only means fewer boxes are skipped, never an
// incorrect elimination (spec.md "Open question" on symmetry handling is
// resolved here by erring toward "no symmetry found" whenever uncertain).
func (p *Polyhedron) SymmetryGroup(k interval.Kernel) []vector.Matrix3 {
	if p.symmetry != nil {
		return p.symmetry
	}
	const tol = 1e-6
	pts := make([][3]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = [3]float64{v.X.Mid(), v.Y.Mid(), v.Z.Mid()}
	}
	var group []vector.Matrix3
	for _, cand := range signedPermutationCandidates(k) {
		if mapsVertexSetToItself(cand, pts, tol) {
			group = append(group, cand)
		}
	}
	if len(group) == 0 {
		group = []vector.Matrix3{vector.Identity3(k)}
	}
	p.symmetry = group
	return group
}

func mapsVertexSetToItself(m vector.Matrix3, pts [][3]float64, tol float64) bool {
	for _, pt := range pts {
		x := m[0][0].Mid()*pt[0] + m[0][1].Mid()*pt[1] + m[0][2].Mid()*pt[2]
		y := m[1][0].Mid()*pt[0] + m[1][1].Mid()*pt[1] + m[1][2].Mid()*pt[2]
		z := m[2][0].Mid()*pt[0] + m[2][1].Mid()*pt[1] + m[2][2].Mid()*pt[2]
		found := false
		for _, q := range pts {
			if math.Abs(x-q[0]) < tol && math.Abs(y-q[1]) < tol && math.Abs(z-q[2]) < tol {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
