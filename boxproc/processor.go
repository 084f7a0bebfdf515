package boxproc

import (
	"math"

	"github.com/arvo-stacks/rupert/boxindex"
	"github.com/arvo-stacks/rupert/geom"
	"github.com/arvo-stacks/rupert/hull"
	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/queue"
	"github.com/arvo-stacks/rupert/vector"
)

// Process consumes one 3-box B: it builds the hole shadow, runs the inner
// 2-box subdivision against it, and returns either a terminal certificate
// or a subdivision into children (spec.md §4.H). It never mutates cfg.Hole
// or cfg.Plug.
func Process(cfg Config, b boxindex.Box3) (Outcome, error) {
	shadow, err := holeShadowPolygon(cfg, b)
	if err != nil {
		return Outcome{}, err
	}

	inner := queue.NewBox2FIFO()
	inner.Push(boxindex.RootBox2())

	var eliminated []boxindex.Box2
	iterations := 0
	dropped := false
	for inner.Size() > 0 {
		if cfg.RectangleIterationLimit > 0 && iterations >= cfg.RectangleIterationLimit {
			children, ok := b.Parts()
			if !ok {
				return Outcome{State: StateBudgetExhausted, Residual: true}, nil
			}
			return Outcome{State: StateBudgetExhausted, Children: children[:]}, nil
		}
		r, _ := inner.Pop()
		iterations++

		if cfg.SymmetrySkip && symmetrySkip(cfg, b, r) {
			continue
		}

		if eliminates(cfg, shadow, r) {
			eliminated = append(eliminated, r)
			continue
		}

		if witness, ok := passageWitnessed(cfg, shadow, r); ok {
			children, ok := b.Parts()
			orientation := midOrientation(cfg.Kernel, b, witness)
			if !ok {
				return Outcome{State: StateNonTerminal, Residual: true, Witness: &orientation}, nil
			}
			return Outcome{State: StateNonTerminal, Children: children[:], Witness: &orientation}, nil
		}

		if r.IsOverflow() {
			// This 2-box can't be refined further and was neither
			// eliminated nor a witness (spec.md §4.H.4): it is a residual,
			// not part of the elimination cover. It is dropped from the
			// inner queue rather than looped on forever; the rest of the
			// inner queue still runs (a later witness still wins), but B
			// can no longer be certified and is reported as a residual.
			dropped = true
			continue
		}
		children, _ := r.Parts()
		inner.PushAll(children[:])
	}

	if dropped {
		return Outcome{State: StateBudgetExhausted, Residual: true}, nil
	}
	return Outcome{
		State:       StateEliminated,
		Certificate: &boxindex.EliminatedBox3{Box3: b, Plug2Boxs: eliminated},
	}, nil
}

// holeShadowPolygon builds P(B) (spec.md §4.H.1): for every hole vertex,
// enclose its image under every orientation in B.theta/B.phi, expand each
// hull point by the in-plane rotation over B.alpha, merge points the
// rotation hull's own slack can't tell apart, and take the convex hull.
func holeShadowPolygon(cfg Config, b boxindex.Box3) (geom.Polygon, error) {
	k := cfg.Kernel
	projBox := boxindex.Box2{Theta: b.Theta, Phi: b.Phi}

	var points []vector.Vector2
	for _, v := range cfg.Hole.Vertices {
		projected := hull.ProjectionHullPolygon(k, v, projBox, cfg.ProjectionResolution)
		points = append(points, hull.ExpandByRotation(k, projected, b, cfg.RotationResolution)...)
	}

	eps := shadowMergeEpsilon(k, b, cfg.RotationResolution)
	merged := mergeWithinEpsilon(points, eps)

	poly, err := hull.ConvexHull(merged)
	if err != nil {
		return geom.Polygon{}, &HullError{Stage: "hole-shadow", Box: b, Err: err}
	}
	return poly, nil
}

// shadowMergeEpsilon is spec.md §4.H.1's `eps = (1/cos(alpha.rad/r_rot) -
// 1) / 16`: the worst-case geometric slack introduced by the outer
// rotation hull, shrunk by 16 to avoid over-merging (spec.md §9 records
// the factor as an asserted heuristic with no derivation given). When
// cos(alpha.rad/r_rot) is not above 1e-9 (alpha too wide for the formula,
// e.g. the root box at r_rot <= 2) it returns 0, so no points are merged.
func shadowMergeEpsilon(k interval.Kernel, b boxindex.Box3, rotationResolution int) float64 {
	r := rotationResolution
	if r < 1 {
		r = 1
	}
	alpha := b.AlphaInterval(k)
	denom := math.Cos(alpha.Rad() / float64(r))
	if denom <= 1e-9 {
		return 0
	}
	return (1/denom - 1) / 16
}

// mergeWithinEpsilon collapses points whose Euclidean separation (measured
// on interval midpoints) is at most eps into their componentwise Hull, the
// boxproc-level counterpart to hull.ConvexHull's own exact-duplicate merge
// (which only catches non-provably-positive separation, not an explicit
// tolerance).
func mergeWithinEpsilon(points []vector.Vector2, eps float64) []vector.Vector2 {
	if eps <= 0 {
		return points
	}
	out := make([]vector.Vector2, 0, len(points))
	for _, p := range points {
		merged := false
		for i, q := range out {
			dx := p.X.Mid() - q.X.Mid()
			dy := p.Y.Mid() - q.Y.Mid()
			if math.Hypot(dx, dy) <= eps {
				out[i] = out[i].Hull(p)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, p)
		}
	}
	return out
}

// eliminates reports whether r (a plug-orientation 2-box) is eliminated
// for hole shadow shadow (spec.md §4.H.3.b): at least one plug vertex is
// provably outside shadow for every concrete orientation in r.
func eliminates(cfg Config, shadow geom.Polygon, r boxindex.Box2) bool {
	k := cfg.Kernel
	theta, phi := r.ThetaInterval(k), r.PhiInterval(k)
	for _, u := range cfg.Plug.Vertices {
		if geom.ProjectedVertexOutsidePolygonAdvanced(k, shadow, u, theta, phi) {
			return true
		}
	}
	return false
}

// passageWitnessed reports whether, at r's mid-angles, every plug vertex's
// pointwise projection lies strictly inside shadow (spec.md §4.H.3.c): if
// so the plug fits through the hole for this orientation pair and r's
// midpoint is returned as the witness.
func passageWitnessed(cfg Config, shadow geom.Polygon, r boxindex.Box2) (mid [2]float64, ok bool) {
	k := cfg.Kernel
	thetaMid := r.ThetaInterval(k).Mid()
	phiMid := r.PhiInterval(k).Mid()
	thetaExact := k.FromBounds(thetaMid, thetaMid)
	phiExact := k.FromBounds(phiMid, phiMid)

	for _, u := range cfg.Plug.Vertices {
		p := geom.Project(u, thetaExact, phiExact)
		if !shadow.Inside(p) {
			return [2]float64{}, false
		}
	}
	return [2]float64{thetaMid, phiMid}, true
}

// symmetrySkip implements the optional termination shortcut of spec.md
// §4.H.3.a for concentric symmetric polyhedra: if some member of the
// hole's symmetry group carries the hole orientation B onto a relative
// orientation with the plug-orientation box r within cfg.SymmetryEpsilon
// (by cosine of rotation angle, vector.Matrix3.CosAngleBetween), r is
// skipped as equivalent by symmetry to an orientation already accounted
// for. This is a performance-only shortcut: a miss here never blocks
// elimination, it only forgoes skipping (geom.Polyhedron.SymmetryGroup's
// own doc comment records the same non-soundness-critical framing).
func symmetrySkip(cfg Config, b boxindex.Box3, r boxindex.Box2) bool {
	if cfg.SymmetryEpsilon <= 0 || cfg.Hole == nil {
		return false
	}
	k := cfg.Kernel
	holeOrientation := vector.ComposeOrientation(k, b.ThetaInterval(k), b.PhiInterval(k))
	plugOrientation := vector.ComposeOrientation(k, r.ThetaInterval(k), r.PhiInterval(k))
	relative := vector.Relative(holeOrientation, plugOrientation)

	for _, sym := range cfg.Hole.SymmetryGroup(k) {
		toSymmetry := vector.Relative(sym, relative)
		cos := toSymmetry.CosAngleBetween(k)
		if cos.Min() >= 1-cfg.SymmetryEpsilon {
			return true
		}
	}
	return false
}

// midOrientation assembles the five witnessing angles (spec.md glossary;
// SPEC_FULL §3 item 4) from B's own mid-angles and the inner box's witness
// mid-angles.
func midOrientation(k interval.Kernel, b boxindex.Box3, plugMid [2]float64) boxindex.Orientation5 {
	return boxindex.Orientation5{
		HoleTheta: b.ThetaInterval(k).Mid(),
		HolePhi:   b.PhiInterval(k).Mid(),
		HoleAlpha: b.AlphaInterval(k).Mid(),
		PlugTheta: plugMid[0],
		PlugPhi:   plugMid[1],
	}
}
