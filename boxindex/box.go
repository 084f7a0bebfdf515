package boxindex

import "github.com/arvo-stacks/rupert/interval"

// Box2 is a (theta, phi) pair tiling the whole sphere of orientation
// directions: theta in 2*pi*r, phi in pi*r (spec.md §3).
type Box2 struct {
	Theta, Phi Range
}

// RootBox2 covers the entire plug-orientation domain theta in [0,2pi),
// phi in [0,pi).
func RootBox2() Box2 { return Box2{Theta: RootRange(), Phi: RootRange()} }

// ThetaInterval returns the angular enclosure of the theta axis.
func (b Box2) ThetaInterval(k interval.Kernel) interval.Interval {
	return b.Theta.Scale(k, k.Tau())
}

// PhiInterval returns the angular enclosure of the phi axis (half-circle scale).
func (b Box2) PhiInterval(k interval.Kernel) interval.Interval {
	return b.Phi.Scale(k, k.Pi())
}

// Parts returns the 4 children of b (spec.md §3: "parts() yields 4 or 8
// children"). Returns ok=false if either axis would overflow; b is
// returned unchanged as the terminal/residual box in that case.
func (b Box2) Parts() (children [4]Box2, ok bool) {
	t0, t1, err1 := b.Theta.Parts()
	p0, p1, err2 := b.Phi.Parts()
	if err1 != nil || err2 != nil {
		return children, false
	}
	children = [4]Box2{
		{Theta: t0, Phi: p0}, {Theta: t0, Phi: p1},
		{Theta: t1, Phi: p0}, {Theta: t1, Phi: p1},
	}
	return children, true
}

// IsOverflow reports whether either axis is at the depth cap.
func (b Box2) IsOverflow() bool { return b.Theta.IsOverflow() || b.Phi.IsOverflow() }

// Less implements the priority ordering (spec.md §3): shallower boxes
// (summed depth) win; ties broken lexicographically by axis.
func (b Box2) Less(o Box2) bool {
	bd := int(b.Theta.Depth) + int(b.Phi.Depth)
	od := int(o.Theta.Depth) + int(o.Phi.Depth)
	if bd != od {
		return bd < od
	}
	if b.Theta != o.Theta {
		return b.Theta.Less(o.Theta)
	}
	return b.Phi.Less(o.Phi)
}

// Box3 is a (theta, phi, alpha) triple: the hole-orientation + in-plane-
// rotation box the outer queue works over (spec.md §3).
type Box3 struct {
	Theta, Phi, Alpha Range
}

// RootBox3 covers the entire hole-orientation domain.
func RootBox3() Box3 {
	return Box3{Theta: RootRange(), Phi: RootRange(), Alpha: RootRange()}
}

func (b Box3) ThetaInterval(k interval.Kernel) interval.Interval { return b.Theta.Scale(k, k.Tau()) }
func (b Box3) PhiInterval(k interval.Kernel) interval.Interval   { return b.Phi.Scale(k, k.Pi()) }
func (b Box3) AlphaInterval(k interval.Kernel) interval.Interval { return b.Alpha.Scale(k, k.Tau()) }

// Parts returns the 8 children of b.
func (b Box3) Parts() (children [8]Box3, ok bool) {
	t0, t1, errT := b.Theta.Parts()
	p0, p1, errP := b.Phi.Parts()
	a0, a1, errA := b.Alpha.Parts()
	if errT != nil || errP != nil || errA != nil {
		return children, false
	}
	i := 0
	for _, t := range [2]Range{t0, t1} {
		for _, p := range [2]Range{p0, p1} {
			for _, a := range [2]Range{a0, a1} {
				children[i] = Box3{Theta: t, Phi: p, Alpha: a}
				i++
			}
		}
	}
	return children, true
}

// IsOverflow reports whether any axis is at the depth cap.
func (b Box3) IsOverflow() bool {
	return b.Theta.IsOverflow() || b.Phi.IsOverflow() || b.Alpha.IsOverflow()
}

// Less implements the priority-queue ordering (spec.md §3): shallower
// boxes (by summed depth, then lexicographically) have higher priority.
func (b Box3) Less(o Box3) bool {
	bd := int(b.Theta.Depth) + int(b.Phi.Depth) + int(b.Alpha.Depth)
	od := int(o.Theta.Depth) + int(o.Phi.Depth) + int(o.Alpha.Depth)
	if bd != od {
		return bd < od
	}
	if b.Theta != o.Theta {
		return b.Theta.Less(o.Theta)
	}
	if b.Phi != o.Phi {
		return b.Phi.Less(o.Phi)
	}
	return b.Alpha.Less(o.Alpha)
}

// Orientation5 names the five witnessing angles of a passage (theta, phi,
// alpha for the hole; theta, phi for the plug) — a supplemental,
// informational-only payload on a non-terminal boxproc.Outcome (SPEC_FULL
// §3 item 4), never consulted for control flow.
type Orientation5 struct {
	HoleTheta, HolePhi, HoleAlpha float64
	PlugTheta, PlugPhi            float64
}

// EliminatedBox3 pairs a hole orientation Box3 with the finite list of
// plug-orientation Box2s whose union, covering the plug sphere, were each
// individually eliminated (spec.md §3 EliminatedBox3).
type EliminatedBox3 struct {
	Box3      Box3
	Plug2Boxs []Box2
}
