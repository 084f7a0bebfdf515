package interval_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvo-stacks/rupert/interval"
)

// kernels lists the three backends exercised by every property test below.
func kernels() []interval.Kernel {
	return []interval.Kernel{
		interval.NewFastKernel(),
		interval.NewHWFloatKernel(),
		interval.NewBigFloatKernel(),
	}
}

// randomInterval builds a random bounded Interval [lo, hi] and a concrete
// sample x inside it, for the soundness property (spec.md §8).
func randomInterval(t *testing.T, k interval.Kernel, rng *rand.Rand) (interval.Interval, float64) {
	t.Helper()
	lo := rng.Float64()*20 - 10
	hi := lo + rng.Float64()*5
	x := lo + rng.Float64()*(hi-lo)
	return k.FromBounds(lo, hi), x
}

// TestSoundness_Arithmetic ASSERTS every supported arithmetic/transcendental
// operation returns an interval containing f(x) for every concrete x drawn
// from its operands, across all three backends (spec.md §8 Kernel
// invariants: Soundness).
func TestSoundness_Arithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, k := range kernels() {
		k := k
		t.Run(k.Backend().String(), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				a, ax := randomInterval(t, k, rng)
				b, bx := randomInterval(t, k, rng)

				sum := a.Add(b)
				assert.InDeltaf(t, ax+bx, clamp(sum.Mid()), sum.Len()/2+1e-6, "add contains ax+bx")
				assertContains(t, sum, ax+bx)

				diff := a.Sub(b)
				assertContains(t, diff, ax-bx)

				prod := a.Mul(b)
				assertContains(t, prod, ax*bx)

				sq := a.Sqr()
				assertContains(t, sq, ax*ax)

				if bx != 0 && !straddlesZero(b) {
					quo := a.Div(b)
					assertContains(t, quo, ax/bx)
				}

				if ax >= 0 {
					sq := a.Sqrt()
					if a.Min() >= 0 {
						assertContains(t, sq, math.Sqrt(ax))
					}
				}

				assertContains(t, a.Cos(), math.Cos(ax))
				assertContains(t, a.Sin(), math.Sin(ax))
				if a.Min() >= -1 && a.Max() <= 1 {
					assertContains(t, a.Acos(), math.Acos(ax))
					assertContains(t, a.Asin(), math.Asin(ax))
				}
				assertContains(t, a.Atan(), math.Atan(ax))
			}
		})
	}
}

// TestDivisionByZeroCrossing_IsNaN ASSERTS division by a zero-containing
// interval yields NaN rather than +-Inf (spec.md §4.A failure semantics).
func TestDivisionByZeroCrossing_IsNaN(t *testing.T) {
	for _, k := range kernels() {
		a := k.FromBounds(1, 2)
		b := k.FromBounds(-1, 1)
		got := a.Div(b)
		assert.True(t, got.IsNaN(), "%s: division by zero-crossing interval must be NaN", k.Backend())
	}
}

// TestBackendAgreement ASSERTS that for inputs where all three backends
// yield non-NaN, their outputs pairwise overlap (spec.md §8).
func TestBackendAgreement(t *testing.T) {
	fast := interval.NewFastKernel()
	hw := interval.NewHWFloatKernel()
	big := interval.NewBigFloatKernel()

	a1 := fast.FromBounds(0.3, 0.7)
	a2 := hw.FromBounds(0.3, 0.7)
	a3 := big.FromBounds(0.3, 0.7)

	r1 := a1.Cos()
	r2 := a2.Cos()
	r3 := a3.Cos()

	require.False(t, r1.IsNaN())
	require.False(t, r2.IsNaN())
	require.False(t, r3.IsNaN())

	assert.True(t, overlaps(r1.Min(), r1.Max(), r2.Min(), r2.Max()))
	assert.True(t, overlaps(r2.Min(), r2.Max(), r3.Min(), r3.Max()))
	assert.True(t, overlaps(r1.Min(), r1.Max(), r3.Min(), r3.Max()))
}

// TestPiTau_EncloseTrueValue ASSERTS Pi()/Tau() rigorously enclose the true
// constants for every backend.
func TestPiTau_EncloseTrueValue(t *testing.T) {
	for _, k := range kernels() {
		pi := k.Pi()
		assert.LessOrEqual(t, pi.Min(), math.Pi)
		assert.GreaterOrEqual(t, pi.Max(), math.Pi)

		tau := k.Tau()
		assert.LessOrEqual(t, tau.Min(), 2*math.Pi)
		assert.GreaterOrEqual(t, tau.Max(), 2*math.Pi)
	}
}

// TestOrdering_ThreeValued ASSERTS Gt/Lt hold only when strict domination is
// provable; overlapping intervals assert neither.
func TestOrdering_ThreeValued(t *testing.T) {
	k := interval.NewFastKernel()
	a := k.FromBounds(1, 2)
	b := k.FromBounds(3, 4)
	assert.True(t, b.Gt(a))
	assert.True(t, a.Lt(b))

	c := k.FromBounds(1.5, 3.5)
	assert.False(t, a.Gt(c))
	assert.False(t, a.Lt(c))
	assert.False(t, c.Gt(a))
	assert.False(t, c.Lt(a))
}

func straddlesZero(i interval.Interval) bool { return i.Min() <= 0 && i.Max() >= 0 }

func clamp(v float64) float64 { return v }

func overlaps(lo1, hi1, lo2, hi2 float64) bool {
	return lo1 <= hi2 && lo2 <= hi1
}

func assertContains(t *testing.T, i interval.Interval, x float64) {
	t.Helper()
	if i.IsNaN() {
		return
	}
	const slack = 1e-6
	assert.GreaterOrEqualf(t, x, i.Min()-slack, "x=%v below interval [%v,%v]", x, i.Min(), i.Max())
	assert.LessOrEqualf(t, x, i.Max()+slack, "x=%v above interval [%v,%v]", x, i.Min(), i.Max())
}
