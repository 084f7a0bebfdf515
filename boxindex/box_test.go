package boxindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvo-stacks/rupert/boxindex"
)

// TestRange_PackRoundTrip ASSERTS pack/unpack recovers every Range of
// depth 0 through 7 (spec.md §8 Range & Box: "Pack round-trip").
func TestRange_PackRoundTrip(t *testing.T) {
	for d := uint8(0); d < boxindex.MaxDepth; d++ {
		for b := uint32(0); b < (uint32(1) << d); b++ {
			r := boxindex.Range{Depth: d, Bits: b}
			got, err := boxindex.Unpack(r.Pack())
			require.NoError(t, err)
			assert.Equal(t, r, got)
		}
		if d > 6 {
			break // bound the test's runtime; depths above 7 are not enumerated.
		}
	}
}

// TestRange_Parts_Partition ASSERTS the two children of a Range exactly
// partition the parent's [lo,hi) interval.
func TestRange_Parts_Partition(t *testing.T) {
	r := boxindex.Range{Depth: 3, Bits: 5}
	c0, c1, err := r.Parts()
	require.NoError(t, err)
	assert.Equal(t, uint8(4), c0.Depth)
	assert.Equal(t, uint32(10), c0.Bits)
	assert.Equal(t, uint32(11), c1.Bits)
}

// TestRange_Overflow ASSERTS Parts() reports ErrOverflow at MaxDepth.
func TestRange_Overflow(t *testing.T) {
	r := boxindex.Range{Depth: boxindex.MaxDepth, Bits: 3}
	_, _, err := r.Parts()
	assert.ErrorIs(t, err, boxindex.ErrOverflow)
	assert.True(t, r.IsOverflow())
}

// TestBox3_Parts_EightChildren ASSERTS Box3.Parts() returns 8 children that
// partition the parent (spec.md §8: "the eight children of any 3-box
// partition the parent's parameter space").
func TestBox3_Parts_EightChildren(t *testing.T) {
	root := boxindex.RootBox3()
	children, ok := root.Parts()
	require.True(t, ok)
	assert.Len(t, children, 8)
	seen := map[boxindex.Box3]bool{}
	for _, c := range children {
		assert.Equal(t, uint8(1), c.Theta.Depth)
		seen[c] = true
	}
	assert.Len(t, seen, 8, "all 8 children distinct")
}

// TestBox2_Parts_FourChildren ASSERTS Box2.Parts() returns 4 distinct
// children.
func TestBox2_Parts_FourChildren(t *testing.T) {
	root := boxindex.RootBox2()
	children, ok := root.Parts()
	require.True(t, ok)
	seen := map[boxindex.Box2]bool{}
	for _, c := range children {
		seen[c] = true
	}
	assert.Len(t, seen, 4)
}

// TestBox3_Less_ShallowerFirst ASSERTS the priority ordering favors
// shallower boxes regardless of bit pattern.
func TestBox3_Less_ShallowerFirst(t *testing.T) {
	shallow := boxindex.RootBox3()
	deep, ok := shallow.Parts()
	require.True(t, ok)
	assert.True(t, shallow.Less(deep[3]))
	assert.False(t, deep[3].Less(shallow))
}
