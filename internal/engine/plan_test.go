package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-waveform/internal/testutil"
)

func TestNewPlan_IntegerRatio(t *testing.T) {
	plan := NewPlan(0, 1000, 10, 100, 100)
	require.Len(t, plan.Offsets, 101)
	assert.InDelta(t, 10.0, plan.SamplesPerPixel, testutil.DefaultTolerance)
	assert.InDelta(t, 1.0, plan.BinsPerPixel, testutil.DefaultTolerance)
	for x, off := range plan.Offsets {
		assert.Equal(t, x, off)
	}
}

func TestNewPlan_FirstColumnTakesFloor(t *testing.T) {
	plan := NewPlan(0, 250, 1, 1000, 100) // 2.5 bins per pixel
	from, to := plan.Span(0)
	assert.Equal(t, 0, from)
	assert.Equal(t, 2, to)
}

func TestNewPlan_StartsAtBeginBin(t *testing.T) {
	plan := NewPlan(95, 195, 10, 100, 10)
	assert.Equal(t, 9, plan.Offsets[0])
}

// TestNewPlan_DriftBounded checks the cursor never falls two or more bins
// behind the ideal position and never runs ahead of it.
func TestNewPlan_DriftBounded(t *testing.T) {
	tests := []struct {
		name                   string
		begin, end, binSize, w int
	}{
		{"2.5 bins per pixel", 0, 2500, 1, 1000},
		{"fractional with offset", 441, 44100, 10, 1000},
		{"under one bin per pixel", 0, 300, 1, 1000},
		{"many bins per pixel", 0, 441000, 7, 333},
		{"prime width", 13, 100000, 3, 997},
		{"one column", 0, 999, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			numBins := tt.end/tt.binSize + 10 // window lies inside the index
			plan := NewPlan(tt.begin, tt.end, tt.binSize, numBins, tt.w)
			testutil.AssertMonotonic(t, plan.Offsets)

			origin := plan.Offsets[0]
			for x, off := range plan.Offsets {
				deficit := plan.BinsPerPixel*float64(x) - float64(off-origin)
				require.GreaterOrEqual(t, deficit, -testutil.DriftTolerance, "column %d ran ahead", x)
				require.Less(t, deficit, 2.0, "column %d drifted", x)
			}
		})
	}
}

// TestNewPlan_FloorOnlyWouldDrift documents why the alternation exists: with
// pure truncation the last column lands far short of the window end.
func TestNewPlan_FloorOnlyWouldDrift(t *testing.T) {
	const w = 1000
	plan := NewPlan(0, 2999, 1, 3000, w) // 2.999 bins per pixel
	floorOnly := 2 * w
	assert.Greater(t, plan.Offsets[w]-floorOnly, 900)
	assert.LessOrEqual(t, plan.Offsets[w], 2999)
}

func TestNewPlan_CursorClampedToIndex(t *testing.T) {
	plan := NewPlan(0, 1000, 10, 20, 50) // asks for 100 bins, index has 20
	testutil.AssertMonotonic(t, plan.Offsets)
	for _, off := range plan.Offsets {
		assert.LessOrEqual(t, off, 20)
	}
	assert.Equal(t, 20, plan.Offsets[50])
}

func TestNewPlan_BeginPastIndex(t *testing.T) {
	plan := NewPlan(5000, 6000, 10, 20, 10)
	for _, off := range plan.Offsets {
		assert.Equal(t, 500, off, "cursor must not move once past the index")
	}
}

func TestNewPlan_EmptyWindow(t *testing.T) {
	plan := NewPlan(100, 100, 10, 50, 8)
	assert.InDelta(t, 0.0, plan.BinsPerPixel, testutil.DefaultTolerance)
	for _, off := range plan.Offsets {
		assert.Equal(t, 10, off)
	}
}

// TestNewPlan_DriftCanReachOneBin pins the bound: at 1.5 bins per column the
// second column takes floor because (1+1)/1 is not below 1.5, leaving the
// cursor a full bin behind.
func TestNewPlan_DriftCanReachOneBin(t *testing.T) {
	p := NewPlan(0, 30, 10, 100, 2)
	assert.Equal(t, []int{0, 1, 2}, p.Offsets)
	assert.InDelta(t, 1.0, p.BinsPerPixel*2-float64(p.Offsets[2]), 1e-12)
}
