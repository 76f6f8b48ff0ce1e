package waveform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-waveform/internal/testutil"
)

func TestNewMultiRenderer_Children(t *testing.T) {
	data := make([]float64, 50000)
	samples := Samples[float64]{Data: data, SampleRate: testRate}
	config, err := NewConfig(-100, 100, RGBA(255, 0, 0, 255), RGBA(0, 0, 0, 0))
	require.NoError(t, err)

	bss := []int{10, 50, 100}
	m, err := NewMultiRenderer(samples, bss, config)
	require.NoError(t, err)

	for _, bs := range bss {
		b, ok := m.Renderer(bs)
		require.True(t, ok, "bin size %d", bs)
		assert.Equal(t, bs, b.BinSize())
		assert.InDelta(t, float64(testRate), b.SampleRate(), 0)
	}

	pix, err := m.Render(Seconds(0, 1), 1000, 100)
	require.NoError(t, err)
	assert.Len(t, pix, 1000*100*4)
}

func TestNewMultiRenderer_SortsAndDedupes(t *testing.T) {
	m, err := NewMultiRenderer(sineSamples(), []int{100, 10, 50, 10, 100}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []int{10, 50, 100}, m.BinSizes())

	// BinSizes hands out a copy.
	sizes := m.BinSizes()
	sizes[0] = 999
	assert.Equal(t, []int{10, 50, 100}, m.BinSizes())
}

func TestNewMultiRenderer_PropagatesInvalidSize(t *testing.T) {
	samples := Samples[float64]{Data: make([]float64, 1000), SampleRate: testRate}
	for _, bss := range [][]int{{10, 2000}, {0, 10}, {7, 14, 1001}} {
		_, err := NewMultiRenderer(samples, bss, DefaultConfig())
		var sizeErr *InvalidSizeError
		require.ErrorAs(t, err, &sizeErr, "bin sizes %v", bss)
		assert.Equal(t, ParamBinSize, sizeErr.Param)
	}
}

// TestNewMultiRenderer_DerivedIndexesMatchFreshOnes checks that bin sizes
// derived from smaller ones render exactly like independently built ones.
func TestNewMultiRenderer_DerivedIndexesMatchFreshOnes(t *testing.T) {
	samples := Samples[float64]{Data: testutil.Sine(100003, 97, testRate), SampleRate: testRate}
	config := redOnClear(t)

	m, err := NewMultiRenderer(samples, []int{10, 30, 70, 300, 1000}, config)
	require.NoError(t, err)

	for _, bs := range m.BinSizes() {
		fresh, err := NewBinnedRenderer(samples, bs, config)
		require.NoError(t, err)
		child, _ := m.Renderer(bs)

		freshMins, freshMaxs := fresh.MinMaxArrays()
		childMins, childMaxs := child.MinMaxArrays()
		assert.Equal(t, freshMins, childMins, "bin size %d", bs)
		assert.Equal(t, freshMaxs, childMaxs, "bin size %d", bs)
	}
}

func TestMultiRenderer_SelectBinSize(t *testing.T) {
	samples := Samples[float64]{Data: make([]float64, 200000), SampleRate: testRate}
	m, err := NewMultiRenderer(samples, []int{10, 50, 100}, DefaultConfig())
	require.NoError(t, err)

	tests := []struct {
		name   string
		r      TimeRange
		width  int
		wantBS int
	}{
		{"75 samples per pixel picks 50", SampleSpan(0, 75000), 1000, 50},
		{"5 samples per pixel falls back to smallest", SampleSpan(0, 5000), 1000, 10},
		{"exactly 50 picks 50", SampleSpan(0, 50000), 1000, 50},
		{"just under 50 picks 10", SampleSpan(0, 49999), 1000, 10},
		{"exactly 100 picks 100", SampleSpan(1000, 101000), 1000, 100},
		{"far coarser picks largest", SampleSpan(0, 200000), 10, 100},
		{"empty window picks smallest", SampleSpan(500, 500), 100, 10},
		{"seconds are converted", Seconds(0, 1), 441, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs, err := m.SelectBinSize(tt.r, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBS, bs)
		})
	}
}

func TestMultiRenderer_SelectionIsMonotonic(t *testing.T) {
	samples := Samples[float64]{Data: make([]float64, 100000), SampleRate: testRate}
	m, err := NewMultiRenderer(samples, []int{4, 16, 64, 256, 1024}, DefaultConfig())
	require.NoError(t, err)

	prev := 0
	for end := 100; end <= 100000; end += 100 {
		bs, err := m.SelectBinSize(SampleSpan(0, end), 100)
		require.NoError(t, err)
		require.GreaterOrEqual(t, bs, prev, "window end %d", end)
		if spp := float64(end) / 100; spp >= 4 {
			require.LessOrEqual(t, float64(bs), spp, "window end %d", end)
		}
		prev = bs
	}
}

func TestMultiRenderer_DelegatesToSelected(t *testing.T) {
	samples := sineSamples()
	config := redOnClear(t)
	m, err := NewMultiRenderer(samples, []int{10, 50, 100}, config)
	require.NoError(t, err)

	r := SampleSpan(0, 37500) // 75 samples per pixel at width 500
	got, err := m.Render(r, 500, 60)
	require.NoError(t, err)

	direct, err := NewBinnedRenderer(samples, 50, config)
	require.NoError(t, err)
	want, err := direct.Render(r, 500, 60)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	canvas := make([]byte, 600*80*4)
	require.NoError(t, m.RenderInto(r, 50, 10, 500, 60, canvas, 600, 80))
	expected := make([]byte, 600*80*4)
	require.NoError(t, direct.RenderInto(r, 50, 10, 500, 60, expected, 600, 80))
	assert.Equal(t, expected, canvas)
}

func TestMultiRenderer_NoResolutions(t *testing.T) {
	m, err := NewMultiRenderer(sineSamples(), nil, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, m.BinSizes())

	_, err = m.Render(Seconds(0, 1), 100, 10)
	assert.ErrorIs(t, err, ErrNoResolutions)

	err = m.RenderInto(Seconds(0, 1), 0, 0, 10, 10, make([]byte, 400), 10, 10)
	assert.ErrorIs(t, err, ErrNoResolutions)

	pix, err := m.Render(Seconds(0, 1), 0, 10)
	assert.NoError(t, err)
	assert.Nil(t, pix)
}

func TestMultiRenderer_ZeroShape(t *testing.T) {
	m, err := NewMultiRenderer(sineSamples(), []int{10, 100}, DefaultConfig())
	require.NoError(t, err)

	for _, shape := range [][2]int{{0, 10}, {10, 0}} {
		pix, err := m.Render(Seconds(0, 1), shape[0], shape[1])
		assert.NoError(t, err)
		assert.Nil(t, pix)
		canvas := make([]byte, 10*10*4)
		assert.NoError(t, m.RenderInto(Seconds(0, 1), 0, 0, shape[0], shape[1], canvas, 10, 10))
		assert.Equal(t, make([]byte, len(canvas)), canvas)
	}

	_, err = m.Render(Seconds(0, 1), 10, -1)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = m.SelectBinSize(Seconds(0, 1), 0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMultiRenderer_InvalidRange(t *testing.T) {
	m, err := NewMultiRenderer(sineSamples(), []int{10}, DefaultConfig())
	require.NoError(t, err)

	_, err = m.Render(Seconds(1, 0.5), 100, 10)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMultiRenderer_ConfigAppliesToAllChildren(t *testing.T) {
	m, err := NewMultiRenderer(sineSamples(), []int{10, 100, 1000}, redOnClear(t))
	require.NoError(t, err)
	before := m.Config()

	require.ErrorIs(t, m.SetColors(Scalar(1), RGBA(0, 0, 0, 0)), ErrInconsistentFormat)
	for _, bs := range m.BinSizes() {
		b, _ := m.Renderer(bs)
		assert.Equal(t, before, b.Config(), "bin size %d changed on failed update", bs)
	}

	require.NoError(t, m.SetColors(Scalar(255), Scalar(0)))
	require.NoError(t, m.SetAmplitude(-0.5, 0.5))
	for _, bs := range m.BinSizes() {
		b, _ := m.Renderer(bs)
		assert.Equal(t, FormatScalar, b.Config().Format())
		assert.InDelta(t, 0.5, b.Config().AmpMax, 0)
	}

	pix, err := m.Render(Seconds(0, 1), 100, 10)
	require.NoError(t, err)
	assert.Len(t, pix, 100*10)
}

func TestMultiRenderer_Idempotent(t *testing.T) {
	m, err := NewMultiRenderer(sineSamples(), []int{10, 50, 100}, redOnClear(t))
	require.NoError(t, err)

	first, err := m.Render(Seconds(0.2, 0.9), 640, 120)
	require.NoError(t, err)
	again, err := m.Render(Seconds(0.2, 0.9), 640, 120)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestMultiRenderer_RenderIntoRejectsOverflowingCanvas(t *testing.T) {
	m, err := NewMultiRenderer(sineSamples(), []int{10, 100}, DefaultConfig())
	require.NoError(t, err)

	err = m.RenderInto(SampleSpan(0, 100), 5, 0, 1, 1, make([]byte, 4), math.MaxInt/2, 4)
	var sizeErr *InvalidSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, ParamBuffer, sizeErr.Param)
}
