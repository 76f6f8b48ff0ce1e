package waveform

import (
	"fmt"
	"slices"
	"sort"

	"github.com/tphakala/go-waveform/internal/engine"
)

// MultiRenderer holds several BinnedRenderers over the same samples at
// different bin sizes. Each render picks the coarsest bin size that still
// gives at least one bin per output column, then delegates.
//
// All child renderers share one sample rate and were built from one
// snapshot of the samples. The set of bin sizes is fixed at construction.
type MultiRenderer[T Sample] struct {
	config     Config
	sampleRate float64
	binSizes   []int // ascending, unique
	binned     map[int]*BinnedRenderer[T]
}

// NewMultiRenderer builds one index per distinct bin size. Larger indexes
// are derived from the largest already-built size that divides them
// evenly, so the raw samples are scanned as few times as possible. An
// empty binSizes is accepted, but every render then fails with
// ErrNoResolutions.
func NewMultiRenderer[T Sample](samples Samples[T], binSizes []int, config Config) (*MultiRenderer[T], error) {
	if err := samples.Validate(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	sizes := slices.Clone(binSizes)
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)

	m := &MultiRenderer[T]{
		config:     config,
		sampleRate: samples.SampleRate,
		binSizes:   sizes,
		binned:     make(map[int]*BinnedRenderer[T], len(sizes)),
	}

	built := make([]*engine.BinIndex[T], 0, len(sizes))
	for _, bs := range sizes {
		index, err := buildIndex(samples.Data, bs, built)
		if err != nil {
			return nil, fmt.Errorf("bin size %d: %w", bs, err)
		}
		built = append(built, index)
		m.binned[bs] = newBinnedRenderer(index, samples.SampleRate, config)
	}

	return m, nil
}

// buildIndex coarsens the largest divisor of binSize among built, falling
// back to a scan of the raw data.
func buildIndex[T Sample](data []T, binSize int, built []*engine.BinIndex[T]) (*engine.BinIndex[T], error) {
	if binSize <= 0 {
		return nil, invalidSize(ParamBinSize)
	}
	for i := len(built) - 1; i >= 0; i-- {
		base := built[i].BinSize()
		if binSize%base == 0 {
			return built[i].Coarsen(binSize / base)
		}
	}
	return engine.NewBinIndex(data, binSize)
}

// SelectBinSize returns the bin size used to render r at the given width:
// the largest bin size not exceeding the samples per pixel, or the smallest
// bin size when none qualifies.
func (m *MultiRenderer[T]) SelectBinSize(r TimeRange, width int) (int, error) {
	if width <= 0 {
		return 0, invalidSize(ParamShape)
	}
	if len(m.binSizes) == 0 {
		return 0, ErrNoResolutions
	}
	begin, end, err := r.Bounds(m.sampleRate)
	if err != nil {
		return 0, err
	}
	return m.selectFor(engine.SamplesPerPixel(begin, end, width)), nil
}

func (m *MultiRenderer[T]) selectFor(samplesPerPixel float64) int {
	// First bin size strictly coarser than one pixel.
	i := sort.Search(len(m.binSizes), func(i int) bool {
		return float64(m.binSizes[i]) > samplesPerPixel
	})
	if i == 0 {
		return m.binSizes[0]
	}
	return m.binSizes[i-1]
}

// Render draws r into a new width x height image using the selected bin
// size. A zero-area shape returns nil without error.
func (m *MultiRenderer[T]) Render(r TimeRange, width, height int) ([]byte, error) {
	if width < 0 || height < 0 {
		return nil, invalidSize(ParamShape)
	}
	if width == 0 || height == 0 {
		return nil, nil
	}

	b, err := m.pick(r, width)
	if err != nil {
		return nil, err
	}
	return b.Render(r, width, height)
}

// RenderInto draws r into a sub-rectangle of a caller-owned canvas using the
// selected bin size. See BinnedRenderer.RenderInto.
func (m *MultiRenderer[T]) RenderInto(r TimeRange, x, y, width, height int, buf []byte, fullWidth, fullHeight int) error {
	if err := checkTarget(x, y, width, height, len(buf), fullWidth, fullHeight, m.config.Channels()); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	b, err := m.pick(r, width)
	if err != nil {
		return err
	}
	return b.RenderInto(r, x, y, width, height, buf, fullWidth, fullHeight)
}

func (m *MultiRenderer[T]) pick(r TimeRange, width int) (*BinnedRenderer[T], error) {
	bs, err := m.SelectBinSize(r, width)
	if err != nil {
		return nil, err
	}
	return m.binned[bs], nil
}

// BinSizes returns the available bin sizes in ascending order.
func (m *MultiRenderer[T]) BinSizes() []int {
	return slices.Clone(m.binSizes)
}

// Renderer returns the child renderer for binSize.
func (m *MultiRenderer[T]) Renderer(binSize int) (*BinnedRenderer[T], bool) {
	b, ok := m.binned[binSize]
	return b, ok
}

// SampleRate returns the sample rate used to convert Seconds ranges.
func (m *MultiRenderer[T]) SampleRate() float64 {
	return m.sampleRate
}

// Config returns a copy of the config shared by the child renderers.
func (m *MultiRenderer[T]) Config() Config {
	return m.config
}

// SetConfig replaces the config of every child. The config is validated
// once up front, so either all children change or none do.
func (m *MultiRenderer[T]) SetConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	m.config = config
	for _, b := range m.binned {
		b.config = config
	}
	return nil
}

// SetColors replaces both colors on every child.
func (m *MultiRenderer[T]) SetColors(foreground, background Color) error {
	c, err := m.config.WithColors(foreground, background)
	if err != nil {
		return err
	}
	return m.SetConfig(c)
}

// SetAmplitude replaces the displayed amplitude range on every child.
func (m *MultiRenderer[T]) SetAmplitude(ampMin, ampMax float64) error {
	c, err := m.config.WithAmplitude(ampMin, ampMax)
	if err != nil {
		return err
	}
	return m.SetConfig(c)
}

// SetParallel toggles concurrent column rendering on every child.
func (m *MultiRenderer[T]) SetParallel(enabled bool) {
	m.config.EnableParallel = enabled
	for _, b := range m.binned {
		b.config.EnableParallel = enabled
	}
}
