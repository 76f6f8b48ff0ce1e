package waveform

import (
	"fmt"
	"math"
	"sync"

	"github.com/tphakala/go-waveform/internal/engine"
)

// BinnedRenderer renders waveform images from a single min/max index of
// fixed bin size. Render calls are O(width*height) in the output plus
// O(bins) lookups, independent of the raw sample count.
//
// Render, RenderInto and the accessors may be called concurrently. Config
// mutators need exclusive access.
type BinnedRenderer[T Sample] struct {
	config     Config
	sampleRate float64
	index      *engine.BinIndex[T]

	// float64 min/max arrays for the column kernel, built on first
	// parallel render.
	split func() ([]float64, []float64)
}

// NewBinnedRenderer builds a min/max index of binSize samples per bin.
// It fails with an InvalidSizeError when binSize is not positive or exceeds
// the number of samples. samples is not retained.
func NewBinnedRenderer[T Sample](samples Samples[T], binSize int, config Config) (*BinnedRenderer[T], error) {
	if err := samples.Validate(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	index, err := engine.NewBinIndex(samples.Data, binSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build bin index: %w", err)
	}

	return newBinnedRenderer(index, samples.SampleRate, config), nil
}

func newBinnedRenderer[T Sample](index *engine.BinIndex[T], sampleRate float64, config Config) *BinnedRenderer[T] {
	return &BinnedRenderer[T]{
		config:     config,
		sampleRate: sampleRate,
		index:      index,
		split:      sync.OnceValues(index.Split),
	}
}

// Render draws the samples in r into a new width x height image.
// The result is row-major with Config().Channels() bytes per pixel.
// A zero-area shape returns nil without error.
func (b *BinnedRenderer[T]) Render(r TimeRange, width, height int) ([]byte, error) {
	if width < 0 || height < 0 {
		return nil, invalidSize(ParamShape)
	}
	if width == 0 || height == 0 {
		return nil, nil
	}

	buf := make([]byte, width*height*b.config.Channels())
	if err := b.draw(r, width, height, &engine.Target{Buf: buf, FullWidth: width}); err != nil {
		return nil, err
	}
	return buf, nil
}

// RenderInto draws the samples in r into the width x height sub-rectangle
// at (x, y) of a caller-owned fullWidth x fullHeight canvas. Bytes outside
// the sub-rectangle are left untouched.
func (b *BinnedRenderer[T]) RenderInto(r TimeRange, x, y, width, height int, buf []byte, fullWidth, fullHeight int) error {
	if err := checkTarget(x, y, width, height, len(buf), fullWidth, fullHeight, b.config.Channels()); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	return b.draw(r, width, height, &engine.Target{Buf: buf, FullWidth: fullWidth, X: x, Y: y})
}

// checkTarget validates a sub-rectangle against its canvas. The bounds are
// written so that no sum or product can overflow int.
func checkTarget(x, y, width, height, bufLen, fullWidth, fullHeight, channels int) error {
	switch {
	case width < 0 || height < 0 || fullWidth < 0 || fullHeight < 0:
		return invalidSize(ParamShape)
	case x < 0 || x > fullWidth-width:
		return invalidSize(ParamOffsetX)
	case y < 0 || y > fullHeight-height:
		return invalidSize(ParamOffsetY)
	case fullWidth > 0 && fullHeight > math.MaxInt/fullWidth/channels:
		return invalidSize(ParamBuffer)
	case bufLen < fullWidth*fullHeight*channels:
		return invalidSize(ParamBuffer)
	}
	return nil
}

func (b *BinnedRenderer[T]) draw(r TimeRange, width, height int, dst *engine.Target) error {
	plan, err := b.plan(r, width)
	if err != nil {
		return err
	}
	style := b.config.style()

	if b.config.EnableParallel {
		if workers := engine.Workers(width); workers > 1 {
			mins, maxs := b.split()
			kernel := &engine.Kernel{
				Mins:    mins,
				Maxs:    maxs,
				Offsets: plan.Offsets,
				Height:  height,
				Style:   style,
			}
			kernel.RenderParallel(dst, workers)
			return nil
		}
	}

	engine.Render(b.index, plan, height, style, dst)
	return nil
}

func (b *BinnedRenderer[T]) plan(r TimeRange, width int) (*engine.Plan, error) {
	begin, end, err := r.Bounds(b.sampleRate)
	if err != nil {
		return nil, err
	}
	return engine.NewPlan(begin, end, b.index.BinSize(), b.index.Len(), width), nil
}

// ColumnOffsets returns the width+1 entry bin offset table for r: column x
// covers bins [offsets[x], offsets[x+1]). Together with MinMaxArrays it is
// everything an external column kernel needs to reproduce Render.
func (b *BinnedRenderer[T]) ColumnOffsets(r TimeRange, width int) ([]int, error) {
	if width <= 0 {
		return nil, invalidSize(ParamShape)
	}
	plan, err := b.plan(r, width)
	if err != nil {
		return nil, err
	}
	return plan.Offsets, nil
}

// MinMaxArrays returns copies of the per-bin minima and maxima as float64.
func (b *BinnedRenderer[T]) MinMaxArrays() (mins, maxs []float64) {
	return b.index.Split()
}

// BinSize returns the number of raw samples per bin.
func (b *BinnedRenderer[T]) BinSize() int {
	return b.index.BinSize()
}

// Bins returns the number of bins in the index.
func (b *BinnedRenderer[T]) Bins() int {
	return b.index.Len()
}

// SampleRate returns the sample rate used to convert Seconds ranges.
func (b *BinnedRenderer[T]) SampleRate() float64 {
	return b.sampleRate
}

// Config returns a copy of the current config.
func (b *BinnedRenderer[T]) Config() Config {
	return b.config
}

// SetConfig replaces the config. On error the previous config is kept.
func (b *BinnedRenderer[T]) SetConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	b.config = config
	return nil
}

// SetColors replaces both colors. On error the previous colors are kept.
func (b *BinnedRenderer[T]) SetColors(foreground, background Color) error {
	c, err := b.config.WithColors(foreground, background)
	if err != nil {
		return err
	}
	b.config = c
	return nil
}

// SetAmplitude replaces the displayed amplitude range. On error the previous
// range is kept.
func (b *BinnedRenderer[T]) SetAmplitude(ampMin, ampMax float64) error {
	c, err := b.config.WithAmplitude(ampMin, ampMax)
	if err != nil {
		return err
	}
	b.config = c
	return nil
}

// SetParallel toggles concurrent column rendering.
func (b *BinnedRenderer[T]) SetParallel(enabled bool) {
	b.config.EnableParallel = enabled
}
