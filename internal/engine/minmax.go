// Package engine implements the min/max binning core behind the waveform
// renderers: bin index construction, the pixel-to-bin column plan and the
// column fill that writes pixel bytes.
package engine

import (
	"math"

	"github.com/tphakala/go-waveform/internal/simdops"
)

// Number is the constraint for sample types. Every member is ordered,
// convertible to float64 and has a zero value.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// MinMax holds the amplitude extremes of one bin.
type MinMax[T Number] struct {
	Min T
	Max T
}

// Merge widens m to cover o. Comparisons are strict, so a NaN already in m
// is never replaced.
func (m MinMax[T]) Merge(o MinMax[T]) MinMax[T] {
	if o.Min < m.Min {
		m.Min = o.Min
	}
	if o.Max > m.Max {
		m.Max = o.Max
	}
	return m
}

// BinIndex is the precomputed min/max pair of every complete bin of a
// sample sequence. It is immutable after construction and holds no
// reference to the raw samples.
type BinIndex[T Number] struct {
	binSize int
	pairs   []MinMax[T]
}

// NewBinIndex reduces data into len(data)/binSize pairs. Pair i covers
// samples [i*binSize, (i+1)*binSize); the trailing partial bin is dropped.
func NewBinIndex[T Number](data []T, binSize int) (*BinIndex[T], error) {
	if binSize <= 0 || binSize > len(data) {
		return nil, invalidSize(ParamBinSize)
	}

	numBins := len(data) / binSize
	pairs := make([]MinMax[T], numBins)

	if red, ok := simdops.Reducer[T](); ok && binSize > 1 {
		for i := range pairs {
			window := data[i*binSize : (i+1)*binSize]
			// SIMD min/max do not follow the strict scan once a NaN is
			// present; such windows take the scalar path.
			if math.IsNaN(float64(red.Sum(window))) {
				pairs[i] = scanBin(window)
				continue
			}
			pairs[i] = MinMax[T]{Min: red.Min(window), Max: red.Max(window)}
		}
	} else {
		for i := range pairs {
			pairs[i] = scanBin(data[i*binSize : (i+1)*binSize])
		}
	}

	return &BinIndex[T]{binSize: binSize, pairs: pairs}, nil
}

// scanBin walks one window tracking the running extremes.
func scanBin[T Number](window []T) MinMax[T] {
	mm := MinMax[T]{Min: window[0], Max: window[0]}
	for _, s := range window[1:] {
		if s > mm.Max {
			mm.Max = s
		} else if s < mm.Min {
			mm.Min = s
		}
	}
	return mm
}

// Coarsen derives the index for binSize*factor by merging groups of factor
// adjacent pairs. The result equals building from the raw samples, since
// floor(floor(n/b)/f) == floor(n/(b*f)) and each coarse bin is exactly the
// union of its fine bins.
func (b *BinIndex[T]) Coarsen(factor int) (*BinIndex[T], error) {
	if factor <= 0 {
		return nil, invalidSize(ParamFactor)
	}
	numBins := len(b.pairs) / factor
	if numBins == 0 {
		return nil, invalidSize(ParamBinSize)
	}

	pairs := make([]MinMax[T], numBins)
	for i := range pairs {
		group := b.pairs[i*factor : (i+1)*factor]
		mm := group[0]
		for _, p := range group[1:] {
			mm = mm.Merge(p)
		}
		pairs[i] = mm
	}

	return &BinIndex[T]{binSize: b.binSize * factor, pairs: pairs}, nil
}

// BinSize returns the number of raw samples per bin.
func (b *BinIndex[T]) BinSize() int {
	return b.binSize
}

// Len returns the number of bins.
func (b *BinIndex[T]) Len() int {
	return len(b.pairs)
}

// Pair returns bin i.
func (b *BinIndex[T]) Pair(i int) MinMax[T] {
	return b.pairs[i]
}

// Envelope returns the column envelope for bins [from, to). The pair at
// from seeds the result; when from is past the last bin the last valid bin
// is used instead.
func (b *BinIndex[T]) Envelope(from, to int) MinMax[T] {
	last := len(b.pairs) - 1
	if from > last {
		return b.pairs[last]
	}
	to = min(to, len(b.pairs))

	mm := b.pairs[from]
	for _, p := range b.pairs[from:max(from, to)] {
		mm = mm.Merge(p)
	}
	return mm
}

// Split returns the mins and maxes as separate float64 arrays, the layout
// consumed by column kernels.
func (b *BinIndex[T]) Split() (mins, maxs []float64) {
	mins = make([]float64, len(b.pairs))
	maxs = make([]float64, len(b.pairs))
	for i, p := range b.pairs {
		mins[i] = float64(p.Min)
		maxs[i] = float64(p.Max)
	}
	return mins, maxs
}
