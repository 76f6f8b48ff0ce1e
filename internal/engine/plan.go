package engine

import "math"

// Plan maps output columns to bin ranges for one render call.
//
// Offsets has Width+1 entries: column x covers bins [Offsets[x], Offsets[x+1]).
// The same table drives the sequential renderer and the column kernels, so
// both produce identical bytes.
type Plan struct {
	Width           int
	SamplesPerPixel float64
	BinsPerPixel    float64
	Offsets         []int
}

// SamplesPerPixel is the average number of raw samples mapped to one column.
func SamplesPerPixel(begin, end, width int) float64 {
	return float64(end-begin) / float64(width)
}

// NewPlan walks the columns left to right with a cursor into an index of
// numBins bins of binSize samples, starting at bin begin/binSize.
//
// Each column advances the cursor by floor(binsPerPixel) or
// ceil(binsPerPixel). Column 0 always takes floor; later columns take ceil
// when (advanced+1)/x falls below binsPerPixel. This keeps the cursor within
// two bins of the ideal position at every column instead of drifting short
// by up to ceil-ideal per column. The cursor never moves past numBins.
func NewPlan(begin, end, binSize, numBins, width int) *Plan {
	spp := SamplesPerPixel(begin, end, width)
	bpp := spp / float64(binSize)
	floorInc := int(math.Floor(bpp))
	ceilInc := int(math.Ceil(bpp))

	offsets := make([]int, width+1)
	origin := begin / binSize
	cursor := origin
	offsets[0] = cursor

	for x := range width {
		inc := floorInc
		if x > 0 && (float64(cursor-origin)+1)/float64(x) < bpp {
			inc = ceilInc
		}

		next := cursor + inc
		if next > numBins {
			next = max(cursor, numBins)
		}
		cursor = next
		offsets[x+1] = cursor
	}

	return &Plan{
		Width:           width,
		SamplesPerPixel: spp,
		BinsPerPixel:    bpp,
		Offsets:         offsets,
	}
}

// Span returns the bin range of column x.
func (p *Plan) Span(x int) (from, to int) {
	return p.Offsets[x], p.Offsets[x+1]
}
