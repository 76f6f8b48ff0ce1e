package engine

import (
	"runtime"
	"sync"
)

// Kernel renders columns from the split min/max arrays and the plan's
// offsets table. It is the host-side form of the column kernel contract:
// given the same index, offsets and style it must write the same bytes as
// Render.
type Kernel struct {
	Mins    []float64
	Maxs    []float64
	Offsets []int
	Height  int
	Style   *Style
}

// NewKernel prepares a kernel for idx and plan.
func NewKernel[T Number](idx *BinIndex[T], plan *Plan, h int, style *Style) *Kernel {
	mins, maxs := idx.Split()
	return &Kernel{
		Mins:    mins,
		Maxs:    maxs,
		Offsets: plan.Offsets,
		Height:  h,
		Style:   style,
	}
}

// Column renders column x.
func (k *Kernel) Column(dst *Target, x int) {
	from, to := k.Offsets[x], k.Offsets[x+1]
	last := len(k.Mins) - 1
	if from > last {
		from, to = last, last
	}
	to = min(to, len(k.Mins))

	lo, hi := k.Mins[from], k.Maxs[from]
	for i := from; i < to; i++ {
		if k.Mins[i] < lo {
			lo = k.Mins[i]
		}
		if k.Maxs[i] > hi {
			hi = k.Maxs[i]
		}
	}

	top, bottom := k.Style.Band(lo, hi, k.Height)
	k.Style.fillColumn(dst, x, k.Height, top, bottom)
}

// Width returns the number of columns.
func (k *Kernel) Width() int {
	return len(k.Offsets) - 1
}

// Workers picks a pool size for width columns: at most GOMAXPROCS, and few
// enough that every worker gets a useful share of columns.
func Workers(width int) int {
	n := min(runtime.GOMAXPROCS(0), maxWorkers, width/minColumnsPerWorker)
	return max(n, 1)
}

// RenderParallel splits the columns into contiguous chunks and renders them
// concurrently. Columns never overlap in dst, so workers share no state.
func (k *Kernel) RenderParallel(dst *Target, workers int) {
	width := k.Width()
	if workers <= 1 || width <= 1 {
		for x := range width {
			k.Column(dst, x)
		}
		return
	}

	chunk := (width + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < width; start += chunk {
		end := min(start+chunk, width)
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for x := from; x < to; x++ {
				k.Column(dst, x)
			}
		}(start, end)
	}
	wg.Wait()
}
