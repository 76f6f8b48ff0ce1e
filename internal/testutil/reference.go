package testutil

import (
	"gonum.org/v1/gonum/floats"
)

// ReferenceEnvelopes computes the per-column min and max directly from raw
// samples, with no index: column x covers samples
// [x*len/width, (x+1)*len/width). It is the O(samples) baseline the binned
// renderers are checked against when samples per pixel divides evenly.
func ReferenceEnvelopes(samples []float64, width int) (mins, maxs []float64) {
	mins = make([]float64, width)
	maxs = make([]float64, width)
	for x := range width {
		from := x * len(samples) / width
		to := (x + 1) * len(samples) / width
		window := samples[from:max(to, from+1)]
		mins[x] = floats.Min(window)
		maxs[x] = floats.Max(window)
	}
	return mins, maxs
}

// ReferenceImage renders samples with one comparison per pixel. Row y
// represents ampMin + (h-y)/h*(ampMax-ampMin) and is foreground when that
// value lies within the column envelope.
func ReferenceImage(samples []float64, width, height int, ampMin, ampMax float64, fg, bg []byte) []byte {
	mins, maxs := ReferenceEnvelopes(samples, width)
	ch := len(fg)
	img := make([]byte, width*height*ch)
	for y := range height {
		v := float64(height-y)/float64(height)*(ampMax-ampMin) + ampMin
		for x := range width {
			stamp := fg
			if v < mins[x] || v > maxs[x] {
				stamp = bg
			}
			copy(img[(y*width+x)*ch:], stamp)
		}
	}
	return img
}
