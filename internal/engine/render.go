package engine

import "math"

// Style carries the per-render scalars: the displayed amplitude range and
// the foreground/background pixel stamps. Both stamps have the same length,
// which is the number of bytes per pixel.
type Style struct {
	AmpMin     float64
	AmpMax     float64
	Foreground []byte
	Background []byte
}

// Channels returns the bytes per pixel.
func (s *Style) Channels() int {
	return len(s.Foreground)
}

// Target is a sub-rectangle of a caller-owned canvas.
// The canvas is FullWidth pixels wide and stored row-major.
type Target struct {
	Buf       []byte
	FullWidth int
	X, Y      int
}

// Band returns the rows [top, bottom) drawn in the foreground for an
// envelope, in a column of height h.
//
// Row y represents amplitude RowAmplitude(y, h), so row 0 is AmpMax. A row
// is foreground when its amplitude lies in [lo, hi]. Solving that inequality
// once per column gives the two integer boundaries, instead of comparing
// every pixel; each boundary is then checked against the row amplitude so
// that values landing exactly on a row keep that row. A NaN envelope yields
// an empty band.
func (s *Style) Band(lo, hi float64, h int) (top, bottom int) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, 0
	}
	scale := float64(h) / (s.AmpMax - s.AmpMin)
	fh := float64(h)

	top = int(clampRow(math.Ceil(fh-scale*(hi-s.AmpMin)), fh))
	bottom = int(clampRow(math.Floor(fh-scale*(lo-s.AmpMin))+1, fh))

	// Row amplitudes fall with y, so each edge moves at most a row or two.
	for top > 0 && s.RowAmplitude(top-1, h) <= hi {
		top--
	}
	for top < h && s.RowAmplitude(top, h) > hi {
		top++
	}
	for bottom < h && s.RowAmplitude(bottom, h) >= lo {
		bottom++
	}
	for bottom > 0 && s.RowAmplitude(bottom-1, h) < lo {
		bottom--
	}

	if bottom < top {
		bottom = top
	}
	return top, bottom
}

// RowAmplitude returns the amplitude represented by row y of h.
func (s *Style) RowAmplitude(y, h int) float64 {
	return float64(h-y)/float64(h)*(s.AmpMax-s.AmpMin) + s.AmpMin
}

func clampRow(v, h float64) float64 {
	if v < 0 {
		return 0
	}
	if v > h {
		return h
	}
	return v
}

// fillColumn writes column x of the target as three vertical segments:
// background above the band, foreground inside it, background below.
func (s *Style) fillColumn(dst *Target, x, h, top, bottom int) {
	s.fillSpan(dst, x, 0, top, s.Background)
	s.fillSpan(dst, x, top, bottom, s.Foreground)
	s.fillSpan(dst, x, bottom, h, s.Background)
}

func (s *Style) fillSpan(dst *Target, x, y0, y1 int, stamp []byte) {
	ch := len(stamp)
	stride := dst.FullWidth * ch
	pos := ((dst.Y+y0)*dst.FullWidth + dst.X + x) * ch
	for y := y0; y < y1; y++ {
		copy(dst.Buf[pos:pos+ch], stamp)
		pos += stride
	}
}

// Render draws every column of plan into dst, h rows tall.
// The caller has already validated that dst is large enough.
func Render[T Number](idx *BinIndex[T], plan *Plan, h int, style *Style, dst *Target) {
	for x := range plan.Width {
		from, to := plan.Span(x)
		env := idx.Envelope(from, to)
		top, bottom := style.Band(float64(env.Min), float64(env.Max), h)
		style.fillColumn(dst, x, h, top, bottom)
	}
}
