package engine

import (
	"testing"

	"github.com/tphakala/go-waveform/internal/testutil"
)

func BenchmarkNewBinIndex(b *testing.B) {
	data := testutil.Sine(44100*60, 440, 44100)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := NewBinIndex(data, 64); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCoarsen(b *testing.B) {
	idx, err := NewBinIndex(testutil.Sine(44100*60, 440, 44100), 16)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := idx.Coarsen(4); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	benchmarkRender(b, 1)
}

func BenchmarkRenderParallel(b *testing.B) {
	benchmarkRender(b, Workers(1920))
}

func benchmarkRender(b *testing.B, workers int) {
	b.Helper()

	const w, h = 1920, 256
	data := testutil.Sine(44100*60, 440, 44100)
	idx, err := NewBinIndex(data, 64)
	if err != nil {
		b.Fatal(err)
	}
	style := &Style{AmpMin: -1, AmpMax: 1, Foreground: rgbaFG, Background: rgbaBG}
	buf := make([]byte, w*h*4)
	dst := &Target{Buf: buf, FullWidth: w}

	b.ReportAllocs()
	for b.Loop() {
		plan := NewPlan(0, len(data), idx.BinSize(), idx.Len(), w)
		if workers <= 1 {
			Render(idx, plan, h, style, dst)
		} else {
			NewKernel(idx, plan, h, style).RenderParallel(dst, workers)
		}
	}
}
