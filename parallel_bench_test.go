package waveform

import (
	"math"
	"testing"
)

// BenchmarkRenderSequential benchmarks sequential column rendering.
func BenchmarkRenderSequential(b *testing.B) {
	benchmarkRender(b, false)
}

// BenchmarkRenderParallel benchmarks parallel column rendering.
func BenchmarkRenderParallel(b *testing.B) {
	benchmarkRender(b, true)
}

func benchmarkRender(b *testing.B, parallel bool) {
	b.Helper()

	const (
		sampleRate = 44100.0
		numSamples = 44100 * 600 // 10 minutes of audio
		width      = 1920
		height     = 256
	)

	data := make([]float64, numSamples)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate)
	}

	config := DefaultConfig()
	config.EnableParallel = parallel

	renderer, err := NewMultiRenderer(
		Samples[float64]{Data: data, SampleRate: sampleRate},
		[]int{16, 64, 256, 1024, 4096},
		config,
	)
	if err != nil {
		b.Fatalf("Failed to create renderer: %v", err)
	}

	buf := make([]byte, width*height*4)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		// Zoom window sweeps across the recording
		start := float64(i%540) + 0.5
		if err := renderer.RenderInto(Seconds(start, start+60), 0, 0, width, height, buf, width, height); err != nil {
			b.Fatalf("RenderInto failed: %v", err)
		}
	}
}

// BenchmarkNewMultiRenderer benchmarks index construction.
func BenchmarkNewMultiRenderer(b *testing.B) {
	data := make([]float64, 44100*60)
	for i := range data {
		data[i] = math.Sin(float64(i) * 0.01)
	}
	samples := Samples[float64]{Data: data, SampleRate: 44100}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := NewMultiRenderer(samples, []int{16, 64, 256, 1024, 4096}, DefaultConfig()); err != nil {
			b.Fatalf("NewMultiRenderer failed: %v", err)
		}
	}
}
