// Package waveform renders audio sample sequences into raster images of
// their amplitude envelope, fast enough to redraw sub-ranges of very long
// recordings on every frame while scrubbing or zooming.
//
// Raw samples are reduced once into min/max pairs per fixed-size bin. Each
// render then maps output columns onto runs of bins, so its cost depends on
// the image size rather than the number of samples.
//
// # Features
//
//   - Generic over every Go integer and floating-point sample type
//   - Min/max bin indexes built in O(n), with SIMD reductions for float32
//     and float64 via github.com/tphakala/simd
//   - Multi-resolution rendering that picks the coarsest adequate bin size
//   - Drift-corrected pixel-to-bin mapping for arbitrary window lengths
//   - Rendering into a sub-rectangle of a caller-owned canvas
//   - Scalar (1 byte) and RGBA (4 byte) pixel formats
//   - Optional parallel column rendering with byte-identical output
//
// # Quick Start
//
// For normalized float64 audio with sensible defaults:
//
//	r, err := waveform.NewSimple(samples, 44100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pix, err := r.Render(waveform.Seconds(0, 10), 1000, 100)
//
// For full control over bin sizes and colors:
//
//	config, err := waveform.NewConfig(-1, 1,
//	    waveform.RGBA(255, 0, 0, 255), waveform.RGBA(0, 0, 0, 0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := waveform.NewMultiRenderer(
//	    waveform.Samples[float32]{Data: data, SampleRate: 48000},
//	    []int{10, 100, 1000},
//	    config,
//	)
//
// # Pixel Layout
//
// Images are row-major. Pixel (x, y) of a w-wide RGBA image occupies bytes
// [4*(y*w+x), 4*(y*w+x)+4) in r, g, b, a order; for scalar images it is
// byte y*w+x. Row 0 shows Config.AmpMax and the last row approaches
// Config.AmpMin.
//
// # Column Mapping
//
// A window of n samples drawn w columns wide averages n/w samples per pixel.
// With bins of b samples each column covers floor or ceil of n/(w*b) bins.
// Columns take the floor until the accumulated bins fall more than one bin
// behind the ideal position, then take the ceiling, so the mapping never
// drifts even over very wide images. Columns that reach past the end of the
// index repeat the last bin.
//
// # Thread Safety
//
// Index construction is a one-time cost; afterwards [BinnedRenderer] and
// [MultiRenderer] are safe for concurrent Render and RenderInto calls. Config
// mutation (SetConfig, SetColors, SetAmplitude, SetParallel) must not run
// concurrently with anything else on the same renderer.
package waveform
