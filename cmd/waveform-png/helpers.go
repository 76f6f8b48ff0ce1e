package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/wav"
	"github.com/tphakala/go-waveform"
)

// renderOptions holds the parsed command line settings.
type renderOptions struct {
	binSizes []int
	start    float64
	end      float64
	width    int
	height   int
	channel  int
	gray     bool
	amp      float64
	parallel bool
	verbose  bool
}

// window returns the time range to render. A negative end means the end of
// the file.
func (o renderOptions) window(duration float64) waveform.TimeRange {
	end := o.end
	if end < 0 {
		end = duration
	}
	return waveform.Seconds(o.start, end)
}

// config builds the render config for the selected pixel format.
func (o renderOptions) config() (waveform.Config, error) {
	if !(o.amp > 0) {
		return waveform.Config{}, fmt.Errorf("amplitude must be positive, got %v", o.amp)
	}

	var (
		config waveform.Config
		err    error
	)
	if o.gray {
		config, err = waveform.NewGrayscaleConfig(-o.amp, o.amp)
	} else {
		config, err = waveform.DefaultConfig().WithAmplitude(-o.amp, o.amp)
	}
	if err != nil {
		return waveform.Config{}, err
	}
	config.EnableParallel = o.parallel
	return config, nil
}

// parseBinSizes parses a comma-separated list of bin sizes. An empty string
// selects the defaults.
func parseBinSizes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid bin size %q: %w", f, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("invalid bin size %d: must be positive", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	// Open input file
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	// Create WAV decoder
	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	// Read format info
	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	return &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: bitDepth,
	}, nil
}

// readChannel decodes the whole file and returns one channel normalized to
// [-1, 1].
func (w *wavInputInfo) readChannel(channel int) (waveform.Samples[float64], error) {
	if channel < 0 || channel >= w.channels {
		return waveform.Samples[float64]{}, fmt.Errorf("channel %d out of range (file has %d)", channel, w.channels)
	}

	buf, err := w.decoder.FullPCMBuffer()
	if err != nil {
		return waveform.Samples[float64]{}, fmt.Errorf("failed to read audio data: %w", err)
	}
	if buf.SourceBitDepth == 0 {
		buf.SourceBitDepth = w.bitDepth
	}

	samples, err := waveform.SamplesFromIntBuffer(buf, channel)
	if err != nil {
		return waveform.Samples[float64]{}, fmt.Errorf("failed to convert audio data: %w", err)
	}
	return samples, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// newRenderer builds a multi-resolution renderer for samples.
func newRenderer(samples waveform.Samples[float64], opts renderOptions) (*waveform.MultiRenderer[float64], error) {
	config, err := opts.config()
	if err != nil {
		return nil, err
	}

	binSizes := opts.binSizes
	if binSizes == nil {
		binSizes = waveform.DefaultBinSizes(len(samples.Data))
	}

	renderer, err := waveform.NewMultiRenderer(samples, binSizes, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if opts.verbose {
		log.Printf("Bin sizes: %v", renderer.BinSizes())
	}
	return renderer, nil
}

// writePNG encodes img to path.
func writePNG(path string, img image.Image) (err error) {
	if img == nil {
		return fmt.Errorf("nothing to write: empty image")
	}

	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	// Capture close errors on the success path
	defer func() {
		if closeErr := outputFile.Close(); err == nil {
			err = closeErr
		}
	}()

	if err := png.Encode(outputFile, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
