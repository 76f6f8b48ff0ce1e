package waveform

// Common colors for convenience configs.
var (
	// Black is opaque black.
	Black = RGBA(0, 0, 0, 255)

	// White is opaque white.
	White = RGBA(255, 255, 255, 255)

	// Transparent is fully transparent black.
	Transparent = RGBA(0, 0, 0, 0)
)

// DefaultConfig returns opaque black on transparent for normalized audio in
// [-1, 1].
func DefaultConfig() Config {
	return Config{
		AmpMin:     defaultAmpMin,
		AmpMax:     defaultAmpMax,
		Foreground: Black,
		Background: Transparent,
	}
}

// NewGrayscaleConfig returns a single-channel config: white waveform on
// black for the given amplitude range.
func NewGrayscaleConfig(ampMin, ampMax float64) (Config, error) {
	return NewConfig(ampMin, ampMax, Scalar(255), Scalar(0))
}

// NewRGBAConfig returns a four-channel config for the given amplitude range.
func NewRGBAConfig(ampMin, ampMax float64, foreground, background Color) (Config, error) {
	return NewConfig(ampMin, ampMax, foreground, background)
}

// DefaultBinSizes returns powers of four from 16 samples that fit within
// numSamples, at most six of them. Sequences shorter than 16 samples get a
// single bin size of 1.
func DefaultBinSizes(numSamples int) []int {
	if numSamples < defaultMinBinSize {
		if numSamples < 1 {
			return nil
		}
		return []int{1}
	}

	sizes := make([]int, 0, defaultBinSizeCount)
	for bs := defaultMinBinSize; bs <= numSamples && len(sizes) < defaultBinSizeCount; bs *= defaultBinSizeRatio {
		sizes = append(sizes, bs)
	}
	return sizes
}

// NewSimple creates a multi-resolution renderer for normalized float64
// audio with DefaultBinSizes and DefaultConfig.
func NewSimple(data []float64, sampleRate float64) (*MultiRenderer[float64], error) {
	return NewMultiRenderer(
		Samples[float64]{Data: data, SampleRate: sampleRate},
		DefaultBinSizes(len(data)),
		DefaultConfig(),
	)
}

// RenderOnce builds a single-use index sized for width and renders the
// whole sequence. For repeated renders of the same data keep a
// MultiRenderer instead.
func RenderOnce[T Sample](samples Samples[T], width, height int, config Config) ([]byte, error) {
	if width <= 0 || height <= 0 {
		if width < 0 || height < 0 {
			return nil, invalidSize(ParamShape)
		}
		return nil, nil
	}

	binSize := max(1, len(samples.Data)/width)
	b, err := NewBinnedRenderer(samples, binSize, config)
	if err != nil {
		return nil, err
	}
	return b.Render(SampleSpan(0, len(samples.Data)), width, height)
}
