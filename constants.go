package waveform

// Channel counts per color format
const (
	scalarChannels = 1
	rgbaChannels   = 4
)

// Sample index limits
const (
	// Largest sample index a Seconds range may convert to. Beyond 2^53 a
	// float64 no longer represents every integer.
	maxSampleIndex = 1 << 53
)

// Default bin sizes for NewSimple: powers of four from 16 samples.
const (
	defaultMinBinSize   = 16
	defaultBinSizeRatio = 4
	defaultBinSizeCount = 6
)

// Default amplitude range for normalized audio
const (
	defaultAmpMin = -1.0
	defaultAmpMax = 1.0
)

// Normalization constants for go-audio integer buffers
const (
	defaultBitDepth = 16
	maxBitDepth     = 32
)
