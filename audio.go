package waveform

import (
	"fmt"

	"github.com/go-audio/audio"
)

// SamplesFromIntBuffer extracts one channel of an interleaved go-audio
// integer buffer, normalized to [-1, 1] by its source bit depth (16-bit
// when unset).
func SamplesFromIntBuffer(buf *audio.IntBuffer, channel int) (Samples[float64], error) {
	if buf == nil || buf.Format == nil {
		return Samples[float64]{}, fmt.Errorf("%w: buffer has no format", ErrInvalidConfig)
	}
	channels, err := checkChannel(buf.Format, channel)
	if err != nil {
		return Samples[float64]{}, err
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 || bitDepth > maxBitDepth {
		bitDepth = defaultBitDepth
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))

	frames := len(buf.Data) / channels
	data := make([]float64, frames)
	for i := range frames {
		data[i] = float64(buf.Data[i*channels+channel]) * scale
	}

	return Samples[float64]{Data: data, SampleRate: float64(buf.Format.SampleRate)}, nil
}

// SamplesFromFloatBuffer extracts one channel of an interleaved go-audio
// float buffer. Values are copied unchanged.
func SamplesFromFloatBuffer(buf *audio.FloatBuffer, channel int) (Samples[float64], error) {
	if buf == nil || buf.Format == nil {
		return Samples[float64]{}, fmt.Errorf("%w: buffer has no format", ErrInvalidConfig)
	}
	channels, err := checkChannel(buf.Format, channel)
	if err != nil {
		return Samples[float64]{}, err
	}

	frames := len(buf.Data) / channels
	data := make([]float64, frames)
	for i := range frames {
		data[i] = buf.Data[i*channels+channel]
	}

	return Samples[float64]{Data: data, SampleRate: float64(buf.Format.SampleRate)}, nil
}

func checkChannel(format *audio.Format, channel int) (int, error) {
	channels := format.NumChannels
	if channels < 1 {
		return 0, fmt.Errorf("%w: buffer has %d channels", ErrInvalidConfig, channels)
	}
	if channel < 0 || channel >= channels {
		return 0, fmt.Errorf("%w: channel %d out of range (buffer has %d)", ErrInvalidConfig, channel, channels)
	}
	return channels, nil
}
