package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/tphakala/go-waveform"
)

const (
	// go-mp3 always decodes to 16-bit little-endian stereo
	mp3Channels       = 2
	mp3BitDepth       = 16
	mp3BytesPerSample = 2
	bitShift8         = 8
)

// errUnsupportedFormat is returned for input files with an unknown extension.
var errUnsupportedFormat = errors.New("unsupported input format")

// decodedInput is one channel of a decoded input file.
type decodedInput struct {
	samples  waveform.Samples[float64]
	rate     int
	channels int
}

// loadChannel decodes path and returns one channel normalized to [-1, 1].
// The decoder is chosen by file extension.
func loadChannel(path string, channel int, verbose bool) (*decodedInput, error) {
	var (
		in  *decodedInput
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav", ".wave":
		in, err = loadWAV(path, channel, verbose)
	case ".aif", ".aiff":
		in, err = loadAIFF(path, channel, verbose)
	case ".mp3":
		in, err = loadMP3(path, channel, verbose)
	case ".ogg", ".oga":
		in, err = loadVorbis(path, channel, verbose)
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if len(in.samples.Data) == 0 {
		return nil, fmt.Errorf("no audio data in input file")
	}
	return in, nil
}

func loadWAV(path string, channel int, verbose bool) (*decodedInput, error) {
	input, err := openWAVInput(path, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	samples, err := input.readChannel(channel)
	if err != nil {
		return nil, err
	}
	return &decodedInput{samples: samples, rate: input.rate, channels: input.channels}, nil
}

func loadAIFF(path string, channel int, verbose bool) (*decodedInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := aiff.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid AIFF file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if buf.SourceBitDepth == 0 {
		buf.SourceBitDepth = int(dec.BitDepth)
	}
	if verbose {
		log.Printf("Input format: AIFF %d Hz, %d channels, %d-bit",
			buf.Format.SampleRate, buf.Format.NumChannels, buf.SourceBitDepth)
	}

	return fromIntBuffer(buf, channel)
}

func loadMP3(path string, channel int, verbose bool) (*decodedInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("invalid MP3 file: %w", err)
	}
	if verbose {
		log.Printf("Input format: MP3 %d Hz, %d channels", dec.SampleRate(), mp3Channels)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	return fromIntBuffer(pcm16Buffer(raw, dec.SampleRate(), mp3Channels), channel)
}

// pcm16Buffer converts interleaved 16-bit little-endian PCM to an IntBuffer.
func pcm16Buffer(raw []byte, rate, channels int) *audio.IntBuffer {
	data := make([]int, len(raw)/mp3BytesPerSample)
	for i := range data {
		low := uint16(raw[mp3BytesPerSample*i])
		high := uint16(raw[mp3BytesPerSample*i+1])
		data[i] = int(int16(low | high<<bitShift8))
	}
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: mp3BitDepth,
	}
}

func loadVorbis(path string, channel int, verbose bool) (*decodedInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("invalid Ogg Vorbis file: %w", err)
	}
	if verbose {
		log.Printf("Input format: Vorbis %d Hz, %d channels", format.SampleRate, format.Channels)
	}

	buf := &audio.Float32Buffer{
		Format: &audio.Format{NumChannels: format.Channels, SampleRate: format.SampleRate},
		Data:   data,
	}
	samples, err := waveform.SamplesFromFloatBuffer(buf.AsFloatBuffer(), channel)
	if err != nil {
		return nil, fmt.Errorf("failed to convert audio data: %w", err)
	}
	return &decodedInput{samples: samples, rate: format.SampleRate, channels: format.Channels}, nil
}

func fromIntBuffer(buf *audio.IntBuffer, channel int) (*decodedInput, error) {
	samples, err := waveform.SamplesFromIntBuffer(buf, channel)
	if err != nil {
		return nil, fmt.Errorf("failed to convert audio data: %w", err)
	}
	return &decodedInput{
		samples:  samples,
		rate:     buf.Format.SampleRate,
		channels: buf.Format.NumChannels,
	}, nil
}
