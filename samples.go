package waveform

import (
	"fmt"
	"math"

	"github.com/tphakala/go-waveform/internal/engine"
)

// Sample is the constraint for sample types: any integer or floating-point
// type. Every member is ordered, convertible to float64 and has a zero value.
type Sample interface {
	engine.Number
}

// Samples is a borrowed view of a raw sample sequence and its rate.
// Renderers read Data only while building their indexes and never modify it.
type Samples[T Sample] struct {
	Data       []T
	SampleRate float64
}

// Validate checks that the sample rate is usable for time conversion.
func (s Samples[T]) Validate() error {
	if !(s.SampleRate > 0) || math.IsInf(s.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be positive and finite, got %v", ErrInvalidConfig, s.SampleRate)
	}
	return nil
}

// Duration returns the length of the sequence in seconds.
func (s Samples[T]) Duration() float64 {
	return float64(len(s.Data)) / s.SampleRate
}

type rangeUnit int

const (
	unitSamples rangeUnit = iota
	unitSeconds
)

// TimeRange is the window to render, in seconds or in sample indices.
// Construct it with Seconds or SampleSpan.
type TimeRange struct {
	unit       rangeUnit
	startSec   float64
	endSec     float64
	startIndex int
	endIndex   int
}

// Seconds returns a window from start to end seconds.
func Seconds(start, end float64) TimeRange {
	return TimeRange{unit: unitSeconds, startSec: start, endSec: end}
}

// SampleSpan returns a window covering sample indices [start, end).
func SampleSpan(start, end int) TimeRange {
	return TimeRange{unit: unitSamples, startIndex: start, endIndex: end}
}

// Bounds converts the range to sample indices [begin, end). Seconds are
// multiplied by sampleRate and truncated toward zero.
func (r TimeRange) Bounds(sampleRate float64) (begin, end int, err error) {
	switch r.unit {
	case unitSeconds:
		b := r.startSec * sampleRate
		e := r.endSec * sampleRate
		if !(b >= 0) || !(e >= b) || e > maxSampleIndex {
			return 0, 0, invalidSize(ParamRange)
		}
		begin, end = int(b), int(e)
	default:
		begin, end = r.startIndex, r.endIndex
	}

	if begin < 0 || end < begin {
		return 0, 0, invalidSize(ParamRange)
	}
	return begin, end, nil
}

// String formats the range for logs.
func (r TimeRange) String() string {
	if r.unit == unitSeconds {
		return fmt.Sprintf("%gs..%gs", r.startSec, r.endSec)
	}
	return fmt.Sprintf("samples %d..%d", r.startIndex, r.endIndex)
}
