// Package testutil provides reusable test helper functions for waveform renderer tests.
package testutil

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	DriftTolerance   = 1e-9
)

// Sine returns n samples of a sine at freq Hz sampled at rate Hz.
func Sine(n int, freq, rate float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
	}
	return s
}

// Ramp returns n samples rising linearly from -1 towards 1.
func Ramp(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = -1 + 2*float64(i)/float64(n)
	}
	return s
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []int, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%d < s[%d]=%d", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertPixel verifies the pixel at (x, y) of a row-major image of the given
// width equals stamp.
func AssertPixel(t *testing.T, img []byte, width, x, y int, stamp []byte, msgAndArgs ...any) bool {
	t.Helper()
	ch := len(stamp)
	pos := (y*width + x) * ch
	return assert.Equal(t, stamp, img[pos:pos+ch], msgAndArgs...)
}

// CountPixels returns how many pixels of img equal stamp.
func CountPixels(img, stamp []byte) int {
	ch := len(stamp)
	n := 0
	for pos := 0; pos+ch <= len(img); pos += ch {
		if bytes.Equal(img[pos:pos+ch], stamp) {
			n++
		}
	}
	return n
}

// Filled returns n pixels all set to stamp.
func Filled(n int, stamp []byte) []byte {
	return bytes.Repeat(stamp, n)
}
