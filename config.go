package waveform

import (
	"fmt"
	"math"

	"github.com/tphakala/go-waveform/internal/engine"
)

// Config holds the rendering parameters shared by every render call of a
// renderer. Renderers keep their own copy; changing one renderer's config
// never affects another.
type Config struct {
	// AmpMin is the amplitude shown at the bottom edge of the image.
	AmpMin float64

	// AmpMax is the amplitude shown at the top edge. Must be > AmpMin.
	AmpMax float64

	// Foreground fills the band between each column's min and max.
	Foreground Color

	// Background fills the rest of the column. It must have the same
	// format as Foreground.
	Background Color

	// EnableParallel renders columns concurrently using goroutines.
	// Output is byte-identical to sequential rendering; narrow images
	// fall back to a single goroutine.
	EnableParallel bool
}

// NewConfig returns a validated config.
func NewConfig(ampMin, ampMax float64, foreground, background Color) (Config, error) {
	c := Config{
		AmpMin:     ampMin,
		AmpMax:     ampMax,
		Foreground: foreground,
		Background: background,
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Foreground.Channels() == 0 || c.Background.Channels() == 0 {
		return fmt.Errorf("%w: foreground and background colors must be set", ErrInvalidConfig)
	}

	if !Consistent(c.Foreground, c.Background) {
		return fmt.Errorf("%w: foreground is %s, background is %s",
			ErrInconsistentFormat, c.Foreground.Format(), c.Background.Format())
	}

	if math.IsNaN(c.AmpMin) || math.IsNaN(c.AmpMax) || math.IsInf(c.AmpMin, 0) || math.IsInf(c.AmpMax, 0) {
		return fmt.Errorf("%w: amplitude range must be finite", ErrInvalidConfig)
	}

	if c.AmpMin >= c.AmpMax {
		return fmt.Errorf("%w: amplitude min %v must be below max %v", ErrInvalidConfig, c.AmpMin, c.AmpMax)
	}

	return nil
}

// Channels returns the bytes per pixel of images rendered with c.
func (c Config) Channels() int {
	return c.Foreground.Channels()
}

// Format returns the pixel format of images rendered with c.
func (c Config) Format() ColorFormat {
	return c.Foreground.Format()
}

// WithColors returns a validated copy of c with new colors.
func (c Config) WithColors(foreground, background Color) (Config, error) {
	c.Foreground = foreground
	c.Background = background
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WithAmplitude returns a validated copy of c with a new amplitude range.
func (c Config) WithAmplitude(ampMin, ampMax float64) (Config, error) {
	c.AmpMin = ampMin
	c.AmpMax = ampMax
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// style converts c to the engine's per-render scalars. Configs are validated
// on every mutation, so a format mismatch here is a bug.
func (c Config) style() *engine.Style {
	if !Consistent(c.Foreground, c.Background) || c.Channels() == 0 {
		panic("waveform: inconsistent color format reached render")
	}
	return &engine.Style{
		AmpMin:     c.AmpMin,
		AmpMax:     c.AmpMax,
		Foreground: c.Foreground.Bytes(),
		Background: c.Background.Bytes(),
	}
}
