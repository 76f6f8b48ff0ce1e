package waveform

import (
	"errors"

	"github.com/tphakala/go-waveform/internal/engine"
)

// InvalidSizeError reports a size parameter (bin size, shape, offset or
// buffer length) that violates a precondition. Param names the offender.
type InvalidSizeError = engine.InvalidSizeError

// Common errors returned by the renderers.
var (
	// ErrInvalidSize is matched by every InvalidSizeError via errors.Is.
	ErrInvalidSize = engine.ErrInvalidSize

	// ErrInconsistentFormat indicates foreground and background colors with
	// different channel counts.
	ErrInconsistentFormat = errors.New("color formats of background and foreground must be consistent")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid waveform configuration")

	// ErrNoResolutions indicates a multi-resolution renderer with no bin sizes.
	ErrNoResolutions = errors.New("no bin sizes available")
)

// Parameter names carried by InvalidSizeError.
const (
	ParamBinSize = engine.ParamBinSize
	ParamRange   = engine.ParamRange
	ParamShape   = engine.ParamShape
	ParamOffsetX = engine.ParamOffsetX
	ParamOffsetY = engine.ParamOffsetY
	ParamBuffer  = engine.ParamBuffer
)

func invalidSize(param string) error {
	return &InvalidSizeError{Param: param}
}
